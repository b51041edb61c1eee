package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sethclem/Sleeper/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", rootHandler(ctrl, render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/users/{username}/leagues", userLeaguesHandler(ctrl, render))
		r.Get("/players", playerSearchHandler(ctrl, render))

		r.Route("/leagues/{leagueID}", func(r chi.Router) {
			r.Get("/standings", standingsHandler(ctrl, render))
			r.Get("/trades", tradesHandler(ctrl, render))

			// Simulations walk multiple seasons of provider data, so give
			// them a longer budget than the default.
			r.With(middleware.Timeout(60 * time.Second)).
				Post("/simulate", simulateHandler(ctrl, render))
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.Timeout(30 * time.Second))

		r.Post("/players", forceUpdatePlayers(ctrl, render))
	})

	return r
}
