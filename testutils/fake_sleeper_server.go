package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// Well-known ids used by the fixture data.
const (
	SleeperLeagueID     = "924039165950484480"
	SleeperLeague2023ID = "824039165950484479"
	SleeperUserID       = "12345678"
	SleeperDraft2024ID  = "d2024"
	SleeperDraft2023ID  = "d2023"
)

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/players/nfl", nflPlayersHandler)
		r.Get("/state/nfl", stateHandler)

		r.Route("/user", func(r chi.Router) {
			r.Get("/{userID}/leagues/nfl/{year}", userLeaguesHandler)
			r.Get("/{username}", sleeperUserHandler)
		})

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/rosters", rostersHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/matchups/{week}", matchupsHandler)
			r.Get("/transactions/{week}", transactionsHandler)
			r.Get("/drafts", draftsHandler)
		})

		r.Get("/draft/{draftID}/picks", draftPicksHandler)
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func stateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func sleeperUserHandler(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "sleeperuser" {
		serveFile(w, "sleeperuser.json")
	} else {
		// requesting a user that doesn't exist returns a 200 with "null" as the response body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
	}
}

func userLeaguesHandler(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	year := chi.URLParam(r, "year")

	if userID == SleeperUserID && year == "2024" {
		serveFile(w, "user_leagues.json")
	} else {
		serveJSON(w, "[]")
	}
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case SleeperLeagueID:
		serveFile(w, "league_2024.json")
	case SleeperLeague2023ID:
		serveFile(w, "league_2023.json")
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func rostersHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case SleeperLeagueID:
		serveFile(w, "rosters_2024.json")
	case SleeperLeague2023ID:
		serveFile(w, "rosters_2023.json")
	default:
		serveJSON(w, "[]")
	}
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case SleeperLeagueID, SleeperLeague2023ID:
		serveFile(w, "users.json")
	default:
		serveJSON(w, "[]")
	}
}

func matchupsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")

	if leagueID == SleeperLeagueID {
		switch week {
		case "1":
			serveFile(w, "matchups_w1.json")
			return
		case "2":
			serveFile(w, "matchups_w2.json")
			return
		}
	}
	serveJSON(w, "[]")
}

func transactionsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")

	if leagueID == SleeperLeagueID && week == "2" {
		serveFile(w, "transactions_w2.json")
		return
	}
	serveJSON(w, "[]")
}

func draftsHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "leagueID") {
	case SleeperLeagueID:
		serveFile(w, "drafts_2024.json")
	case SleeperLeague2023ID:
		serveFile(w, "drafts_2023.json")
	default:
		serveJSON(w, "[]")
	}
}

func draftPicksHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "draftID") {
	case SleeperDraft2024ID:
		serveFile(w, "draft_picks_2024.json")
	case SleeperDraft2023ID:
		serveFile(w, "draft_picks_2023.json")
	default:
		serveJSON(w, "[]")
	}
}

func serveJSON(w http.ResponseWriter, body string) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
