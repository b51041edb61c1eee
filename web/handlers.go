package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sethclem/Sleeper/controller"
	"github.com/sethclem/Sleeper/sleeper"
	"github.com/unrolled/render"
)

type errorResponse struct {
	Error string `json:"error"`
}

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.Text(w, http.StatusOK, "sleeper dashboard api")
	}
}

func userLeaguesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		year := r.URL.Query().Get("year")

		leagues, err := ctrl.GetLeaguesForUser(r.Context(), username, year)
		if err != nil {
			if errors.Is(err, sleeper.ErrUserNotFound) {
				render.JSON(w, http.StatusNotFound, errorResponse{Error: "user not found"})
				return
			}
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, leagues)
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		standings, err := ctrl.GetLeagueStandings(r.Context(), leagueID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load standings"})
			return
		}

		render.JSON(w, http.StatusOK, standings)
	}
}

func tradesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		trades, err := ctrl.GetTrades(r.Context(), leagueID)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load trades"})
			return
		}
		if len(trades) == 0 {
			render.JSON(w, http.StatusNotFound, errorResponse{Error: "no trades found"})
			return
		}

		render.JSON(w, http.StatusOK, trades)
	}
}

type simulateRequest struct {
	TradeIDs []string `json:"trade_ids"`
}

func simulateHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		leagueID := chi.URLParam(r, "leagueID")

		var req simulateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}

		result, err := ctrl.SimulateTradeUndo(r.Context(), leagueID, req.TradeIDs)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load"})
			return
		}

		render.JSON(w, http.StatusOK, result)
	}
}

func playerSearchHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")
		if query == "" {
			render.JSON(w, http.StatusBadRequest, errorResponse{Error: "q parameter is required"})
			return
		}

		results, err := ctrl.Search(r.Context(), query)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, results)
	}
}

func forceUpdatePlayers(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.UpdatePlayers(r.Context()); err != nil {
			render.JSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
