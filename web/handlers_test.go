package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sethclem/Sleeper/controller/mockcontroller"
	"github.com/sethclem/Sleeper/model"
	"github.com/sethclem/Sleeper/sleeper"
	"github.com/stretchr/testify/mock"
)

func serveTestRequest(ctrl *mockcontroller.C, method, target, body string) *httptest.ResponseRecorder {
	router := getRouter(ctrl, newRender())

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserLeaguesHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	leagues := []model.Season{
		{ID: "924", Year: 2024, Name: "Footclan and Friends Dynasty", TotalRosters: 4},
	}
	ctrl.On("GetLeaguesForUser", mock.Anything, "sleeperuser", "2024").Return(leagues, nil)

	w := serveTestRequest(ctrl, http.MethodGet, "/api/users/sleeperuser/leagues?year=2024", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Footclan and Friends Dynasty") {
		t.Errorf("expected the league name in the response, got %s", w.Body.String())
	}
}

func TestUserLeaguesHandlerNotFound(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetLeaguesForUser", mock.Anything, "ghost", "2024").Return(nil, sleeper.ErrUserNotFound)

	w := serveTestRequest(ctrl, http.MethodGet, "/api/users/ghost/leagues?year=2024", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestStandingsHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	standings := []model.Standing{
		{RosterID: 1, TeamName: "Puk Nukem", Wins: 5, Losses: 1, Rank: 1},
	}
	ctrl.On("GetLeagueStandings", mock.Anything, "924").Return(standings, nil)

	w := serveTestRequest(ctrl, http.MethodGet, "/api/leagues/924/standings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Puk Nukem") {
		t.Errorf("expected the team name in the response, got %s", w.Body.String())
	}
}

func TestStandingsHandlerError(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetLeagueStandings", mock.Anything, "924").Return(nil, errors.New("boom"))

	w := serveTestRequest(ctrl, http.MethodGet, "/api/leagues/924/standings", "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestTradesHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	trades := []model.Trade{{ID: "t1", Status: "complete", RosterIDs: []int{1, 2}}}
	ctrl.On("GetTrades", mock.Anything, "924").Return(trades, nil)

	w := serveTestRequest(ctrl, http.MethodGet, "/api/leagues/924/trades", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "t1") {
		t.Errorf("expected the trade id in the response, got %s", w.Body.String())
	}
}

func TestTradesHandlerEmpty(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("GetTrades", mock.Anything, "924").Return([]model.Trade{}, nil)

	w := serveTestRequest(ctrl, http.MethodGet, "/api/leagues/924/trades", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestSimulateHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	result := &model.SimulationResult{AffectedTeams: []int{1, 2}}
	ctrl.On("SimulateTradeUndo", mock.Anything, "924", []string{"t1"}).Return(result, nil)

	w := serveTestRequest(ctrl, http.MethodPost, "/api/leagues/924/simulate", `{"trade_ids":["t1"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "AffectedTeams") {
		t.Errorf("expected simulation output, got %s", w.Body.String())
	}
}

func TestSimulateHandlerBadBody(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := serveTestRequest(ctrl, http.MethodPost, "/api/leagues/924/simulate", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestSimulateHandlerError(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("SimulateTradeUndo", mock.Anything, "924", mock.Anything).Return(nil, errors.New("boom"))

	w := serveTestRequest(ctrl, http.MethodPost, "/api/leagues/924/simulate", `{"trade_ids":[]}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", w.Code)
	}
}

func TestPlayerSearchHandler(t *testing.T) {
	ctrl := &mockcontroller.C{}
	players := []model.Player{{ID: "2001", FirstName: "Josh", LastName: "Allen", Position: model.POS_QB}}
	ctrl.On("Search", mock.Anything, "Allen").Return(players, nil)

	w := serveTestRequest(ctrl, http.MethodGet, "/api/players?q=Allen", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Josh") {
		t.Errorf("expected the player in the response, got %s", w.Body.String())
	}
}

func TestPlayerSearchHandlerMissingQuery(t *testing.T) {
	ctrl := &mockcontroller.C{}

	w := serveTestRequest(ctrl, http.MethodGet, "/api/players", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestForceUpdatePlayers(t *testing.T) {
	ctrl := &mockcontroller.C{}
	ctrl.On("UpdatePlayers", mock.Anything).Return(nil)

	w := serveTestRequest(ctrl, http.MethodPost, "/admin/players", "")
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
