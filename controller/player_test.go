package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/sethclem/Sleeper/db/mockdb"
	"github.com/sethclem/Sleeper/model"
	"github.com/sethclem/Sleeper/sleeper/mocksleeper"
	"github.com/stretchr/testify/mock"
)

func TestGetPositionFromQuery(t *testing.T) {
	tests := []struct {
		input       string
		expectedQ   string
		expectedPos model.Position
	}{
		{input: "Tom pos:QB", expectedQ: "Tom", expectedPos: model.POS_QB},
		{input: "position: wr Smith", expectedQ: "Smith", expectedPos: model.POS_WR},
		{input: "pos:rb", expectedQ: "", expectedPos: model.POS_RB},
		{input: "Kelce", expectedQ: "Kelce", expectedPos: model.POS_UNKNOWN},
		{input: "pos:coach", expectedQ: "", expectedPos: model.POS_UNKNOWN},
	}

	for _, tc := range tests {
		q, pos := getPositionFromQuery(tc.input)
		if q != tc.expectedQ || pos != tc.expectedPos {
			t.Errorf("getPositionFromQuery(%q): expected (%q, %v), got (%q, %v)",
				tc.input, tc.expectedQ, tc.expectedPos, q, pos)
		}
	}
}

func TestSearch(t *testing.T) {
	mdb := &mockdb.DB{}
	expected := []model.Player{{ID: "2001", FirstName: "Josh", LastName: "Allen", Position: model.POS_QB}}
	mdb.On("Search", mock.Anything, "Allen", model.POS_QB).Return(expected, nil)

	c := &controller{db: mdb}

	players, err := c.Search(context.Background(), "Allen pos:QB")
	if err != nil {
		t.Fatalf("error searching: %v", err)
	}
	if len(players) != 1 || players[0].ID != "2001" {
		t.Errorf("unexpected players: %v", players)
	}

	// An empty query with no position filter is rejected.
	if _, err := c.Search(context.Background(), "pos:coach"); err == nil {
		t.Errorf("expected an error for an empty query")
	}
}

func TestUpdatePlayers(t *testing.T) {
	players := []model.Player{
		{ID: "1001", FirstName: "Tyler", LastName: "Lockett", Position: model.POS_WR},
		{ID: "2001", FirstName: "Josh", LastName: "Allen", Position: model.POS_QB},
	}

	fake := &mocksleeper.Client{}
	fake.On("LoadPlayers").Return(players, nil)

	mdb := &mockdb.DB{}
	mdb.On("SavePlayer", mock.Anything, mock.Anything).Return(nil).Times(2)

	c := &controller{sleeper: fake, db: mdb}
	if err := c.UpdatePlayers(context.Background()); err != nil {
		t.Fatalf("error updating players: %v", err)
	}
	mdb.AssertExpectations(t)
}

func TestUpdatePlayersSaveError(t *testing.T) {
	fake := &mocksleeper.Client{}
	fake.On("LoadPlayers").Return([]model.Player{{ID: "1001"}}, nil)

	mdb := &mockdb.DB{}
	mdb.On("SavePlayer", mock.Anything, mock.Anything).Return(errors.New("db down"))

	c := &controller{sleeper: fake, db: mdb}
	if err := c.UpdatePlayers(context.Background()); err == nil {
		t.Errorf("expected a save error to propagate")
	}
}
