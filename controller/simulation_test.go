package controller

import (
	"context"
	"reflect"
	"slices"
	"testing"

	"github.com/sethclem/Sleeper/model"
	"github.com/sethclem/Sleeper/testutils"
)

func TestGetTrades(t *testing.T) {
	c := newTestController(t, nil)

	trades, err := c.GetTrades(context.Background(), testutils.SleeperLeagueID)
	if err != nil {
		t.Fatalf("error getting trades: %v", err)
	}
	if len(trades) != 1 {
		t.Fatalf("expected 1 trade, got %d", len(trades))
	}

	trade := trades[0]
	if trade.ID != "t1" {
		t.Errorf("expected trade t1, got %s", trade.ID)
	}
	expectedPicks := []model.DraftPickRef{
		{Season: 2025, Round: 3, OriginalOwnerRosterID: 2, CurrentOwnerRosterID: 1},
	}
	if !reflect.DeepEqual(expectedPicks, trade.DraftPicks) {
		t.Errorf("expected picks %v, got %v", expectedPicks, trade.DraftPicks)
	}
}

func TestUndoTrades(t *testing.T) {
	rosters := []model.Roster{
		{ID: 1, Players: []string{"A", "B"}, Starters: []string{"A"}},
		{ID: 2, Players: []string{"C"}, Starters: []string{"C"}},
	}

	trades := []model.Trade{
		{
			ID:        "t1",
			RosterIDs: []int{1, 2},
			Adds:      map[string]int{"A": 1},
			Drops:     map[string]int{"A": 2},
		},
	}

	alt := undoTrades(rosters, trades)

	// The traded player returns to the roster that gave them up. They are
	// not restored to that roster's starters.
	expected := []model.Roster{
		{ID: 1, Players: []string{"B"}, Starters: []string{}},
		{ID: 2, Players: []string{"C", "A"}, Starters: []string{"C"}},
	}
	if !reflect.DeepEqual(expected, alt) {
		t.Errorf("expected rosters %v, got %v", expected, alt)
	}

	// The inputs are never mutated.
	if !reflect.DeepEqual([]string{"A", "B"}, rosters[0].Players) {
		t.Errorf("original roster was mutated: %v", rosters[0].Players)
	}
	if !reflect.DeepEqual([]string{"A"}, rosters[0].Starters) {
		t.Errorf("original starters were mutated: %v", rosters[0].Starters)
	}
}

func TestUndoTradesNoTrades(t *testing.T) {
	rosters := []model.Roster{
		{ID: 1, Players: []string{"A"}, Starters: []string{"A"}},
		{ID: 2, Players: []string{"B"}, Starters: []string{"B"}},
	}

	alt := undoTrades(rosters, nil)
	if !reflect.DeepEqual(rosters, alt) {
		t.Errorf("expected rosters to be unchanged, got %v", alt)
	}
}

func TestUndoTradesChainedPlayer(t *testing.T) {
	// Player X went from roster 1 to 2, then later from 2 to 3. Undoing
	// both trades newest-first walks X back to roster 1 exactly once.
	rosters := []model.Roster{
		{ID: 1, Players: []string{"A"}},
		{ID: 2, Players: []string{"B"}},
		{ID: 3, Players: []string{"X"}},
	}

	trades := []model.Trade{
		{
			ID:            "early",
			StatusUpdated: testTime(1),
			RosterIDs:     []int{1, 2},
			Adds:          map[string]int{"X": 2},
			Drops:         map[string]int{"X": 1},
		},
		{
			ID:            "late",
			StatusUpdated: testTime(2),
			RosterIDs:     []int{2, 3},
			Adds:          map[string]int{"X": 3},
			Drops:         map[string]int{"X": 2},
		},
	}

	alt := undoTrades(rosters, trades)

	expected := []model.Roster{
		{ID: 1, Players: []string{"A", "X"}},
		{ID: 2, Players: []string{"B"}},
		{ID: 3, Players: []string{}},
	}
	if !reflect.DeepEqual(expected, alt) {
		t.Errorf("expected rosters %v, got %v", expected, alt)
	}
}

func TestUndoTradesRepeatedTrade(t *testing.T) {
	rosters := []model.Roster{
		{ID: 1, Players: []string{"A", "B"}, Starters: []string{"A"}},
		{ID: 2, Players: []string{"C"}, Starters: []string{"C"}},
	}

	trade := model.Trade{
		ID:        "t1",
		RosterIDs: []int{1, 2},
		Adds:      map[string]int{"A": 1},
		Drops:     map[string]int{"A": 2},
	}

	// Undoing the same trade twice lands in the same place as undoing it
	// once: the player is already gone from the receiver and the giver
	// never gets a duplicate.
	once := undoTrades(rosters, []model.Trade{trade})
	twice := undoTrades(rosters, []model.Trade{trade, trade})
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected repeated undo %v to match single undo %v", twice, once)
	}
}

func TestUndoTradesReversible(t *testing.T) {
	rosters := []model.Roster{
		{ID: 1, Players: []string{"A", "B"}, Starters: []string{"A"}},
		{ID: 2, Players: []string{"C", "D"}, Starters: []string{"C"}},
	}

	trade := model.Trade{
		ID:        "t1",
		RosterIDs: []int{1, 2},
		Adds:      map[string]int{"A": 1, "D": 2},
		Drops:     map[string]int{"A": 2, "D": 1},
	}

	alt := undoTrades(rosters, []model.Trade{trade})

	// Re-applying the trade to the alternate timeline restores each
	// roster's player set. Order may differ, so compare as sets.
	redone := model.CloneRosters(alt)
	byID := make(map[int]*model.Roster, len(redone))
	for i := range redone {
		byID[redone[i].ID] = &redone[i]
	}
	for playerID, rosterID := range trade.Drops {
		r := byID[rosterID]
		r.Players = removePlayer(r.Players, playerID)
	}
	for playerID, rosterID := range trade.Adds {
		r := byID[rosterID]
		r.Players = append(r.Players, playerID)
	}

	for i := range rosters {
		expected := slices.Clone(rosters[i].Players)
		actual := slices.Clone(redone[i].Players)
		slices.Sort(expected)
		slices.Sort(actual)
		if !reflect.DeepEqual(expected, actual) {
			t.Errorf("roster %d: expected players %v, got %v", rosters[i].ID, expected, actual)
		}
	}
}

func TestResimulateMatchupsFloor(t *testing.T) {
	orig := []model.Roster{{ID: 1, Players: []string{"A"}}}
	alt := []model.Roster{{ID: 1, Players: []string{}}}

	weeks := map[int][]model.Matchup{
		1: {
			{RosterID: 1, MatchupID: 1, Week: 1, Points: 5, PlayersPoints: map[string]float64{"A": 30}},
		},
	}

	result := resimulateMatchups(weeks, alt, orig)

	// Losing a 30 point player from a 5 point week clamps at zero.
	if got := result[1][0].Points; got != 0 {
		t.Errorf("expected 0 points, got %v", got)
	}
}

func TestSimulateTradeUndo(t *testing.T) {
	c := newTestController(t, nil)

	result, err := c.SimulateTradeUndo(context.Background(), testutils.SleeperLeagueID, []string{"t1"})
	if err != nil {
		t.Fatalf("error simulating: %v", err)
	}

	expected := &model.SimulationResult{
		OriginalStandings: []model.Standing{
			{RosterID: 1, TeamName: "Puk Nukem", Wins: 5, Losses: 1, PointsFor: 620.50, PointsAgainst: 540.25, Rank: 1},
			{RosterID: 2, TeamName: "No-Bell Prizes", Wins: 4, Losses: 2, PointsFor: 580.00, PointsAgainst: 555.25, Rank: 2},
			{RosterID: 3, TeamName: "gee17", Wins: 2, Losses: 4, PointsFor: 530.75, PointsAgainst: 570.50, Rank: 3},
			{RosterID: 4, TeamName: "Jolly Roger", Wins: 1, Losses: 5, PointsFor: 490.25, PointsAgainst: 610.75, Rank: 4},
		},
		SimulatedStandings: []model.Standing{
			{RosterID: 3, TeamName: "gee17", Wins: 2, PointsFor: 165, PointsAgainst: 140, Rank: 1},
			{RosterID: 2, TeamName: "No-Bell Prizes", Wins: 1, Losses: 1, PointsFor: 178, PointsAgainst: 172, Rank: 2},
			{RosterID: 4, TeamName: "Jolly Roger", Wins: 1, Losses: 1, PointsFor: 162, PointsAgainst: 168, Rank: 3},
			{RosterID: 1, TeamName: "Puk Nukem", Losses: 2, PointsFor: 150, PointsAgainst: 175, Rank: 4},
		},
		WeeklyImpact: []model.WeekImpact{
			{
				Week: 1,
				Teams: []model.TeamImpact{
					{RosterID: 1, TeamName: "Puk Nukem", OriginalPoints: 100, SimulatedPoints: 80, Difference: -20, OriginalResult: "W", SimulatedResult: "L"},
					{RosterID: 2, TeamName: "No-Bell Prizes", OriginalPoints: 90, SimulatedPoints: 90, OriginalResult: "L", SimulatedResult: "W"},
					{RosterID: 3, TeamName: "gee17", OriginalPoints: 80, SimulatedPoints: 80, OriginalResult: "W", SimulatedResult: "W"},
					{RosterID: 4, TeamName: "Jolly Roger", OriginalPoints: 70, SimulatedPoints: 70, OriginalResult: "L", SimulatedResult: "L"},
				},
			},
			{
				Week: 2,
				Teams: []model.TeamImpact{
					{RosterID: 1, TeamName: "Puk Nukem", OriginalPoints: 95, SimulatedPoints: 70, Difference: -25, OriginalResult: "W", SimulatedResult: "L"},
					{RosterID: 3, TeamName: "gee17", OriginalPoints: 85, SimulatedPoints: 85, OriginalResult: "L", SimulatedResult: "W"},
					{RosterID: 2, TeamName: "No-Bell Prizes", OriginalPoints: 88, SimulatedPoints: 88, OriginalResult: "L", SimulatedResult: "L"},
					{RosterID: 4, TeamName: "Jolly Roger", OriginalPoints: 92, SimulatedPoints: 92, OriginalResult: "W", SimulatedResult: "W"},
				},
			},
		},
		AffectedTeams: []int{1, 2},
	}

	if !reflect.DeepEqual(expected.OriginalStandings, result.OriginalStandings) {
		t.Errorf("expected original standings %v, got %v", expected.OriginalStandings, result.OriginalStandings)
	}
	if !reflect.DeepEqual(expected.SimulatedStandings, result.SimulatedStandings) {
		t.Errorf("expected simulated standings %v, got %v", expected.SimulatedStandings, result.SimulatedStandings)
	}
	if !reflect.DeepEqual(expected.WeeklyImpact, result.WeeklyImpact) {
		t.Errorf("expected weekly impact %v, got %v", expected.WeeklyImpact, result.WeeklyImpact)
	}
	if !reflect.DeepEqual(expected.AffectedTeams, result.AffectedTeams) {
		t.Errorf("expected affected teams %v, got %v", expected.AffectedTeams, result.AffectedTeams)
	}
}

func TestSimulateTradeUndoNoTrades(t *testing.T) {
	c := newTestController(t, nil)

	result, err := c.SimulateTradeUndo(context.Background(), testutils.SleeperLeagueID, nil)
	if err != nil {
		t.Fatalf("error simulating: %v", err)
	}

	if len(result.AffectedTeams) != 0 {
		t.Errorf("expected no affected teams, got %v", result.AffectedTeams)
	}

	// With nothing undone, every week is a no-op.
	for _, week := range result.WeeklyImpact {
		for _, team := range week.Teams {
			if team.Difference != 0 {
				t.Errorf("week %d roster %d: expected no difference, got %v", week.Week, team.RosterID, team.Difference)
			}
			if team.OriginalResult != team.SimulatedResult {
				t.Errorf("week %d roster %d: expected result %q, got %q", week.Week, team.RosterID, team.OriginalResult, team.SimulatedResult)
			}
		}
	}
}

func TestAffectedTeams(t *testing.T) {
	trades := []model.Trade{
		{ID: "a", RosterIDs: []int{4, 2}},
		{ID: "b", RosterIDs: []int{2, 1}},
	}

	if got := affectedTeams(trades); !reflect.DeepEqual([]int{1, 2, 4}, got) {
		t.Errorf("expected [1 2 4], got %v", got)
	}
}
