package controller

import (
	"context"
	"fmt"
	"log"
	"math"
	"slices"

	"github.com/sethclem/Sleeper/model"
)

const maxRegularSeasonWeeks = 18

// GetTrades returns every completed trade for the league's current season,
// newest first. Weeks whose transaction fetch fails are skipped.
func (c *controller) GetTrades(ctx context.Context, leagueID string) ([]model.Trade, error) {
	trades := make([]model.Trade, 0, 8)
	lastWeek := c.lastWeek()
	for week := 1; week <= lastWeek; week++ {
		if week > 1 {
			c.paceRequests()
		}
		weekTrades, err := c.sleeper.GetTransactions(leagueID, week)
		if err != nil {
			log.Printf("error loading transactions for league %s week %d: %v", leagueID, week, err)
			continue
		}
		trades = append(trades, weekTrades...)
	}

	slices.SortFunc(trades, func(a, b model.Trade) int {
		return b.StatusUpdated.Compare(a.StatusUpdated)
	})
	return trades, nil
}

// SimulateTradeUndo rebuilds the season under the hypothesis that the
// selected trades never happened: alternate rosters, re-derived weekly
// outcomes, and standings to compare against the real ones.
func (c *controller) SimulateTradeUndo(ctx context.Context, leagueID string, tradeIDs []string) (*model.SimulationResult, error) {
	rosters, err := c.sleeper.GetRosters(leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}

	users, err := c.sleeper.GetLeagueUsers(leagueID)
	if err != nil {
		// Team names degrade to a generic label, the simulation still runs.
		log.Printf("error loading users for league %s: %v", leagueID, err)
		users = nil
	}

	allTrades, err := c.GetTrades(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]bool, len(tradeIDs))
	for _, id := range tradeIDs {
		wanted[id] = true
	}
	trades := make([]model.Trade, 0, len(tradeIDs))
	for _, t := range allTrades {
		if wanted[t.ID] {
			trades = append(trades, t)
		}
	}

	weeks := c.loadWeeklyMatchups(leagueID)
	names := model.TeamNames(rosters, users)

	altRosters := undoTrades(rosters, trades)
	altWeeks := resimulateMatchups(weeks, altRosters, rosters)

	return &model.SimulationResult{
		OriginalStandings:  rankRosters(rosters, names),
		SimulatedStandings: rankFromMatchups(altWeeks, altRosters, names),
		WeeklyImpact:       weeklyImpact(weeks, altWeeks, names),
		AffectedTeams:      affectedTeams(trades),
	}, nil
}

func (c *controller) lastWeek() int {
	if state, err := c.sleeper.GetState(); err == nil && state.Week > 0 && state.Week < maxRegularSeasonWeeks {
		return state.Week
	}
	return maxRegularSeasonWeeks
}

// loadWeeklyMatchups fetches every week's matchups. A failed or empty week
// is omitted from the map; the aggregate simply lacks that slice.
func (c *controller) loadWeeklyMatchups(leagueID string) map[int][]model.Matchup {
	weeks := make(map[int][]model.Matchup)
	lastWeek := c.lastWeek()
	for week := 1; week <= lastWeek; week++ {
		if week > 1 {
			c.paceRequests()
		}
		matchups, err := c.sleeper.GetMatchups(leagueID, week)
		if err != nil {
			log.Printf("error loading matchups for league %s week %d: %v", leagueID, week, err)
			continue
		}
		if len(matchups) == 0 {
			continue
		}
		weeks[week] = matchups
	}
	return weeks
}

// undoTrades produces the alternate-timeline roster set. The input rosters
// are deep-copied and never mutated. Trades are reversed newest first so
// that a player who changed hands more than once is removed from their
// latest holder before being returned to an earlier one.
func undoTrades(rosters []model.Roster, trades []model.Trade) []model.Roster {
	alt := model.CloneRosters(rosters)
	byID := make(map[int]*model.Roster, len(alt))
	for i := range alt {
		byID[alt[i].ID] = &alt[i]
	}

	ordered := slices.Clone(trades)
	slices.SortFunc(ordered, func(a, b model.Trade) int {
		return b.StatusUpdated.Compare(a.StatusUpdated)
	})

	for _, t := range ordered {
		for _, playerID := range sortedKeys(t.Adds) {
			r := byID[t.Adds[playerID]]
			if r == nil {
				continue
			}
			r.Players = removePlayer(r.Players, playerID)
			r.Starters = removePlayer(r.Starters, playerID)
		}
		for _, playerID := range sortedKeys(t.Drops) {
			r := byID[t.Drops[playerID]]
			if r == nil {
				continue
			}
			// Starters are not restored: reversing a trade does not
			// resurrect historical lineup decisions.
			if !slices.Contains(r.Players, playerID) {
				r.Players = append(r.Players, playerID)
			}
		}
	}

	return alt
}

// resimulateMatchups derives the alternate timeline's weekly scores from
// the real ones via pointDeltaAdjustment. Matchups for rosters without an
// alternate entry pass through unchanged. Scores never go negative.
func resimulateMatchups(weeks map[int][]model.Matchup, altRosters, origRosters []model.Roster) map[int][]model.Matchup {
	origByID := rostersByID(origRosters)
	altByID := rostersByID(altRosters)

	result := make(map[int][]model.Matchup, len(weeks))
	for week, matchups := range weeks {
		altMatchups := make([]model.Matchup, 0, len(matchups))
		for _, m := range matchups {
			am := m.Clone()
			alt, found := altByID[m.RosterID]
			if found {
				adj := pointDeltaAdjustment(&m, origByID[m.RosterID], alt)
				am.Points = math.Max(0, m.Points+adj)
			}
			altMatchups = append(altMatchups, am)
		}
		result[week] = altMatchups
	}
	return result
}

// pointDeltaAdjustment estimates how a roster change moves a week's score:
// players gained relative to the original roster add their recorded box
// score points, players lost subtract theirs. This is a deliberate
// heuristic proxy; it does not model bench depth or lineup optimization.
func pointDeltaAdjustment(m *model.Matchup, orig, alt *model.Roster) float64 {
	origSet := make(map[string]bool, len(orig.Players))
	for _, p := range orig.Players {
		origSet[p] = true
	}
	altSet := make(map[string]bool, len(alt.Players))
	for _, p := range alt.Players {
		altSet[p] = true
	}

	var adj float64
	for _, p := range alt.Players {
		if !origSet[p] {
			adj += m.PlayersPoints[p]
		}
	}
	for _, p := range orig.Players {
		if !altSet[p] {
			adj -= m.PlayersPoints[p]
		}
	}
	return adj
}

func weeklyImpact(weeks, altWeeks map[int][]model.Matchup, teamNames map[int]string) []model.WeekImpact {
	weekNums := make([]int, 0, len(weeks))
	for w := range weeks {
		weekNums = append(weekNums, w)
	}
	slices.Sort(weekNums)

	impacts := make([]model.WeekImpact, 0, len(weekNums))
	for _, week := range weekNums {
		orig := weeks[week]
		alt := altWeeks[week]

		origResults := pairingResults(orig)
		altResults := pairingResults(alt)
		altPoints := make(map[int]float64, len(alt))
		for _, m := range alt {
			altPoints[m.RosterID] = m.Points
		}

		teams := make([]model.TeamImpact, 0, len(orig))
		for _, m := range orig {
			simulated := altPoints[m.RosterID]
			teams = append(teams, model.TeamImpact{
				RosterID:        m.RosterID,
				TeamName:        teamNames[m.RosterID],
				OriginalPoints:  m.Points,
				SimulatedPoints: simulated,
				Difference:      roundToCents(simulated - m.Points),
				OriginalResult:  origResults[m.RosterID],
				SimulatedResult: altResults[m.RosterID],
			})
		}
		impacts = append(impacts, model.WeekImpact{Week: week, Teams: teams})
	}
	return impacts
}

// affectedTeams is the union of roster ids across the undone trades,
// ascending.
func affectedTeams(trades []model.Trade) []int {
	set := make(map[int]bool)
	for _, t := range trades {
		for _, id := range t.RosterIDs {
			set[id] = true
		}
	}

	result := make([]int, 0, len(set))
	for id := range set {
		result = append(result, id)
	}
	slices.Sort(result)
	return result
}

func rostersByID(rosters []model.Roster) map[int]*model.Roster {
	byID := make(map[int]*model.Roster, len(rosters))
	for i := range rosters {
		byID[rosters[i].ID] = &rosters[i]
	}
	return byID
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func removePlayer(players []string, id string) []string {
	return slices.DeleteFunc(players, func(p string) bool { return p == id })
}

func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}
