package controller

import (
	"cmp"
	"slices"

	"github.com/sethclem/Sleeper/model"
)

// rankRosters computes standings straight from the rosters' cumulative
// season stats. Sort is wins descending, ties broken by points-for
// descending; rosters tied on both keys keep their input-relative order.
func rankRosters(rosters []model.Roster, teamNames map[int]string) []model.Standing {
	standings := make([]model.Standing, 0, len(rosters))
	for _, r := range rosters {
		standings = append(standings, model.Standing{
			RosterID:      r.ID,
			TeamName:      teamNames[r.ID],
			Wins:          r.Wins,
			Losses:        r.Losses,
			Ties:          r.Ties,
			PointsFor:     r.PointsFor,
			PointsAgainst: r.PointsAgainst,
		})
	}

	sortStandings(standings)
	return standings
}

// rankFromMatchups derives each roster's record by walking the weekly
// head-to-head pairings, then ranks with the same sort as rankRosters.
// A pairing without exactly two entries (a bye, or partial data) is
// skipped and contributes no stats.
func rankFromMatchups(weeks map[int][]model.Matchup, rosters []model.Roster, teamNames map[int]string) []model.Standing {
	type record struct {
		wins, losses, ties       int
		pointsFor, pointsAgainst float64
	}

	records := make(map[int]*record, len(rosters))
	for _, r := range rosters {
		records[r.ID] = &record{}
	}

	for _, matchups := range weeks {
		for _, pair := range groupPairings(matchups) {
			if len(pair) != 2 {
				continue
			}
			a, b := pair[0], pair[1]
			for _, side := range []struct {
				m, opp model.Matchup
			}{{a, b}, {b, a}} {
				rec, found := records[side.m.RosterID]
				if !found {
					rec = &record{}
					records[side.m.RosterID] = rec
				}
				rec.pointsFor += side.m.Points
				rec.pointsAgainst += side.opp.Points
				switch {
				case side.m.Points > side.opp.Points:
					rec.wins++
				case side.m.Points < side.opp.Points:
					rec.losses++
				default:
					rec.ties++
				}
			}
		}
	}

	standings := make([]model.Standing, 0, len(rosters))
	for _, r := range rosters {
		rec := records[r.ID]
		standings = append(standings, model.Standing{
			RosterID:      r.ID,
			TeamName:      teamNames[r.ID],
			Wins:          rec.wins,
			Losses:        rec.losses,
			Ties:          rec.ties,
			PointsFor:     rec.pointsFor,
			PointsAgainst: rec.pointsAgainst,
		})
	}

	sortStandings(standings)
	return standings
}

func sortStandings(standings []model.Standing) {
	slices.SortStableFunc(standings, func(a, b model.Standing) int {
		if a.Wins != b.Wins {
			return b.Wins - a.Wins
		}
		return cmp.Compare(b.PointsFor, a.PointsFor)
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
}

// groupPairings buckets one week's matchups by their pairing id.
func groupPairings(matchups []model.Matchup) map[int][]model.Matchup {
	pairings := make(map[int][]model.Matchup)
	for _, m := range matchups {
		pairings[m.MatchupID] = append(pairings[m.MatchupID], m)
	}
	return pairings
}

// pairingResults maps each roster to "W", "L" or "T" for one week.
// Rosters in skipped pairings are simply absent.
func pairingResults(matchups []model.Matchup) map[int]string {
	results := make(map[int]string)
	for _, pair := range groupPairings(matchups) {
		if len(pair) != 2 {
			continue
		}
		a, b := pair[0], pair[1]
		switch {
		case a.Points > b.Points:
			results[a.RosterID] = model.ResultWin
			results[b.RosterID] = model.ResultLoss
		case a.Points < b.Points:
			results[a.RosterID] = model.ResultLoss
			results[b.RosterID] = model.ResultWin
		default:
			results[a.RosterID] = model.ResultTie
			results[b.RosterID] = model.ResultTie
		}
	}
	return results
}
