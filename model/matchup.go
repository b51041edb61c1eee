package model

// Matchup is one roster's side of a weekly head-to-head pairing. Two
// matchups in the same week sharing a MatchupID are opponents. A roster on
// a bye has a pairing with only one entry.
type Matchup struct {
	RosterID      int
	MatchupID     int
	Week          int
	Points        float64
	PlayersPoints map[string]float64
}

// Clone copies the matchup including its per-player point breakdown.
func (m *Matchup) Clone() Matchup {
	c := *m
	if m.PlayersPoints != nil {
		c.PlayersPoints = make(map[string]float64, len(m.PlayersPoints))
		for id, pts := range m.PlayersPoints {
			c.PlayersPoints[id] = pts
		}
	}
	return c
}
