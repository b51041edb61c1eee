package model

import "slices"

// Roster is one team's holdings and season record within a single season.
// The fetched rosters are treated as read-only facts; simulations operate
// on clones only.
type Roster struct {
	ID            int
	OwnerID       string
	Players       []string
	Starters      []string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
}

// Clone returns a deep copy. The player and starter slices are copied so
// that mutating the clone never touches the original.
func (r *Roster) Clone() Roster {
	c := *r
	c.Players = slices.Clone(r.Players)
	c.Starters = slices.Clone(r.Starters)
	return c
}

// CloneRosters deep-copies a whole roster set.
func CloneRosters(rosters []Roster) []Roster {
	result := make([]Roster, 0, len(rosters))
	for i := range rosters {
		result = append(result, rosters[i].Clone())
	}
	return result
}

func (r *Roster) HasPlayer(id string) bool {
	return slices.Contains(r.Players, id)
}
