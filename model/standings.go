package model

// Standing is a derived ranking entry. It is recomputed on demand from
// rosters or simulated matchups and never persisted.
type Standing struct {
	RosterID      int
	TeamName      string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	Rank          int
}

// SeasonBundle is everything fetched for a single season that draft pick
// resolution needs. DraftPicks is keyed by draft id; a draft whose picks
// failed to load has an empty list, not a missing entry.
type SeasonBundle struct {
	Year       int
	Rosters    []Roster
	Users      []User
	Drafts     []Draft
	DraftPicks map[string][]DraftPickDetail
	Complete   bool
}

// LeagueState is the provider's current week/season marker.
type LeagueState struct {
	Week   int
	Season string
}
