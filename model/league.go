package model

import "fmt"

// League is a league the dashboard follows. ExternalID is the Sleeper
// league id for the most recent season.
type League struct {
	ID         int32
	ExternalID string
	Name       string
	Year       string
	Archived   bool
}

// Season is one year's instance of a league. Seasons form a singly linked,
// reverse-chronological chain via PreviousSeasonID. The chain may have gaps
// and a missing predecessor is not an error.
type Season struct {
	ID               string
	Year             int
	Name             string
	Status           string
	TotalRosters     int
	PreviousSeasonID string
}

type User struct {
	ID          string
	Username    string
	DisplayName string
	TeamName    string
}

// TeamNames maps each roster id to a display name: the owner's team name if
// set, then their display name, then a generic fallback.
func TeamNames(rosters []Roster, users []User) map[int]string {
	byID := make(map[string]User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	names := make(map[int]string, len(rosters))
	for _, r := range rosters {
		names[r.ID] = teamNameFor(r, byID)
	}
	return names
}

func teamNameFor(r Roster, users map[string]User) string {
	if u, found := users[r.OwnerID]; found {
		if u.TeamName != "" {
			return u.TeamName
		}
		if u.DisplayName != "" {
			return u.DisplayName
		}
	}
	return genericTeamName(r.ID)
}

func genericTeamName(rosterID int) string {
	return fmt.Sprintf("Team %d", rosterID)
}
