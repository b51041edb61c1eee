package sleeper

import (
	"log"
	"strconv"
	"time"

	"github.com/sethclem/Sleeper/model"
)

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

func (p *sleeperPlayer) toPlayer() *model.Player {
	return &model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      p.Team,
		Active:    p.Active,
	}
}

type sleeperUser struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Metadata    *struct {
		TeamName string `json:"team_name"`
	} `json:"metadata"`
}

func (u *sleeperUser) toUser() *model.User {
	result := &model.User{
		ID:          u.UserID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
	if u.Metadata != nil {
		result.TeamName = u.Metadata.TeamName
	}
	return result
}

type sleeperLeague struct {
	LeagueID         string `json:"league_id"`
	Name             string `json:"name"`
	Season           string `json:"season"`
	Status           string `json:"status"`
	TotalRosters     int    `json:"total_rosters"`
	PreviousLeagueID string `json:"previous_league_id"`
}

func (l *sleeperLeague) toSeason() *model.Season {
	return &model.Season{
		ID:               l.LeagueID,
		Year:             parseYear(l.Season, l.LeagueID),
		Name:             l.Name,
		Status:           l.Status,
		TotalRosters:     l.TotalRosters,
		PreviousSeasonID: l.PreviousLeagueID,
	}
}

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
	Settings struct {
		Wins               int `json:"wins"`
		Losses             int `json:"losses"`
		Ties               int `json:"ties"`
		Fpts               int `json:"fpts"`
		FptsDecimal        int `json:"fpts_decimal"`
		FptsAgainst        int `json:"fpts_against"`
		FptsAgainstDecimal int `json:"fpts_against_decimal"`
	} `json:"settings"`
}

func (r *sleeperRoster) toRoster() *model.Roster {
	return &model.Roster{
		ID:            r.RosterID,
		OwnerID:       r.OwnerID,
		Players:       r.Players,
		Starters:      r.Starters,
		Wins:          r.Settings.Wins,
		Losses:        r.Settings.Losses,
		Ties:          r.Settings.Ties,
		PointsFor:     combinePoints(r.Settings.Fpts, r.Settings.FptsDecimal),
		PointsAgainst: combinePoints(r.Settings.FptsAgainst, r.Settings.FptsAgainstDecimal),
	}
}

// Sleeper splits point totals into a whole part and a hundredths part.
func combinePoints(whole, decimal int) float64 {
	return float64(whole) + float64(decimal)/100
}

type sleeperMatchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Points        float64            `json:"points"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

func (m *sleeperMatchup) toMatchup(week int) *model.Matchup {
	return &model.Matchup{
		RosterID:      m.RosterID,
		MatchupID:     m.MatchupID,
		Week:          week,
		Points:        m.Points,
		PlayersPoints: m.PlayersPoints,
	}
}

type sleeperTransaction struct {
	TransactionID string              `json:"transaction_id"`
	Type          string              `json:"type"`
	Status        string              `json:"status"`
	StatusUpdated int64               `json:"status_updated"`
	RosterIDs     []int               `json:"roster_ids"`
	Adds          map[string]int      `json:"adds"`
	Drops         map[string]int      `json:"drops"`
	DraftPicks    []sleeperTradedPick `json:"draft_picks"`
}

type sleeperTradedPick struct {
	Season          string `json:"season"`
	Round           int    `json:"round"`
	RosterID        int    `json:"roster_id"`
	OwnerID         int    `json:"owner_id"`
	PreviousOwnerID int    `json:"previous_owner_id"`
	OriginalOwner   int    `json:"original_owner"`
}

func (t *sleeperTransaction) toTrade() *model.Trade {
	picks := make([]model.DraftPickRef, 0, len(t.DraftPicks))
	for _, p := range t.DraftPicks {
		picks = append(picks, model.NormalizeDraftPick(
			parseYear(p.Season, t.TransactionID),
			p.Round,
			p.OriginalOwner,
			p.PreviousOwnerID,
			p.RosterID,
			p.OwnerID,
		))
	}

	return &model.Trade{
		ID:            t.TransactionID,
		Status:        t.Status,
		StatusUpdated: time.UnixMilli(t.StatusUpdated).UTC(),
		RosterIDs:     t.RosterIDs,
		Adds:          t.Adds,
		Drops:         t.Drops,
		DraftPicks:    picks,
	}
}

type sleeperDraft struct {
	DraftID string `json:"draft_id"`
	Season  string `json:"season"`
	Status  string `json:"status"`
}

func (d *sleeperDraft) toDraft() *model.Draft {
	return &model.Draft{
		ID:     d.DraftID,
		Season: parseYear(d.Season, d.DraftID),
		Status: d.Status,
	}
}

type sleeperDraftPickDetail struct {
	PickNo   int    `json:"pick_no"`
	Round    int    `json:"round"`
	RosterID int    `json:"roster_id"`
	PlayerID string `json:"player_id"`
}

func (p *sleeperDraftPickDetail) toDetail() *model.DraftPickDetail {
	return &model.DraftPickDetail{
		PickNo:   p.PickNo,
		Round:    p.Round,
		RosterID: p.RosterID,
		PlayerID: p.PlayerID,
	}
}

type sleeperState struct {
	Week   int    `json:"week"`
	Season string `json:"season"`
}

func (s *sleeperState) toState() *model.LeagueState {
	return &model.LeagueState{
		Week:   s.Week,
		Season: s.Season,
	}
}

func parseYear(y, context string) int {
	if y == "" {
		return 0
	}
	v, err := strconv.Atoi(y)
	if err != nil {
		log.Printf("error parsing season year %q for %s: %v", y, context, err)
		return 0
	}
	return v
}
