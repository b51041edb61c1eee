package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/sethclem/Sleeper/model"
)

// draftSlotForRank is the single policy mapping a final-standings rank to
// a draft slot. Standard fantasy convention: the worst record picks first,
// so the rank-1 team drafts last.
func draftSlotForRank(rank, totalTeams int) int {
	return totalTeams - rank + 1
}

// ResolveDraftPick works out what a traded pick actually is: the slot it
// maps to under the prior season's final standings and, once the draft has
// happened, the player taken there. Every step that cannot complete leaves
// the result at its most specific known form; this never fails.
func (c *controller) ResolveDraftPick(ctx context.Context, leagueID string, pick model.DraftPickRef) *model.ResolvedPick {
	resolved := &model.ResolvedPick{
		Season: pick.Season,
		Round:  pick.Round,
		Label:  fmt.Sprintf("%d Round %d", pick.Season, pick.Round),
	}

	bundles, err := c.loadSeasonBundles(leagueID, []int{pick.Season - 1, pick.Season})
	if err != nil {
		log.Printf("error loading seasons to resolve pick %d round %d: %v", pick.Season, pick.Round, err)
		return resolved
	}

	c.resolvePickDetails(ctx, resolved, pick, bundles)
	return resolved
}

func (c *controller) resolvePickDetails(ctx context.Context, resolved *model.ResolvedPick, pick model.DraftPickRef, bundles map[int]*model.SeasonBundle) {
	// Draft order comes from the prior season's final standings. Without a
	// complete prior season the slot cannot be known yet.
	standingsBundle := bundles[pick.Season-1]
	if standingsBundle == nil || !standingsBundle.Complete {
		return
	}

	standings := rankRosters(standingsBundle.Rosters, model.TeamNames(standingsBundle.Rosters, standingsBundle.Users))
	rank := 0
	for _, s := range standings {
		if s.RosterID == pick.OriginalOwnerRosterID {
			rank = s.Rank
			break
		}
	}
	if rank == 0 {
		return
	}

	totalTeams := len(standingsBundle.Rosters)
	slot := draftSlotForRank(rank, totalTeams)
	resolved.Slot = fmt.Sprintf("%d.%02d", pick.Round, slot)
	resolved.Label = fmt.Sprintf("%d Round %d (%s)", pick.Season, pick.Round, resolved.Slot)

	// Never fabricate the outcome of a draft that has not happened.
	if pick.Season > c.clock.Now().Year() {
		return
	}

	seasonBundle := bundles[pick.Season]
	if seasonBundle == nil {
		return
	}

	overall := (pick.Round-1)*totalTeams + slot
	for _, d := range seasonBundle.Drafts {
		if d.Season != pick.Season || !d.IsComplete() {
			continue
		}
		for _, detail := range seasonBundle.DraftPicks[d.ID] {
			if detail.PickNo == overall && detail.PlayerID != "" {
				resolved.Player = c.playerLabel(ctx, detail.PlayerID)
				resolved.Label = fmt.Sprintf("%s - %s", resolved.Label, resolved.Player)
				return
			}
		}
	}
}

func (c *controller) playerLabel(ctx context.Context, playerID string) string {
	p, err := c.db.GetPlayer(ctx, playerID)
	if err != nil {
		return fmt.Sprintf("Player %s", playerID)
	}
	return p.FormattedName()
}
