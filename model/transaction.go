package model

import "time"

const (
	TransactionTypeTrade      = "trade"
	TransactionStatusComplete = "complete"
)

// Trade is an immutable, completed trade transaction. Adds maps a player id
// to the roster that received the player, Drops maps a player id to the
// roster that gave the player up.
type Trade struct {
	ID            string
	Status        string
	StatusUpdated time.Time
	RosterIDs     []int
	Adds          map[string]int
	Drops         map[string]int
	DraftPicks    []DraftPickRef
}

// DraftPickRef is a traded draft selection. The original owner determines
// the draft slot (via the prior season's standings) no matter how many
// times the pick itself changes hands.
//
// Sleeper transactions name the original owner inconsistently across API
// generations: original_owner, previous_owner_id, or the pick's roster_id.
// NormalizeDraftPick resolves that once, at ingestion, so consumers only
// ever look at OriginalOwnerRosterID.
type DraftPickRef struct {
	Season                int
	Round                 int
	OriginalOwnerRosterID int
	CurrentOwnerRosterID  int
}

// NormalizeDraftPick builds a DraftPickRef from the raw owner fields in
// documented preference order: originalOwner, then previousOwner, then the
// pick's own rosterID. ownerID is the pick's current holder.
func NormalizeDraftPick(season, round, originalOwner, previousOwner, rosterID, ownerID int) DraftPickRef {
	original := rosterID
	if previousOwner != 0 {
		original = previousOwner
	}
	if originalOwner != 0 {
		original = originalOwner
	}

	return DraftPickRef{
		Season:                season,
		Round:                 round,
		OriginalOwnerRosterID: original,
		CurrentOwnerRosterID:  ownerID,
	}
}

// Draft is a league draft for one season.
type Draft struct {
	ID     string
	Season int
	Status string
}

func (d *Draft) IsComplete() bool {
	return d.Status == "complete"
}

// DraftPickDetail is a single selection within a completed (or in-progress)
// draft. PickNo is the overall pick number across all rounds.
type DraftPickDetail struct {
	PickNo   int
	Round    int
	RosterID int
	PlayerID string
}

// ResolvedPick is the progressively resolved description of a traded pick.
// Slot and Player are empty when the information cannot be known yet.
type ResolvedPick struct {
	Season int
	Round  int
	Label  string
	Slot   string
	Player string
}
