package controller

import (
	"context"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sethclem/Sleeper/db"
	"github.com/sethclem/Sleeper/model"
	"github.com/sethclem/Sleeper/sleeper"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Look up a Sleeper user. Absence is a genuine not-found error, the one
	// place where a missing result is surfaced instead of degraded.
	GetUser(ctx context.Context, username string) (*model.User, error)
	GetLeaguesForUser(ctx context.Context, username, year string) ([]model.Season, error)

	// Current standings for a league, ranked by wins then points-for.
	GetLeagueStandings(ctx context.Context, leagueID string) ([]model.Standing, error)
	// All completed trades for the league's current season, newest first.
	GetTrades(ctx context.Context, leagueID string) ([]model.Trade, error)
	// Resolve a traded draft pick to its slot and, when the draft has
	// happened, the player selected. Missing information is represented by
	// a progressively less specific result, never an error.
	ResolveDraftPick(ctx context.Context, leagueID string, pick model.DraftPickRef) *model.ResolvedPick
	// Recompute the season as if the given trades never happened.
	SimulateTradeUndo(ctx context.Context, leagueID string, tradeIDs []string) (*model.SimulationResult, error)

	GetPlayer(ctx context.Context, id string) (*model.Player, error)
	Search(ctx context.Context, query string) ([]model.Player, error)
	UpdatePlayers(ctx context.Context) error
	RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup)

	AddLeague(ctx context.Context, externalID, name, year string) (*model.League, error)
	GetLeague(ctx context.Context, id int32) (*model.League, error)
	ListLeagues(ctx context.Context) ([]model.League, error)
	ArchiveLeague(ctx context.Context, id int32) error
}

// SeasonCompleteFunc reports whether a season's final standings can be
// trusted for draft-order math. The provider has no explicit
// "playoffs finished" signal, so the default is the conservative
// year-has-ended check; callers may inject something smarter.
type SeasonCompleteFunc func(year int) bool

type controller struct {
	clock    clock.Clock
	sleeper  sleeper.Client
	db       db.DB
	complete SeasonCompleteFunc
	pace     time.Duration
	bundles  bundleCache
}

func New(clock clock.Clock, sleeper sleeper.Client, db db.DB, complete SeasonCompleteFunc) (C, error) {
	c := &controller{
		clock:    clock,
		sleeper:  sleeper,
		db:       db,
		complete: complete,
		pace:     pacingDelay,
	}
	if c.complete == nil {
		c.complete = func(year int) bool {
			return year < clock.Now().Year()
		}
	}
	return c, nil
}

// paceRequests spaces out sequential calls to the provider. Sleeper has an
// unpublished rate limit.
func (c *controller) paceRequests() {
	if c.pace > 0 {
		c.clock.Sleep(c.pace)
	}
}
