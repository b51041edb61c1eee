package mockcontroller

import (
	"context"
	"sync"
	"time"

	"github.com/sethclem/Sleeper/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) GetUser(ctx context.Context, username string) (*model.User, error) {
	args := c.Called(ctx, username)

	var res *model.User
	if args.Get(0) != nil {
		res = args.Get(0).(*model.User)
	}

	return res, args.Error(1)
}

func (c *C) GetLeaguesForUser(ctx context.Context, username, year string) ([]model.Season, error) {
	args := c.Called(ctx, username, year)

	var res []model.Season
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Season)
	}

	return res, args.Error(1)
}

func (c *C) GetLeagueStandings(ctx context.Context, leagueID string) ([]model.Standing, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Standing
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Standing)
	}

	return res, args.Error(1)
}

func (c *C) GetTrades(ctx context.Context, leagueID string) ([]model.Trade, error) {
	args := c.Called(ctx, leagueID)

	var res []model.Trade
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Trade)
	}

	return res, args.Error(1)
}

func (c *C) ResolveDraftPick(ctx context.Context, leagueID string, pick model.DraftPickRef) *model.ResolvedPick {
	args := c.Called(ctx, leagueID, pick)

	var res *model.ResolvedPick
	if args.Get(0) != nil {
		res = args.Get(0).(*model.ResolvedPick)
	}

	return res
}

func (c *C) SimulateTradeUndo(ctx context.Context, leagueID string, tradeIDs []string) (*model.SimulationResult, error) {
	args := c.Called(ctx, leagueID, tradeIDs)

	var res *model.SimulationResult
	if args.Get(0) != nil {
		res = args.Get(0).(*model.SimulationResult)
	}

	return res, args.Error(1)
}

func (c *C) GetPlayer(ctx context.Context, id string) (*model.Player, error) {
	args := c.Called(ctx, id)

	var res *model.Player
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Player)
	}

	return res, args.Error(1)
}

func (c *C) Search(ctx context.Context, query string) ([]model.Player, error) {
	args := c.Called(ctx, query)

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *C) UpdatePlayers(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) RunPeriodicPlayerUpdates(frequency time.Duration, shutdown chan bool, wg *sync.WaitGroup) {
	c.Called(frequency, shutdown, wg)
}

func (c *C) AddLeague(ctx context.Context, externalID, name, year string) (*model.League, error) {
	args := c.Called(ctx, externalID, name, year)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *C) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	args := c.Called(ctx, id)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *C) ListLeagues(ctx context.Context) ([]model.League, error) {
	args := c.Called(ctx)

	var res []model.League
	if args.Get(0) != nil {
		res = args.Get(0).([]model.League)
	}

	return res, args.Error(1)
}

func (c *C) ArchiveLeague(ctx context.Context, id int32) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}
