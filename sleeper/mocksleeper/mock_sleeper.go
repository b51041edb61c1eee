package mocksleeper

import (
	"github.com/sethclem/Sleeper/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) LoadPlayers() ([]model.Player, error) {
	args := c.Called()

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}

func (c *Client) GetUser(username string) (*model.User, error) {
	args := c.Called(username)

	var res *model.User
	if args.Get(0) != nil {
		res = args.Get(0).(*model.User)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeaguesForUser(userID, year string) ([]model.Season, error) {
	args := c.Called(userID, year)

	var res []model.Season
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Season)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeague(leagueID string) (*model.Season, error) {
	args := c.Called(leagueID)

	var res *model.Season
	if args.Get(0) != nil {
		res = args.Get(0).(*model.Season)
	}

	return res, args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	args := c.Called(leagueID)

	var res []model.User
	if args.Get(0) != nil {
		res = args.Get(0).([]model.User)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	args := c.Called(leagueID, week)

	var res []model.Matchup
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Matchup)
	}

	return res, args.Error(1)
}

func (c *Client) GetTransactions(leagueID string, week int) ([]model.Trade, error) {
	args := c.Called(leagueID, week)

	var res []model.Trade
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Trade)
	}

	return res, args.Error(1)
}

func (c *Client) GetDrafts(leagueID string) ([]model.Draft, error) {
	args := c.Called(leagueID)

	var res []model.Draft
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Draft)
	}

	return res, args.Error(1)
}

func (c *Client) GetDraftPicks(draftID string) ([]model.DraftPickDetail, error) {
	args := c.Called(draftID)

	var res []model.DraftPickDetail
	if args.Get(0) != nil {
		res = args.Get(0).([]model.DraftPickDetail)
	}

	return res, args.Error(1)
}

func (c *Client) GetState() (*model.LeagueState, error) {
	args := c.Called()

	var res *model.LeagueState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.LeagueState)
	}

	return res, args.Error(1)
}
