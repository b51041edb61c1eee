package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sethclem/Sleeper/model"
)

const yearOnlyFormat = "2006"

func (c *controller) GetUser(ctx context.Context, username string) (*model.User, error) {
	return c.sleeper.GetUser(username)
}

func (c *controller) GetLeaguesForUser(ctx context.Context, username, year string) ([]model.Season, error) {
	if _, err := time.Parse(yearOnlyFormat, year); err != nil {
		return nil, fmt.Errorf("year parameter must be in the YYYY format, got: %s", year)
	}

	u, err := c.sleeper.GetUser(username)
	if err != nil {
		return nil, err
	}

	return c.sleeper.GetLeaguesForUser(u.ID, year)
}

func (c *controller) GetLeagueStandings(ctx context.Context, leagueID string) ([]model.Standing, error) {
	rosters, err := c.sleeper.GetRosters(leagueID)
	if err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}

	users, err := c.sleeper.GetLeagueUsers(leagueID)
	if err != nil {
		log.Printf("error loading users for league %s: %v", leagueID, err)
		users = nil
	}

	return rankRosters(rosters, model.TeamNames(rosters, users)), nil
}

func (c *controller) AddLeague(ctx context.Context, externalID, name, year string) (*model.League, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, errors.New("externalID must be provided")
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("league name must be provided")
	}

	if _, err := time.Parse(yearOnlyFormat, year); err != nil {
		return nil, fmt.Errorf("year parameter must be in the YYYY format, got: %s", year)
	}

	l := &model.League{
		ExternalID: externalID,
		Name:       name,
		Year:       year,
	}

	if err := c.db.AddLeague(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (c *controller) GetLeague(ctx context.Context, id int32) (*model.League, error) {
	l, err := c.db.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error looking up league: %w", err)
	}
	return l, nil
}

func (c *controller) ListLeagues(ctx context.Context) ([]model.League, error) {
	return c.db.ListLeagues(ctx)
}

func (c *controller) ArchiveLeague(ctx context.Context, id int32) error {
	return c.db.ArchiveLeague(ctx, id)
}
