package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sethclem/Sleeper/model"
)

const SleeperURL = "https://api.sleeper.app"

var ErrUserNotFound = errors.New("user not found")

// Client is a read-only view of the Sleeper API. Every call can fail or
// return an empty result; callers are expected to degrade rather than
// assume success.
type Client interface {
	LoadPlayers() ([]model.Player, error)
	GetUser(username string) (*model.User, error)
	GetLeaguesForUser(userID, year string) ([]model.Season, error)
	GetLeague(leagueID string) (*model.Season, error)
	GetRosters(leagueID string) ([]model.Roster, error)
	GetLeagueUsers(leagueID string) ([]model.User, error)
	GetMatchups(leagueID string, week int) ([]model.Matchup, error)
	GetTransactions(leagueID string, week int) ([]model.Trade, error)
	GetDrafts(leagueID string) ([]model.Draft, error)
	GetDraftPicks(draftID string) ([]model.DraftPickDetail, error)
	GetState() (*model.LeagueState, error)
}

type client struct {
	url        string
	httpClient *http.Client
}

func New() (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
	}
	return c, nil
}

func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.get("/v1/players/nfl", &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		pos := model.ParsePosition(p.Position)
		if pos == model.POS_UNKNOWN || (p.FirstName == "Player" && p.LastName == "Invalid") {
			continue
		}
		result = append(result, *p.toPlayer())
	}

	return result, nil
}

func (c *client) GetUser(username string) (*model.User, error) {
	// Sleeper returns a 200 with "null" as the body for unknown users.
	var parsed *sleeperUser
	if err := c.get(fmt.Sprintf("/v1/user/%s", username), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, ErrUserNotFound
	}
	return parsed.toUser(), nil
}

func (c *client) GetLeaguesForUser(userID, year string) ([]model.Season, error) {
	var parsed []sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/user/%s/leagues/nfl/%s", userID, year), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Season, 0, len(parsed))
	for _, l := range parsed {
		result = append(result, *l.toSeason())
	}
	return result, nil
}

func (c *client) GetLeague(leagueID string) (*model.Season, error) {
	var parsed *sleeperLeague
	if err := c.get(fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, err
	}
	if parsed == nil {
		return nil, fmt.Errorf("league %s not found", leagueID)
	}
	return parsed.toSeason(), nil
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.get(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Roster, 0, len(parsed))
	for _, r := range parsed {
		result = append(result, *r.toRoster())
	}
	return result, nil
}

func (c *client) GetLeagueUsers(leagueID string) ([]model.User, error) {
	var parsed []sleeperUser
	if err := c.get(fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.User, 0, len(parsed))
	for _, u := range parsed {
		result = append(result, *u.toUser())
	}
	return result, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]model.Matchup, error) {
	var parsed []sleeperMatchup
	if err := c.get(fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Matchup, 0, len(parsed))
	for _, m := range parsed {
		result = append(result, *m.toMatchup(week))
	}
	return result, nil
}

func (c *client) GetTransactions(leagueID string, week int) ([]model.Trade, error) {
	var parsed []sleeperTransaction
	if err := c.get(fmt.Sprintf("/v1/league/%s/transactions/%d", leagueID, week), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Trade, 0, len(parsed))
	for _, tx := range parsed {
		if tx.Type != model.TransactionTypeTrade || tx.Status != model.TransactionStatusComplete {
			continue
		}
		result = append(result, *tx.toTrade())
	}
	return result, nil
}

func (c *client) GetDrafts(leagueID string) ([]model.Draft, error) {
	var parsed []sleeperDraft
	if err := c.get(fmt.Sprintf("/v1/league/%s/drafts", leagueID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.Draft, 0, len(parsed))
	for _, d := range parsed {
		result = append(result, *d.toDraft())
	}
	return result, nil
}

func (c *client) GetDraftPicks(draftID string) ([]model.DraftPickDetail, error) {
	var parsed []sleeperDraftPickDetail
	if err := c.get(fmt.Sprintf("/v1/draft/%s/picks", draftID), &parsed); err != nil {
		return nil, err
	}

	result := make([]model.DraftPickDetail, 0, len(parsed))
	for _, p := range parsed {
		result = append(result, *p.toDetail())
	}
	return result, nil
}

func (c *client) GetState() (*model.LeagueState, error) {
	var parsed sleeperState
	if err := c.get("/v1/state/nfl", &parsed); err != nil {
		return nil, err
	}
	return parsed.toState(), nil
}

func (c *client) get(path string, v any) error {
	req, err := http.NewRequest(http.MethodGet, c.url+path, nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}
