package controller

import (
	"log"
	"sync"
	"time"

	"github.com/sethclem/Sleeper/model"
)

const (
	// Seasons before this are outside recorded history for every league we
	// care about; the resolver never maps them.
	earliestSupportedSeason = 2018

	// Hard stop for walking the previous-season chain.
	maxSeasonChainLength = 12

	pacingDelay = 100 * time.Millisecond
)

// loadSeasonHistory walks a league's previous-season chain, newest first.
// A broken link mid-chain ends the walk without failing; only an
// unreachable head league is an error.
func (c *controller) loadSeasonHistory(leagueID string) ([]model.Season, error) {
	seasons := make([]model.Season, 0, 4)

	id := leagueID
	for id != "" && len(seasons) < maxSeasonChainLength {
		if len(seasons) > 0 {
			c.paceRequests()
		}
		s, err := c.sleeper.GetLeague(id)
		if err != nil {
			if len(seasons) == 0 {
				return nil, err
			}
			log.Printf("season chain for %s broken at %s: %v", leagueID, id, err)
			break
		}
		seasons = append(seasons, *s)
		id = s.PreviousSeasonID
	}

	return seasons, nil
}

// resolveSeasonID maps a year to the league id serving that year's data.
// Not-found ("") is a normal outcome, expected for years outside recorded
// history.
func resolveSeasonID(year int, seasons []model.Season) string {
	if year < earliestSupportedSeason || len(seasons) == 0 {
		return ""
	}

	for _, s := range seasons {
		if s.Year == year {
			return s.ID
		}
	}

	// A continuing league keeps its franchise structure going forward, so
	// future years map to the most recent known season.
	newest := seasons[0]
	for _, s := range seasons[1:] {
		if s.Year > newest.Year {
			newest = s
		}
	}
	if year > newest.Year {
		return newest.ID
	}

	// The year after the requested one may still carry a back-pointer,
	// reaching one season further back than the enumerated chain.
	for _, s := range seasons {
		if s.Year == year+1 && s.PreviousSeasonID != "" {
			return s.PreviousSeasonID
		}
	}

	return ""
}

// loadSeasonBundles fetches per-season data for each requested year. Years
// that cannot be resolved are omitted from the result; one season's
// failure never aborts the batch. Bundles are cached per (league, year)
// and the cache resets when the league changes.
func (c *controller) loadSeasonBundles(leagueID string, years []int) (map[int]*model.SeasonBundle, error) {
	history, err := c.loadSeasonHistory(leagueID)
	if err != nil {
		return nil, err
	}

	bundles := make(map[int]*model.SeasonBundle, len(years))
	for _, year := range years {
		if _, done := bundles[year]; done {
			continue
		}
		if b, found := c.bundles.get(leagueID, year); found {
			bundles[year] = b
			continue
		}

		id := resolveSeasonID(year, history)
		if id == "" {
			log.Printf("no season mapping for league %s year %d", leagueID, year)
			continue
		}

		c.paceRequests()
		b := c.loadSeasonBundle(id, year)
		c.bundles.put(leagueID, year, b)
		bundles[year] = b
	}

	return bundles, nil
}

// loadSeasonBundle fetches rosters, users and drafts concurrently, then
// pick details per draft. Individual fetch failures leave the matching
// slice empty rather than failing the season.
func (c *controller) loadSeasonBundle(seasonID string, year int) *model.SeasonBundle {
	b := &model.SeasonBundle{
		Year:       year,
		DraftPicks: make(map[string][]model.DraftPickDetail),
		Complete:   c.complete(year),
	}

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		rosters, err := c.sleeper.GetRosters(seasonID)
		if err != nil {
			log.Printf("error loading rosters for season %s: %v", seasonID, err)
			return
		}
		b.Rosters = rosters
	}()
	go func() {
		defer wg.Done()
		users, err := c.sleeper.GetLeagueUsers(seasonID)
		if err != nil {
			log.Printf("error loading users for season %s: %v", seasonID, err)
			return
		}
		b.Users = users
	}()
	go func() {
		defer wg.Done()
		drafts, err := c.sleeper.GetDrafts(seasonID)
		if err != nil {
			log.Printf("error loading drafts for season %s: %v", seasonID, err)
			return
		}
		b.Drafts = drafts
	}()
	wg.Wait()

	for _, d := range b.Drafts {
		c.paceRequests()
		picks, err := c.sleeper.GetDraftPicks(d.ID)
		if err != nil {
			log.Printf("error loading picks for draft %s: %v", d.ID, err)
			picks = []model.DraftPickDetail{}
		}
		b.DraftPicks[d.ID] = picks
	}

	return b
}

// bundleCache holds season bundles for the currently selected league. It
// lives for one dashboard session and is invalidated whenever a different
// league is loaded.
type bundleCache struct {
	mu       sync.Mutex
	leagueID string
	bundles  map[int]*model.SeasonBundle
}

func (c *bundleCache) get(leagueID string, year int) (*model.SeasonBundle, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.leagueID != leagueID {
		return nil, false
	}
	b, found := c.bundles[year]
	return b, found
}

func (c *bundleCache) put(leagueID string, year int, b *model.SeasonBundle) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.leagueID != leagueID {
		c.leagueID = leagueID
		c.bundles = make(map[int]*model.SeasonBundle)
	}
	c.bundles[year] = b
}
