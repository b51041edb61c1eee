package controller

import (
	"testing"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/sethclem/Sleeper/db"
	"github.com/sethclem/Sleeper/sleeper"
	"github.com/sethclem/Sleeper/testutils"
)

// newTestController wires a controller against the fake Sleeper server. The
// mock clock is pinned mid-season 2024 and request pacing is disabled so
// that tests never block on the mock clock's Sleep.
func newTestController(t *testing.T, database db.DB) *controller {
	server := testutils.NewFakeSleeperServer()
	t.Cleanup(server.Close)

	mock := clock.NewMock()
	mock.Set(time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC))

	return &controller{
		clock:   mock,
		sleeper: sleeper.NewForTest(server.URL()),
		db:      database,
		complete: func(year int) bool {
			return year < 2024
		},
	}
}

// testTime gives trades distinct, ordered timestamps.
func testTime(n int) time.Time {
	return time.Date(2024, 9, 20, 0, 0, 0, 0, time.UTC).Add(time.Duration(n) * time.Hour)
}

func TestNewDefaultsSeasonComplete(t *testing.T) {
	mock := clock.NewMock()
	mock.Set(time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC))

	c, err := New(mock, nil, nil, nil)
	if err != nil {
		t.Fatalf("error creating controller: %v", err)
	}

	ctrl := c.(*controller)
	if !ctrl.complete(2023) {
		t.Errorf("expected 2023 to be complete")
	}
	if ctrl.complete(2024) {
		t.Errorf("expected 2024 to not be complete")
	}
	if ctrl.pace != pacingDelay {
		t.Errorf("expected default pacing, got %v", ctrl.pace)
	}
}
