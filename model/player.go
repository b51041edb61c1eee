package model

import (
	"fmt"
	"time"
)

type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Team      string
	Active    bool
	Created   time.Time
	Updated   time.Time
}

// FormattedName is the display label used for resolved draft picks and
// trade summaries, e.g. "Mike Evans (WR)".
func (p *Player) FormattedName() string {
	return fmt.Sprintf("%s %s (%s)", p.FirstName, p.LastName, p.Position)
}

func (p *Player) FormattedUpdatedTime() string {
	if p.Updated.IsZero() {
		return "unknown"
	}
	return p.Updated.Format(time.DateTime)
}
