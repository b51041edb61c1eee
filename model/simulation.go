package model

const (
	ResultWin  = "W"
	ResultLoss = "L"
	ResultTie  = "T"
)

// SimulationResult compares the real season against the alternate timeline
// in which the selected trades never happened.
type SimulationResult struct {
	OriginalStandings  []Standing
	SimulatedStandings []Standing
	WeeklyImpact       []WeekImpact
	AffectedTeams      []int
}

type WeekImpact struct {
	Week  int
	Teams []TeamImpact
}

// TeamImpact is one team's original vs simulated outcome for one week.
// Results are "W", "L", "T", or "" when the team had no scored pairing
// that week. Difference is SimulatedPoints - OriginalPoints rounded to two
// decimal places.
type TeamImpact struct {
	RosterID        int
	TeamName        string
	OriginalPoints  float64
	SimulatedPoints float64
	Difference      float64
	OriginalResult  string
	SimulatedResult string
}
