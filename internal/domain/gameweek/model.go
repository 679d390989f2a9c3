package gameweek

import "time"

// Gameweek is a scored scheduling period containing multiple fixtures.
type Gameweek struct {
	ID         string
	Number     int
	Deadline   time.Time
	IsCurrent  bool
	IsFinished bool
}
