package player

import "fmt"

// Position splits players into the two scoring classes.
type Position string

const (
	PositionGoalkeeper Position = "GK"
	PositionOutfield   Position = "OUT"
)

var AllPositions = map[Position]struct{}{
	PositionGoalkeeper: {},
	PositionOutfield:   {},
}

type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusInjured Status = "INJURED"
)

// Player is a fantasy-draftable athlete. TeamName ties the player to the
// real-world side whose fixtures drive their conceded-goal counts.
type Player struct {
	ID       string
	Name     string
	TeamName string
	Position Position
	Price    int64
	Status   Status
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.TeamName == "" {
		return fmt.Errorf("player team name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	return nil
}
