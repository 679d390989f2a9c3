package fixture

import (
	"fmt"
	"strings"
	"time"
)

// EventKind is a closed set of discrete in-match occurrences.
type EventKind string

const (
	EventGoal       EventKind = "GOAL"
	EventAssist     EventKind = "ASSIST"
	EventOwnGoal    EventKind = "OWN_GOAL"
	EventYellowCard EventKind = "YELLOW_CARD"
	EventRedCard    EventKind = "RED_CARD"
)

var AllEventKinds = map[EventKind]struct{}{
	EventGoal:       {},
	EventAssist:     {},
	EventOwnGoal:    {},
	EventYellowCard: {},
	EventRedCard:    {},
}

func ParseEventKind(value string) (EventKind, error) {
	kind := EventKind(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := AllEventKinds[kind]; !ok {
		return "", fmt.Errorf("invalid event kind: %q", value)
	}
	return kind, nil
}

// Fixture represents one scheduled match between two named real-world teams.
// HomeGoals and AwayGoals stay nil until an admin records the final score.
type Fixture struct {
	ID         string
	GameweekID string
	HomeTeam   string
	AwayTeam   string
	KickoffAt  time.Time
	HomeGoals  *int
	AwayGoals  *int
	Events     []ScoreEvent
}

// Settled reports whether the fixture has a recorded final score.
func (f Fixture) Settled() bool {
	return f.HomeGoals != nil && f.AwayGoals != nil
}

// ScoreEvent is a single occurrence attributed to one player in one fixture.
// A brace is two GOAL events for the same player.
type ScoreEvent struct {
	ID        string
	FixtureID string
	PlayerID  string
	Kind      EventKind
	Minute    *int
}

func (e ScoreEvent) Validate() error {
	if e.FixtureID == "" {
		return fmt.Errorf("event fixture id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("event player id is required")
	}
	if _, ok := AllEventKinds[e.Kind]; !ok {
		return fmt.Errorf("invalid event kind: %q", e.Kind)
	}
	if e.Minute != nil && (*e.Minute < 0 || *e.Minute > 120) {
		return fmt.Errorf("event minute out of range: %d", *e.Minute)
	}
	return nil
}
