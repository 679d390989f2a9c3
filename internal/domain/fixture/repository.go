package fixture

import "context"

// Repository exposes fixture and score-event persistence.
// ListByGameweek returns fixtures with their events populated.
type Repository interface {
	ListByGameweek(ctx context.Context, gameweekID string) ([]Fixture, error)
	GetByID(ctx context.Context, id string) (Fixture, bool, error)
	SetResult(ctx context.Context, id string, homeGoals, awayGoals int) error
	AddEvent(ctx context.Context, event ScoreEvent) error
	GetEvent(ctx context.Context, eventID string) (ScoreEvent, bool, error)
	ListEventsByFixture(ctx context.Context, fixtureID string) ([]ScoreEvent, error)
	DeleteEvent(ctx context.Context, eventID string) error
}
