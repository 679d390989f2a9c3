package scoring

import "context"

// Repository owns the two scoring output tables. Both upserts are idempotent:
// rerunning a scoring pass overwrites every row it touches.
type Repository interface {
	UpsertPlayerPoints(ctx context.Context, row PlayerPoints) error
	ListPlayerPointsByGameweek(ctx context.Context, gameweekID string) ([]PlayerPoints, error)

	UpsertGameweekScore(ctx context.Context, row GameweekScore) error
	ListGameweekScoresByGameweek(ctx context.Context, gameweekID string) ([]GameweekScore, error)
}
