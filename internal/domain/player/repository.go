package player

import "context"

// Repository describes player reads needed by scoring.
type Repository interface {
	ListByTeamName(ctx context.Context, teamName string) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	ListByIDs(ctx context.Context, ids []string) ([]Player, error)
}
