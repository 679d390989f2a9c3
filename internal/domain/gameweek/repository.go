package gameweek

import "context"

// Repository exposes gameweek read operations.
type Repository interface {
	GetByID(ctx context.Context, id string) (Gameweek, bool, error)
	List(ctx context.Context) ([]Gameweek, error)
}
