package team

import "context"

// Repository exposes fantasy team and squad reads.
type Repository interface {
	ListTeams(ctx context.Context) ([]Team, error)
	ListSlotsByTeam(ctx context.Context, teamID string) ([]SquadSlot, error)
}
