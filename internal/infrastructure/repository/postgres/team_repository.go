package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Jakealex/fantasy-league/internal/domain/team"
	qb "github.com/Jakealex/fantasy-league/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListTeams(ctx context.Context) ([]team.Team, error) {
	query, args, err := qb.Select("*").
		From("fantasy_teams").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fantasy teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{ID: row.PublicID, Name: row.Name})
	}
	return out, nil
}

func (r *TeamRepository) ListSlotsByTeam(ctx context.Context, teamID string) ([]team.SquadSlot, error) {
	query, args, err := qb.Select("*").
		From("squad_slots").
		Where(
			qb.Eq("team_public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list squad slots query: %w", err)
	}

	var rows []squadSlotTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list squad slots: %w", err)
	}

	out := make([]team.SquadSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, squadSlotToDomain(row))
	}
	return out, nil
}
