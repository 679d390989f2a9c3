package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Jakealex/fantasy-league/internal/domain/gameweek"
	qb "github.com/Jakealex/fantasy-league/internal/platform/querybuilder"
)

type GameweekRepository struct {
	db *sqlx.DB
}

func NewGameweekRepository(db *sqlx.DB) *GameweekRepository {
	return &GameweekRepository{db: db}
}

func (r *GameweekRepository) GetByID(ctx context.Context, id string) (gameweek.Gameweek, bool, error) {
	query, args, err := qb.Select("*").
		From("gameweeks").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return gameweek.Gameweek{}, false, fmt.Errorf("build get gameweek query: %w", err)
	}

	var row gameweekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return gameweek.Gameweek{}, false, nil
		}
		return gameweek.Gameweek{}, false, fmt.Errorf("get gameweek: %w", err)
	}

	return gameweekToDomain(row), true, nil
}

func (r *GameweekRepository) List(ctx context.Context) ([]gameweek.Gameweek, error) {
	query, args, err := qb.Select("*").
		From("gameweeks").
		Where(qb.IsNull("deleted_at")).
		OrderBy("number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list gameweeks query: %w", err)
	}

	var rows []gameweekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list gameweeks: %w", err)
	}

	out := make([]gameweek.Gameweek, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameweekToDomain(row))
	}
	return out, nil
}

func gameweekToDomain(row gameweekTableModel) gameweek.Gameweek {
	return gameweek.Gameweek{
		ID:         row.PublicID,
		Number:     row.Number,
		Deadline:   unixToTime(row.DeadlineAt),
		IsCurrent:  row.IsCurrent,
		IsFinished: row.IsFinished,
	}
}
