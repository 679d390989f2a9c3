package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
	qb "github.com/Jakealex/fantasy-league/internal/platform/querybuilder"
)

type ScoringRepository struct {
	db *sqlx.DB
}

func NewScoringRepository(db *sqlx.DB) *ScoringRepository {
	return &ScoringRepository{db: db}
}

func (r *ScoringRepository) UpsertPlayerPoints(ctx context.Context, row scoring.PlayerPoints) error {
	insertModel := playerPointsInsertModel{
		PlayerID:      row.PlayerID,
		GameweekID:    row.GameweekID,
		Points:        row.Points,
		Goals:         row.Goals,
		Assists:       row.Assists,
		OwnGoals:      row.OwnGoals,
		YellowCards:   row.YellowCards,
		RedCards:      row.RedCards,
		GoalsConceded: row.GoalsConceded,
		CalculatedAt:  timeToUnix(time.Now()),
	}
	query, args, err := qb.InsertModel("player_points", insertModel, `ON CONFLICT (player_public_id, gameweek_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    points = EXCLUDED.points,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    own_goals = EXCLUDED.own_goals,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    goals_conceded = EXCLUDED.goals_conceded,
    calculated_at = EXCLUDED.calculated_at,
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert player points query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player points: %w", err)
	}
	return nil
}

func (r *ScoringRepository) ListPlayerPointsByGameweek(ctx context.Context, gameweekID string) ([]scoring.PlayerPoints, error) {
	query, args, err := qb.Select("*").
		From("player_points").
		Where(
			qb.Eq("gameweek_public_id", gameweekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list player points query: %w", err)
	}

	var rows []playerPointsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list player points: %w", err)
	}

	out := make([]scoring.PlayerPoints, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerPointsToDomain(row))
	}
	return out, nil
}

func (r *ScoringRepository) UpsertGameweekScore(ctx context.Context, row scoring.GameweekScore) error {
	insertModel := gameweekScoreInsertModel{
		TeamID:       row.TeamID,
		GameweekID:   row.GameweekID,
		TotalPoints:  row.Total,
		CalculatedAt: timeToUnix(time.Now()),
	}
	query, args, err := qb.InsertModel("gameweek_scores", insertModel, `ON CONFLICT (team_public_id, gameweek_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    total_points = EXCLUDED.total_points,
    calculated_at = EXCLUDED.calculated_at,
    deleted_at = NULL`)
	if err != nil {
		return fmt.Errorf("build upsert gameweek score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert gameweek score: %w", err)
	}
	return nil
}

func (r *ScoringRepository) ListGameweekScoresByGameweek(ctx context.Context, gameweekID string) ([]scoring.GameweekScore, error) {
	query, args, err := qb.Select("*").
		From("gameweek_scores").
		Where(
			qb.Eq("gameweek_public_id", gameweekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("total_points DESC", "team_public_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list gameweek scores query: %w", err)
	}

	var rows []gameweekScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list gameweek scores: %w", err)
	}

	out := make([]scoring.GameweekScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, scoring.GameweekScore{
			TeamID:     row.TeamID,
			GameweekID: row.GameweekID,
			Total:      row.TotalPoints,
		})
	}
	return out, nil
}
