package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
	qb "github.com/Jakealex/fantasy-league/internal/platform/querybuilder"
)

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) ListByGameweek(ctx context.Context, gameweekID string) ([]fixture.Fixture, error) {
	query, args, err := qb.Select("*").
		From("fixtures").
		Where(
			qb.Eq("gameweek_public_id", gameweekID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	if len(rows) == 0 {
		return []fixture.Fixture{}, nil
	}

	fixtureIDs := make([]any, 0, len(rows))
	for _, row := range rows {
		fixtureIDs = append(fixtureIDs, row.PublicID)
	}
	eventsByFixture, err := r.listEvents(ctx, fixtureIDs)
	if err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, fixtureToDomain(row, eventsByFixture[row.PublicID]))
	}
	return out, nil
}

func (r *FixtureRepository) GetByID(ctx context.Context, id string) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select("*").
		From("fixtures").
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture: %w", err)
	}

	eventsByFixture, err := r.listEvents(ctx, []any{row.PublicID})
	if err != nil {
		return fixture.Fixture{}, false, err
	}
	return fixtureToDomain(row, eventsByFixture[row.PublicID]), true, nil
}

func (r *FixtureRepository) SetResult(ctx context.Context, id string, homeGoals, awayGoals int) error {
	query, args, err := qb.Update("fixtures").
		Set("home_goals", homeGoals).
		Set("away_goals", awayGoals).
		Set("updated_at", time.Now().UTC()).
		Where(
			qb.Eq("public_id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set fixture result query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("set fixture result: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("fixture not found: %s", id)
	}
	return nil
}

func (r *FixtureRepository) AddEvent(ctx context.Context, event fixture.ScoreEvent) error {
	insertModel := scoreEventInsertModel{
		PublicID:  event.ID,
		FixtureID: event.FixtureID,
		PlayerID:  event.PlayerID,
		Kind:      string(event.Kind),
		Minute:    nullableInt(event.Minute),
	}
	query, args, err := qb.InsertModel("score_events", insertModel, "")
	if err != nil {
		return fmt.Errorf("build insert score event query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert score event: %w", err)
	}
	return nil
}

func (r *FixtureRepository) GetEvent(ctx context.Context, eventID string) (fixture.ScoreEvent, bool, error) {
	query, args, err := qb.Select("*").
		From("score_events").
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fixture.ScoreEvent{}, false, fmt.Errorf("build get score event query: %w", err)
	}

	var row scoreEventTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.ScoreEvent{}, false, nil
		}
		return fixture.ScoreEvent{}, false, fmt.Errorf("get score event: %w", err)
	}
	return scoreEventToDomain(row), true, nil
}

func (r *FixtureRepository) ListEventsByFixture(ctx context.Context, fixtureID string) ([]fixture.ScoreEvent, error) {
	eventsByFixture, err := r.listEvents(ctx, []any{fixtureID})
	if err != nil {
		return nil, err
	}
	events := eventsByFixture[fixtureID]
	if events == nil {
		events = []fixture.ScoreEvent{}
	}
	return events, nil
}

func (r *FixtureRepository) DeleteEvent(ctx context.Context, eventID string) error {
	now := time.Now().UTC()
	query, args, err := qb.Update("score_events").
		Set("deleted_at", now).
		Set("updated_at", now).
		Where(
			qb.Eq("public_id", eventID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete score event query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete score event: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return fmt.Errorf("score event not found: %s", eventID)
	}
	return nil
}

func (r *FixtureRepository) listEvents(ctx context.Context, fixtureIDs []any) (map[string][]fixture.ScoreEvent, error) {
	query, args, err := qb.Select("*").
		From("score_events").
		Where(
			qb.In("fixture_public_id", fixtureIDs),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list score events query: %w", err)
	}

	var rows []scoreEventTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list score events: %w", err)
	}

	out := make(map[string][]fixture.ScoreEvent, len(fixtureIDs))
	for _, row := range rows {
		out[row.FixtureID] = append(out[row.FixtureID], scoreEventToDomain(row))
	}
	return out, nil
}
