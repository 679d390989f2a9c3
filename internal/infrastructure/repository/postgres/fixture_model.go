package postgres

import (
	"database/sql"
	"time"

	"github.com/Jakealex/fantasy-league/internal/domain/fixture"
)

type fixtureTableModel struct {
	ID        int64         `db:"id"`
	PublicID  string        `db:"public_id"`
	Gameweek  string        `db:"gameweek_public_id"`
	HomeTeam  string        `db:"home_team"`
	AwayTeam  string        `db:"away_team"`
	KickoffAt int64         `db:"kickoff_at"`
	HomeGoals sql.NullInt64 `db:"home_goals"`
	AwayGoals sql.NullInt64 `db:"away_goals"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
	DeletedAt *time.Time    `db:"deleted_at"`
}

type scoreEventTableModel struct {
	ID        int64         `db:"id"`
	PublicID  string        `db:"public_id"`
	FixtureID string        `db:"fixture_public_id"`
	PlayerID  string        `db:"player_public_id"`
	Kind      string        `db:"kind"`
	Minute    sql.NullInt64 `db:"minute"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
	DeletedAt *time.Time    `db:"deleted_at"`
}

type scoreEventInsertModel struct {
	PublicID  string        `db:"public_id"`
	FixtureID string        `db:"fixture_public_id"`
	PlayerID  string        `db:"player_public_id"`
	Kind      string        `db:"kind"`
	Minute    sql.NullInt64 `db:"minute"`
}

func fixtureToDomain(row fixtureTableModel, events []fixture.ScoreEvent) fixture.Fixture {
	return fixture.Fixture{
		ID:         row.PublicID,
		GameweekID: row.Gameweek,
		HomeTeam:   row.HomeTeam,
		AwayTeam:   row.AwayTeam,
		KickoffAt:  unixToTime(row.KickoffAt),
		HomeGoals:  intPtrFromNull(row.HomeGoals),
		AwayGoals:  intPtrFromNull(row.AwayGoals),
		Events:     events,
	}
}

func scoreEventToDomain(row scoreEventTableModel) fixture.ScoreEvent {
	return fixture.ScoreEvent{
		ID:        row.PublicID,
		FixtureID: row.FixtureID,
		PlayerID:  row.PlayerID,
		Kind:      fixture.EventKind(row.Kind),
		Minute:    intPtrFromNull(row.Minute),
	}
}
