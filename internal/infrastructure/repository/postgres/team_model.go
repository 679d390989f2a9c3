package postgres

import (
	"database/sql"
	"time"

	"github.com/Jakealex/fantasy-league/internal/domain/team"
)

type fantasyTeamTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type squadSlotTableModel struct {
	ID        int64          `db:"id"`
	PublicID  string         `db:"public_id"`
	TeamID    string         `db:"team_public_id"`
	Label     string         `db:"label"`
	PlayerID  sql.NullString `db:"player_public_id"`
	IsCaptain bool           `db:"is_captain"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
	DeletedAt *time.Time     `db:"deleted_at"`
}

func squadSlotToDomain(row squadSlotTableModel) team.SquadSlot {
	return team.SquadSlot{
		ID:        row.PublicID,
		TeamID:    row.TeamID,
		Label:     row.Label,
		PlayerID:  stringPtrFromNull(row.PlayerID),
		IsCaptain: row.IsCaptain,
	}
}
