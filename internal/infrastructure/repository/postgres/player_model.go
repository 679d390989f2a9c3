package postgres

import (
	"time"

	"github.com/Jakealex/fantasy-league/internal/domain/player"
)

type playerTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	TeamName  string     `db:"team_name"`
	Position  string     `db:"position"`
	Price     int64      `db:"price"`
	Status    string     `db:"status"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func playerToDomain(row playerTableModel) player.Player {
	return player.Player{
		ID:       row.PublicID,
		Name:     row.Name,
		TeamName: row.TeamName,
		Position: player.Position(row.Position),
		Price:    row.Price,
		Status:   player.Status(row.Status),
	}
}
