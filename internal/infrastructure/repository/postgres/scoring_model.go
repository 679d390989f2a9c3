package postgres

import (
	"time"

	"github.com/Jakealex/fantasy-league/internal/domain/scoring"
)

type playerPointsTableModel struct {
	ID            int64      `db:"id"`
	PlayerID      string     `db:"player_public_id"`
	GameweekID    string     `db:"gameweek_public_id"`
	Points        int        `db:"points"`
	Goals         int        `db:"goals"`
	Assists       int        `db:"assists"`
	OwnGoals      int        `db:"own_goals"`
	YellowCards   int        `db:"yellow_cards"`
	RedCards      int        `db:"red_cards"`
	GoalsConceded int        `db:"goals_conceded"`
	CalculatedAt  int64      `db:"calculated_at"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type playerPointsInsertModel struct {
	PlayerID      string `db:"player_public_id"`
	GameweekID    string `db:"gameweek_public_id"`
	Points        int    `db:"points"`
	Goals         int    `db:"goals"`
	Assists       int    `db:"assists"`
	OwnGoals      int    `db:"own_goals"`
	YellowCards   int    `db:"yellow_cards"`
	RedCards      int    `db:"red_cards"`
	GoalsConceded int    `db:"goals_conceded"`
	CalculatedAt  int64  `db:"calculated_at"`
}

type gameweekScoreTableModel struct {
	ID           int64      `db:"id"`
	TeamID       string     `db:"team_public_id"`
	GameweekID   string     `db:"gameweek_public_id"`
	TotalPoints  int        `db:"total_points"`
	CalculatedAt int64      `db:"calculated_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	DeletedAt    *time.Time `db:"deleted_at"`
}

type gameweekScoreInsertModel struct {
	TeamID       string `db:"team_public_id"`
	GameweekID   string `db:"gameweek_public_id"`
	TotalPoints  int    `db:"total_points"`
	CalculatedAt int64  `db:"calculated_at"`
}

func playerPointsToDomain(row playerPointsTableModel) scoring.PlayerPoints {
	return scoring.PlayerPoints{
		PlayerID:   row.PlayerID,
		GameweekID: row.GameweekID,
		Points:     row.Points,
		StatLine: scoring.StatLine{
			Goals:         row.Goals,
			Assists:       row.Assists,
			OwnGoals:      row.OwnGoals,
			YellowCards:   row.YellowCards,
			RedCards:      row.RedCards,
			GoalsConceded: row.GoalsConceded,
		},
	}
}
