package postgres

import "time"

type gameweekTableModel struct {
	ID         int64      `db:"id"`
	PublicID   string     `db:"public_id"`
	Number     int        `db:"number"`
	DeadlineAt int64      `db:"deadline_at"`
	IsCurrent  bool       `db:"is_current"`
	IsFinished bool       `db:"is_finished"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
	DeletedAt  *time.Time `db:"deleted_at"`
}
