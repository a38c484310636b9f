package postgres

import "time"

type nflTeamTableModel struct {
	ID         string    `db:"id"`
	Code       string    `db:"code"`
	Name       string    `db:"name"`
	City       string    `db:"city"`
	Conference string    `db:"conference"`
	Division   string    `db:"division"`
	CreatedAt  time.Time `db:"created_at"`
}
