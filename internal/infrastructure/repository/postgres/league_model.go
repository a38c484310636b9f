package postgres

import (
	"database/sql"
	"time"
)

type leagueConfigTableModel struct {
	ID               string         `db:"id"`
	LeagueName       string         `db:"league_name"`
	Platform         string         `db:"platform"`
	PlatformLeagueID sql.NullString `db:"platform_league_id"`
	SeasonYear       int            `db:"season_year"`
	ScoringType      string         `db:"scoring_type"`
	TeamCount        int            `db:"team_count"`
	PlayoffTeams     int            `db:"playoff_teams"`
	IsActive         bool           `db:"is_active"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}
