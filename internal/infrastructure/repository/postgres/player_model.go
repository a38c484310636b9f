package postgres

import (
	"database/sql"
	"time"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
)

type playerTableModel struct {
	ID              string         `db:"id"`
	Name            string         `db:"name"`
	Position        string         `db:"position"`
	NFLTeamID       sql.NullString `db:"nfl_team_id"`
	ESPNID          sql.NullString `db:"espn_id"`
	JerseyNumber    sql.NullInt64  `db:"jersey_number"`
	HeightInches    sql.NullInt64  `db:"height_inches"`
	WeightPounds    sql.NullInt64  `db:"weight_pounds"`
	Age             sql.NullInt64  `db:"age"`
	YearsExperience sql.NullInt64  `db:"years_experience"`
	College         string         `db:"college"`
	IsActive        bool           `db:"is_active"`
	IsInjured       bool           `db:"is_injured"`
	InjuryStatus    string         `db:"injury_status"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:              row.ID,
		Name:            row.Name,
		Position:        player.Position(row.Position),
		NFLTeamID:       nullStringPtr(row.NFLTeamID),
		ESPNID:          nullStringPtr(row.ESPNID),
		JerseyNumber:    nullIntPtr(row.JerseyNumber),
		HeightInches:    nullIntPtr(row.HeightInches),
		WeightPounds:    nullIntPtr(row.WeightPounds),
		Age:             nullIntPtr(row.Age),
		YearsExperience: nullIntPtr(row.YearsExperience),
		College:         row.College,
		IsActive:        row.IsActive,
		IsInjured:       row.IsInjured,
		InjuryStatus:    row.InjuryStatus,
	}
}

func nullStringPtr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func ptrNullString(v *string) sql.NullString {
	if v == nil || *v == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func ptrNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
