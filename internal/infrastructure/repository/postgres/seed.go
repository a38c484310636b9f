package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/platform/id"
)

type seedNFLTeam struct {
	Code       string
	Name       string
	City       string
	Conference string
	Division   string
}

var seedNFLTeams = []seedNFLTeam{
	{"BUF", "Bills", "Buffalo", "AFC", "East"},
	{"MIA", "Dolphins", "Miami", "AFC", "East"},
	{"NE", "Patriots", "New England", "AFC", "East"},
	{"NYJ", "Jets", "New York", "AFC", "East"},
	{"BAL", "Ravens", "Baltimore", "AFC", "North"},
	{"CIN", "Bengals", "Cincinnati", "AFC", "North"},
	{"CLE", "Browns", "Cleveland", "AFC", "North"},
	{"PIT", "Steelers", "Pittsburgh", "AFC", "North"},
	{"HOU", "Texans", "Houston", "AFC", "South"},
	{"IND", "Colts", "Indianapolis", "AFC", "South"},
	{"JAX", "Jaguars", "Jacksonville", "AFC", "South"},
	{"TEN", "Titans", "Tennessee", "AFC", "South"},
	{"DEN", "Broncos", "Denver", "AFC", "West"},
	{"KC", "Chiefs", "Kansas City", "AFC", "West"},
	{"LV", "Raiders", "Las Vegas", "AFC", "West"},
	{"LAC", "Chargers", "Los Angeles", "AFC", "West"},
	{"DAL", "Cowboys", "Dallas", "NFC", "East"},
	{"NYG", "Giants", "New York", "NFC", "East"},
	{"PHI", "Eagles", "Philadelphia", "NFC", "East"},
	{"WAS", "Commanders", "Washington", "NFC", "East"},
	{"CHI", "Bears", "Chicago", "NFC", "North"},
	{"DET", "Lions", "Detroit", "NFC", "North"},
	{"GB", "Packers", "Green Bay", "NFC", "North"},
	{"MIN", "Vikings", "Minnesota", "NFC", "North"},
	{"ATL", "Falcons", "Atlanta", "NFC", "South"},
	{"CAR", "Panthers", "Carolina", "NFC", "South"},
	{"NO", "Saints", "New Orleans", "NFC", "South"},
	{"TB", "Buccaneers", "Tampa Bay", "NFC", "South"},
	{"ARI", "Cardinals", "Arizona", "NFC", "West"},
	{"LAR", "Rams", "Los Angeles", "NFC", "West"},
	{"SF", "49ers", "San Francisco", "NFC", "West"},
	{"SEA", "Seahawks", "Seattle", "NFC", "West"},
}

// BootstrapSeed inserts the 32 NFL franchises on an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, ids id.Generator) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM nfl_teams`); err != nil {
		return fmt.Errorf("count nfl teams for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range seedNFLTeams {
		teamID, err := ids.NewID()
		if err != nil {
			return fmt.Errorf("generate id for nfl team %s: %w", t.Code, err)
		}

		sqlQuery, args, err := sqlx.Named(`
INSERT INTO nfl_teams (id, code, name, city, conference, division)
VALUES (:id, :code, :name, :city, :conference, :division)
ON CONFLICT (code) DO NOTHING`, map[string]any{
			"id":         teamID,
			"code":       t.Code,
			"name":       t.Name,
			"city":       t.City,
			"conference": t.Conference,
			"division":   t.Division,
		})
		if err != nil {
			return fmt.Errorf("bind seed nfl team %s query: %w", t.Code, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed nfl team %s: %w", t.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
