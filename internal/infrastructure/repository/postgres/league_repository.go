package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

var leagueConfigSelectColumns = []string{
	"id",
	"league_name",
	"platform",
	"platform_league_id",
	"season_year",
	"scoring_type",
	"team_count",
	"playoff_teams",
	"is_active",
	"created_at",
	"updated_at",
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) GetActive(ctx context.Context) (league.Config, bool, error) {
	query, args, err := qb.Select(leagueConfigSelectColumns...).From("league_config").
		Where(qb.Eq("is_active", true)).
		OrderBy("created_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return league.Config{}, false, fmt.Errorf("build select active league query: %w", err)
	}

	var row leagueConfigTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.Config{}, false, nil
		}
		return league.Config{}, false, fmt.Errorf("select active league: %w", err)
	}

	return leagueConfigFromRow(row), true, nil
}

func (r *LeagueRepository) Replace(ctx context.Context, cfg league.Config) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for league replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM league_config`); err != nil {
		return fmt.Errorf("clear league config: %w", err)
	}

	const insertQuery = `
INSERT INTO league_config (id, league_name, platform, platform_league_id, season_year, scoring_type, team_count, playoff_teams, is_active)
VALUES (:id, :league_name, :platform, :platform_league_id, :season_year, :scoring_type, :team_count, :playoff_teams, :is_active)`

	sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
		"id":                 cfg.ID,
		"league_name":        cfg.LeagueName,
		"platform":           string(cfg.Platform),
		"platform_league_id": nullString(cfg.PlatformLeagueID),
		"season_year":        cfg.SeasonYear,
		"scoring_type":       string(cfg.ScoringType),
		"team_count":         cfg.TeamCount,
		"playoff_teams":      cfg.PlayoffTeams,
		"is_active":          cfg.IsActive,
	})
	if err != nil {
		return fmt.Errorf("bind insert league config query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert league config: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit league replace tx: %w", err)
	}

	return nil
}

func leagueConfigFromRow(row leagueConfigTableModel) league.Config {
	return league.Config{
		ID:               row.ID,
		LeagueName:       row.LeagueName,
		Platform:         league.Platform(row.Platform),
		PlatformLeagueID: row.PlatformLeagueID.String,
		SeasonYear:       row.SeasonYear,
		ScoringType:      league.ScoringType(row.ScoringType),
		TeamCount:        row.TeamCount,
		PlayoffTeams:     row.PlayoffTeams,
		IsActive:         row.IsActive,
	}
}

func nullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}
