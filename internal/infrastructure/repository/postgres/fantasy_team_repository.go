package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type FantasyTeamRepository struct {
	db *sqlx.DB
}

var fantasyTeamSelectColumns = []string{
	"id",
	"owner_name",
	"team_name",
	"platform_team_id",
	"wins",
	"losses",
	"ties",
	"points_for",
	"points_against",
	"created_at",
	"updated_at",
}

func NewFantasyTeamRepository(db *sqlx.DB) *FantasyTeamRepository {
	return &FantasyTeamRepository{db: db}
}

func (r *FantasyTeamRepository) List(ctx context.Context) ([]fantasyteam.FantasyTeam, error) {
	query, args, err := qb.Select(fantasyTeamSelectColumns...).From("fantasy_teams").
		OrderBy("team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select fantasy teams query: %w", err)
	}

	var rows []fantasyTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select fantasy teams: %w", err)
	}

	out := make([]fantasyteam.FantasyTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyTeamFromRow(row))
	}

	return out, nil
}

func (r *FantasyTeamRepository) GetByID(ctx context.Context, teamID string) (fantasyteam.FantasyTeam, bool, error) {
	query, args, err := qb.Select(fantasyTeamSelectColumns...).From("fantasy_teams").
		Where(qb.Eq("id", teamID)).
		ToSQL()
	if err != nil {
		return fantasyteam.FantasyTeam{}, false, fmt.Errorf("build select fantasy team by id query: %w", err)
	}

	var row fantasyTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fantasyteam.FantasyTeam{}, false, nil
		}
		return fantasyteam.FantasyTeam{}, false, fmt.Errorf("select fantasy team by id: %w", err)
	}

	return fantasyTeamFromRow(row), true, nil
}

func (r *FantasyTeamRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM fantasy_teams`); err != nil {
		return 0, fmt.Errorf("count fantasy teams: %w", err)
	}
	return count, nil
}

func (r *FantasyTeamRepository) ReplaceAll(ctx context.Context, teams []fantasyteam.FantasyTeam) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for fantasy team replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fantasy_teams`); err != nil {
		return fmt.Errorf("clear fantasy teams: %w", err)
	}

	const insertQuery = `
INSERT INTO fantasy_teams (id, owner_name, team_name, platform_team_id, wins, losses, ties, points_for, points_against)
VALUES (:id, :owner_name, :team_name, :platform_team_id, :wins, :losses, :ties, :points_for, :points_against)`

	for _, t := range teams {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":               t.ID,
			"owner_name":       t.OwnerName,
			"team_name":        t.TeamName,
			"platform_team_id": ptrNullString(t.PlatformTeamID),
			"wins":             t.Wins,
			"losses":           t.Losses,
			"ties":             t.Ties,
			"points_for":       t.PointsFor,
			"points_against":   t.PointsAgainst,
		})
		if err != nil {
			return fmt.Errorf("bind insert fantasy team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert fantasy team %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit fantasy team replace tx: %w", err)
	}

	return nil
}
