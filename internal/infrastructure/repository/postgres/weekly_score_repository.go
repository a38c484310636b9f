package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type WeeklyScoreRepository struct {
	db *sqlx.DB
}

var weeklyScoreSelectColumns = []string{
	"id",
	"fantasy_team_id",
	"week",
	"total_score",
	"bench_score",
	"optimal_score",
}

func NewWeeklyScoreRepository(db *sqlx.DB) *WeeklyScoreRepository {
	return &WeeklyScoreRepository{db: db}
}

func (r *WeeklyScoreRepository) ListByTeam(ctx context.Context, teamID string) ([]fantasyteam.WeeklyScore, error) {
	query, args, err := qb.Select(weeklyScoreSelectColumns...).From("fantasy_team_weekly_scores").
		Where(qb.Eq("fantasy_team_id", teamID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select weekly scores query: %w", err)
	}

	var rows []weeklyScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select weekly scores: %w", err)
	}

	out := make([]fantasyteam.WeeklyScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, fantasyteam.WeeklyScore{
			ID:            row.ID,
			FantasyTeamID: row.FantasyTeamID,
			Week:          row.Week,
			TotalScore:    row.TotalScore,
			BenchScore:    row.BenchScore,
			OptimalScore:  row.OptimalScore,
		})
	}

	return out, nil
}

func (r *WeeklyScoreRepository) ReplaceAll(ctx context.Context, scores []fantasyteam.WeeklyScore) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for weekly score replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fantasy_team_weekly_scores`); err != nil {
		return fmt.Errorf("clear weekly scores: %w", err)
	}

	const insertQuery = `
INSERT INTO fantasy_team_weekly_scores (id, fantasy_team_id, week, total_score, bench_score, optimal_score)
VALUES (:id, :fantasy_team_id, :week, :total_score, :bench_score, :optimal_score)`

	for _, s := range scores {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":              s.ID,
			"fantasy_team_id": s.FantasyTeamID,
			"week":            s.Week,
			"total_score":     s.TotalScore,
			"bench_score":     s.BenchScore,
			"optimal_score":   s.OptimalScore,
		})
		if err != nil {
			return fmt.Errorf("bind insert weekly score %s query: %w", s.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert weekly score %s: %w", s.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit weekly score replace tx: %w", err)
	}

	return nil
}
