package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/waiver"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type WaiverRepository struct {
	db *sqlx.DB
}

type waiverPriorityTableModel struct {
	ID            string `db:"id"`
	FantasyTeamID string `db:"fantasy_team_id"`
	PriorityOrder int    `db:"priority_order"`
	SeasonYear    int    `db:"season_year"`
}

type recommendationTableModel struct {
	ID              string  `db:"id"`
	PlayerID        string  `db:"player_id"`
	Week            int     `db:"week"`
	Reason          string  `db:"reason"`
	PriorityLevel   string  `db:"priority_level"`
	ProjectedImpact float64 `db:"projected_impact"`
}

func NewWaiverRepository(db *sqlx.DB) *WaiverRepository {
	return &WaiverRepository{db: db}
}

func (r *WaiverRepository) ListPriorities(ctx context.Context, seasonYear int) ([]waiver.Priority, error) {
	query, args, err := qb.Select("id", "fantasy_team_id", "priority_order", "season_year").
		From("waiver_priorities").
		Where(qb.Eq("season_year", seasonYear)).
		OrderBy("priority_order").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select waiver priorities query: %w", err)
	}

	var rows []waiverPriorityTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select waiver priorities: %w", err)
	}

	out := make([]waiver.Priority, 0, len(rows))
	for _, row := range rows {
		out = append(out, waiver.Priority{
			ID:            row.ID,
			FantasyTeamID: row.FantasyTeamID,
			PriorityOrder: row.PriorityOrder,
			SeasonYear:    row.SeasonYear,
		})
	}

	return out, nil
}

func (r *WaiverRepository) ReplacePriorities(ctx context.Context, priorities []waiver.Priority) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for waiver priority replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM waiver_priorities`); err != nil {
		return fmt.Errorf("clear waiver priorities: %w", err)
	}

	const insertQuery = `
INSERT INTO waiver_priorities (id, fantasy_team_id, priority_order, season_year)
VALUES (:id, :fantasy_team_id, :priority_order, :season_year)`

	for _, p := range priorities {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":              p.ID,
			"fantasy_team_id": p.FantasyTeamID,
			"priority_order":  p.PriorityOrder,
			"season_year":     p.SeasonYear,
		})
		if err != nil {
			return fmt.Errorf("bind insert waiver priority %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert waiver priority %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit waiver priority replace tx: %w", err)
	}

	return nil
}

func (r *WaiverRepository) ListRecommendations(ctx context.Context, week int) ([]waiver.Recommendation, error) {
	query, args, err := qb.Select("id", "player_id", "week", "reason", "priority_level", "projected_impact").
		From("free_agent_recommendations").
		Where(qb.Eq("week", week)).
		OrderBy("projected_impact DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recommendations query: %w", err)
	}

	var rows []recommendationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select recommendations: %w", err)
	}

	out := make([]waiver.Recommendation, 0, len(rows))
	for _, row := range rows {
		out = append(out, waiver.Recommendation{
			ID:              row.ID,
			PlayerID:        row.PlayerID,
			Week:            row.Week,
			Reason:          row.Reason,
			Priority:        waiver.PriorityLevel(row.PriorityLevel),
			ProjectedImpact: row.ProjectedImpact,
		})
	}

	return out, nil
}

func (r *WaiverRepository) ReplaceRecommendations(ctx context.Context, week int, recommendations []waiver.Recommendation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for recommendation replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM free_agent_recommendations WHERE week = $1`, week); err != nil {
		return fmt.Errorf("clear recommendations for week %d: %w", week, err)
	}

	const insertQuery = `
INSERT INTO free_agent_recommendations (id, player_id, week, reason, priority_level, projected_impact)
VALUES (:id, :player_id, :week, :reason, :priority_level, :projected_impact)`

	for _, rec := range recommendations {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":               rec.ID,
			"player_id":        rec.PlayerID,
			"week":             rec.Week,
			"reason":           rec.Reason,
			"priority_level":   string(rec.Priority),
			"projected_impact": rec.ProjectedImpact,
		})
		if err != nil {
			return fmt.Errorf("bind insert recommendation %s query: %w", rec.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert recommendation %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit recommendation replace tx: %w", err)
	}

	return nil
}
