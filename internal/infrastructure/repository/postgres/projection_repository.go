package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type ProjectionRepository struct {
	db *sqlx.DB
}

type projectionTableModel struct {
	ID                      string        `db:"id"`
	PlayerID                string        `db:"player_id"`
	Week                    int           `db:"week"`
	SeasonYear              int           `db:"season_year"`
	Source                  string        `db:"source"`
	ProjectedPassingYards   float64       `db:"projected_passing_yards"`
	ProjectedPassingTDs     float64       `db:"projected_passing_tds"`
	ProjectedRushingYards   float64       `db:"projected_rushing_yards"`
	ProjectedRushingTDs     float64       `db:"projected_rushing_tds"`
	ProjectedReceptions     float64       `db:"projected_receptions"`
	ProjectedReceivingYards float64       `db:"projected_receiving_yards"`
	ProjectedReceivingTDs   float64       `db:"projected_receiving_tds"`
	ProjectedFantasyPoints  float64       `db:"projected_fantasy_points"`
	Confidence              sql.NullInt64 `db:"confidence"`
	CreatedAt               time.Time     `db:"created_at"`
}

var projectionSelectColumns = []string{
	"id",
	"player_id",
	"week",
	"season_year",
	"source",
	"projected_passing_yards",
	"projected_passing_tds",
	"projected_rushing_yards",
	"projected_rushing_tds",
	"projected_receptions",
	"projected_receiving_yards",
	"projected_receiving_tds",
	"projected_fantasy_points",
	"confidence",
	"created_at",
}

func NewProjectionRepository(db *sqlx.DB) *ProjectionRepository {
	return &ProjectionRepository{db: db}
}

func (r *ProjectionRepository) ListByPlayer(ctx context.Context, playerID string, week int) ([]projection.Projection, error) {
	builder := qb.Select(projectionSelectColumns...).From("player_projections").
		Where(qb.Eq("player_id", playerID))
	if week > 0 {
		builder = builder.Where(qb.Eq("week", week))
	}
	query, args, err := builder.OrderBy("week").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select projections by player query: %w", err)
	}

	return r.selectProjections(ctx, query, args)
}

func (r *ProjectionRepository) ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]projection.Projection, error) {
	query, args, err := qb.Select(projectionSelectColumns...).From("player_projections").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("week DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent projections query: %w", err)
	}

	return r.selectProjections(ctx, query, args)
}

func (r *ProjectionRepository) ListForWeek(ctx context.Context, week int) ([]projection.Projection, error) {
	query, args, err := qb.Select(projectionSelectColumns...).From("player_projections").
		Where(qb.Eq("week", week)).
		OrderBy("projected_fantasy_points DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select projections for week query: %w", err)
	}

	return r.selectProjections(ctx, query, args)
}

func (r *ProjectionRepository) selectProjections(ctx context.Context, query string, args []any) ([]projection.Projection, error) {
	var rows []projectionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select projections: %w", err)
	}

	out := make([]projection.Projection, 0, len(rows))
	for _, row := range rows {
		out = append(out, projection.Projection{
			ID:                      row.ID,
			PlayerID:                row.PlayerID,
			Week:                    row.Week,
			SeasonYear:              row.SeasonYear,
			Source:                  row.Source,
			ProjectedPassingYards:   row.ProjectedPassingYards,
			ProjectedPassingTDs:     row.ProjectedPassingTDs,
			ProjectedRushingYards:   row.ProjectedRushingYards,
			ProjectedRushingTDs:     row.ProjectedRushingTDs,
			ProjectedReceptions:     row.ProjectedReceptions,
			ProjectedReceivingYards: row.ProjectedReceivingYards,
			ProjectedReceivingTDs:   row.ProjectedReceivingTDs,
			ProjectedFantasyPoints:  row.ProjectedFantasyPoints,
			Confidence:              nullIntPtr(row.Confidence),
		})
	}

	return out, nil
}
