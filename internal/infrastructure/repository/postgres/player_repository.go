package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"id",
	"name",
	"position",
	"nfl_team_id",
	"espn_id",
	"jersey_number",
	"height_inches",
	"weight_pounds",
	"age",
	"years_experience",
	"college",
	"is_active",
	"is_injured",
	"injury_status",
	"created_at",
	"updated_at",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, position string) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players")
	if position != "" {
		builder = builder.Where(qb.Eq("position", position))
	}
	query, args, err := builder.OrderBy("name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player by id: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	if len(playerIDs) == 0 {
		return []player.Player{}, nil
	}

	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.In("id", stringSliceToAny(playerIDs))).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select players by ids query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select players by ids: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) ListAvailable(ctx context.Context, position string) ([]player.Player, error) {
	builder := qb.Select(playerSelectColumns...).From("players").
		Where(
			qb.Eq("is_active", true),
			qb.Expr("id NOT IN (SELECT player_id FROM roster_entries)"),
		)
	if position != "" {
		builder = builder.Where(qb.Eq("position", position))
	}
	query, args, err := builder.OrderBy("position", "name").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select available players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select available players: %w", err)
	}

	return playersFromRows(rows), nil
}

func (r *PlayerRepository) ReplaceAll(ctx context.Context, players []player.Player) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for player replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM players`); err != nil {
		return fmt.Errorf("clear players: %w", err)
	}

	const insertQuery = `
INSERT INTO players (
    id, name, position, nfl_team_id, espn_id, jersey_number, height_inches,
    weight_pounds, age, years_experience, college, is_active, is_injured, injury_status
) VALUES (
    :id, :name, :position, :nfl_team_id, :espn_id, :jersey_number, :height_inches,
    :weight_pounds, :age, :years_experience, :college, :is_active, :is_injured, :injury_status
)`

	for _, p := range players {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":               p.ID,
			"name":             p.Name,
			"position":         string(p.Position),
			"nfl_team_id":      ptrNullString(p.NFLTeamID),
			"espn_id":          ptrNullString(p.ESPNID),
			"jersey_number":    ptrNullInt(p.JerseyNumber),
			"height_inches":    ptrNullInt(p.HeightInches),
			"weight_pounds":    ptrNullInt(p.WeightPounds),
			"age":              ptrNullInt(p.Age),
			"years_experience": ptrNullInt(p.YearsExperience),
			"college":          p.College,
			"is_active":        p.IsActive,
			"is_injured":       p.IsInjured,
			"injury_status":    p.InjuryStatus,
		})
		if err != nil {
			return fmt.Errorf("bind insert player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit player replace tx: %w", err)
	}

	return nil
}

func playersFromRows(rows []playerTableModel) []player.Player {
	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}
	return out
}
