package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type RosterRepository struct {
	db *sqlx.DB
}

type rosterEntryTableModel struct {
	ID              string    `db:"id"`
	FantasyTeamID   string    `db:"fantasy_team_id"`
	PlayerID        string    `db:"player_id"`
	IsStarting      bool      `db:"is_starting"`
	AcquisitionType string    `db:"acquisition_type"`
	AcquiredAt      time.Time `db:"acquired_at"`
}

var rosterEntrySelectColumns = []string{
	"id",
	"fantasy_team_id",
	"player_id",
	"is_starting",
	"acquisition_type",
	"acquired_at",
}

func NewRosterRepository(db *sqlx.DB) *RosterRepository {
	return &RosterRepository{db: db}
}

func (r *RosterRepository) ListByTeam(ctx context.Context, teamID string) ([]roster.Entry, error) {
	query, args, err := qb.Select(rosterEntrySelectColumns...).From("roster_entries").
		Where(qb.Eq("fantasy_team_id", teamID)).
		OrderBy("is_starting DESC", "acquired_at").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster entries query: %w", err)
	}

	var rows []rosterEntryTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster entries: %w", err)
	}

	out := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, rosterEntryFromRow(row))
	}

	return out, nil
}

func (r *RosterRepository) TeamIDsForPlayers(ctx context.Context, playerIDs []string) (map[string]string, error) {
	if len(playerIDs) == 0 {
		return map[string]string{}, nil
	}

	query, args, err := qb.Select("player_id", "fantasy_team_id").From("roster_entries").
		Where(qb.In("player_id", stringSliceToAny(playerIDs))).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select roster team ids query: %w", err)
	}

	var rows []struct {
		PlayerID      string `db:"player_id"`
		FantasyTeamID string `db:"fantasy_team_id"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select roster team ids: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row.FantasyTeamID
	}

	return out, nil
}

func (r *RosterRepository) ReplaceAll(ctx context.Context, entries []roster.Entry) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for roster replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM roster_entries`); err != nil {
		return fmt.Errorf("clear roster entries: %w", err)
	}

	const insertQuery = `
INSERT INTO roster_entries (id, fantasy_team_id, player_id, is_starting, acquisition_type, acquired_at)
VALUES (:id, :fantasy_team_id, :player_id, :is_starting, :acquisition_type, :acquired_at)`

	for _, e := range entries {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":               e.ID,
			"fantasy_team_id":  e.FantasyTeamID,
			"player_id":        e.PlayerID,
			"is_starting":      e.IsStarting,
			"acquisition_type": string(e.Acquisition),
			"acquired_at":      e.AcquiredAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("bind insert roster entry %s query: %w", e.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert roster entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roster replace tx: %w", err)
	}

	return nil
}

func rosterEntryFromRow(row rosterEntryTableModel) roster.Entry {
	return roster.Entry{
		ID:            row.ID,
		FantasyTeamID: row.FantasyTeamID,
		PlayerID:      row.PlayerID,
		IsStarting:    row.IsStarting,
		Acquisition:   roster.AcquisitionType(row.AcquisitionType),
		AcquiredAt:    row.AcquiredAt,
	}
}
