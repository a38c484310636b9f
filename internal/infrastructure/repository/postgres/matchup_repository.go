package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type MatchupRepository struct {
	db *sqlx.DB
}

type matchupTableModel struct {
	ID             string         `db:"id"`
	Week           int            `db:"week"`
	HomeTeamID     string         `db:"home_team_id"`
	AwayTeamID     string         `db:"away_team_id"`
	HomeScore      float64        `db:"home_score"`
	AwayScore      float64        `db:"away_score"`
	IsComplete     bool           `db:"is_complete"`
	WinnerTeamID   sql.NullString `db:"winner_team_id"`
	IsPlayoff      bool           `db:"is_playoff"`
	IsChampionship bool           `db:"is_championship"`
}

var matchupSelectColumns = []string{
	"id",
	"week",
	"home_team_id",
	"away_team_id",
	"home_score",
	"away_score",
	"is_complete",
	"winner_team_id",
	"is_playoff",
	"is_championship",
}

func NewMatchupRepository(db *sqlx.DB) *MatchupRepository {
	return &MatchupRepository{db: db}
}

func (r *MatchupRepository) List(ctx context.Context) ([]matchup.Matchup, error) {
	query, args, err := qb.Select(matchupSelectColumns...).From("fantasy_matchups").
		OrderBy("week", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchups query: %w", err)
	}

	return r.selectMatchups(ctx, query, args)
}

func (r *MatchupRepository) ListByWeek(ctx context.Context, week int) ([]matchup.Matchup, error) {
	query, args, err := qb.Select(matchupSelectColumns...).From("fantasy_matchups").
		Where(qb.Eq("week", week)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchups by week query: %w", err)
	}

	return r.selectMatchups(ctx, query, args)
}

func (r *MatchupRepository) ListByTeam(ctx context.Context, teamID string) ([]matchup.Matchup, error) {
	query, args, err := qb.Select(matchupSelectColumns...).From("fantasy_matchups").
		Where(qb.Expr("(home_team_id = ? OR away_team_id = ?)", teamID, teamID)).
		OrderBy("week").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matchups by team query: %w", err)
	}

	return r.selectMatchups(ctx, query, args)
}

func (r *MatchupRepository) GetByID(ctx context.Context, matchupID string) (matchup.Matchup, bool, error) {
	query, args, err := qb.Select(matchupSelectColumns...).From("fantasy_matchups").
		Where(qb.Eq("id", matchupID)).
		ToSQL()
	if err != nil {
		return matchup.Matchup{}, false, fmt.Errorf("build select matchup by id query: %w", err)
	}

	var row matchupTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchup.Matchup{}, false, nil
		}
		return matchup.Matchup{}, false, fmt.Errorf("select matchup by id: %w", err)
	}

	return matchupFromRow(row), true, nil
}

func (r *MatchupRepository) ReplaceAll(ctx context.Context, matchups []matchup.Matchup) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for matchup replace: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM fantasy_matchups`); err != nil {
		return fmt.Errorf("clear matchups: %w", err)
	}

	const insertQuery = `
INSERT INTO fantasy_matchups (id, week, home_team_id, away_team_id, home_score, away_score, is_complete, winner_team_id, is_playoff, is_championship)
VALUES (:id, :week, :home_team_id, :away_team_id, :home_score, :away_score, :is_complete, :winner_team_id, :is_playoff, :is_championship)`

	for _, m := range matchups {
		sqlQuery, args, err := sqlx.Named(insertQuery, map[string]any{
			"id":              m.ID,
			"week":            m.Week,
			"home_team_id":    m.HomeTeamID,
			"away_team_id":    m.AwayTeamID,
			"home_score":      m.HomeScore,
			"away_score":      m.AwayScore,
			"is_complete":     m.IsComplete,
			"winner_team_id":  ptrNullString(m.WinnerTeamID),
			"is_playoff":      m.IsPlayoff,
			"is_championship": m.IsChampionship,
		})
		if err != nil {
			return fmt.Errorf("bind insert matchup %s query: %w", m.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("insert matchup %s: %w", m.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit matchup replace tx: %w", err)
	}

	return nil
}

func (r *MatchupRepository) selectMatchups(ctx context.Context, query string, args []any) ([]matchup.Matchup, error) {
	var rows []matchupTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matchups: %w", err)
	}

	out := make([]matchup.Matchup, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchupFromRow(row))
	}

	return out, nil
}

func matchupFromRow(row matchupTableModel) matchup.Matchup {
	return matchup.Matchup{
		ID:             row.ID,
		Week:           row.Week,
		HomeTeamID:     row.HomeTeamID,
		AwayTeamID:     row.AwayTeamID,
		HomeScore:      row.HomeScore,
		AwayScore:      row.AwayScore,
		IsComplete:     row.IsComplete,
		WinnerTeamID:   nullStringPtr(row.WinnerTeamID),
		IsPlayoff:      row.IsPlayoff,
		IsChampionship: row.IsChampionship,
	}
}
