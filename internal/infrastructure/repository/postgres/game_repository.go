package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/game"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type GameRepository struct {
	db *sqlx.DB
}

type nflGameTableModel struct {
	ID            string        `db:"id"`
	SeasonYear    int           `db:"season_year"`
	Week          int           `db:"week"`
	HomeNFLTeamID string        `db:"home_nfl_team_id"`
	AwayNFLTeamID string        `db:"away_nfl_team_id"`
	HomeScore     sql.NullInt64 `db:"home_score"`
	AwayScore     sql.NullInt64 `db:"away_score"`
	Status        string        `db:"status"`
}

var nflGameSelectColumns = []string{
	"id",
	"season_year",
	"week",
	"home_nfl_team_id",
	"away_nfl_team_id",
	"home_score",
	"away_score",
	"status",
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) ListBySeason(ctx context.Context, seasonYear int) ([]game.NFLGame, error) {
	query, args, err := qb.Select(nflGameSelectColumns...).From("nfl_games").
		Where(qb.Eq("season_year", seasonYear)).
		OrderBy("week", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by season query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) ListByWeek(ctx context.Context, seasonYear, week int) ([]game.NFLGame, error) {
	query, args, err := qb.Select(nflGameSelectColumns...).From("nfl_games").
		Where(
			qb.Eq("season_year", seasonYear),
			qb.Eq("week", week),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games by week query: %w", err)
	}

	return r.selectGames(ctx, query, args)
}

func (r *GameRepository) selectGames(ctx context.Context, query string, args []any) ([]game.NFLGame, error) {
	var rows []nflGameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select nfl games: %w", err)
	}

	out := make([]game.NFLGame, 0, len(rows))
	for _, row := range rows {
		out = append(out, game.NFLGame{
			ID:            row.ID,
			SeasonYear:    row.SeasonYear,
			Week:          row.Week,
			HomeNFLTeamID: row.HomeNFLTeamID,
			AwayNFLTeamID: row.AwayNFLTeamID,
			HomeScore:     nullIntPtr(row.HomeScore),
			AwayScore:     nullIntPtr(row.AwayScore),
			Status:        row.Status,
		})
	}

	return out, nil
}
