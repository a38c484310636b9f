package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/ranking"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type RankingRepository struct {
	db *sqlx.DB
}

type rankingTableModel struct {
	ID         string        `db:"id"`
	PlayerID   string        `db:"player_id"`
	Position   string        `db:"position"`
	Source     string        `db:"source"`
	Rank       int           `db:"rank"`
	Week       sql.NullInt64 `db:"week"`
	SeasonYear int           `db:"season_year"`
	Tier       sql.NullInt64 `db:"tier"`
	Notes      string        `db:"notes"`
	CreatedAt  time.Time     `db:"created_at"`
}

var rankingSelectColumns = []string{
	"id",
	"player_id",
	"position",
	"source",
	"rank",
	"week",
	"season_year",
	"tier",
	"notes",
	"created_at",
}

func NewRankingRepository(db *sqlx.DB) *RankingRepository {
	return &RankingRepository{db: db}
}

func (r *RankingRepository) List(ctx context.Context, position string, week *int) ([]ranking.Ranking, error) {
	builder := qb.Select(rankingSelectColumns...).From("player_rankings")
	if position != "" {
		builder = builder.Where(qb.Eq("position", position))
	}
	if week != nil {
		builder = builder.Where(qb.Eq("week", *week))
	}
	query, args, err := builder.OrderBy("rank").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select rankings query: %w", err)
	}

	return r.selectRankings(ctx, query, args)
}

func (r *RankingRepository) ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]ranking.Ranking, error) {
	query, args, err := qb.Select(rankingSelectColumns...).From("player_rankings").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("created_at DESC").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select recent rankings query: %w", err)
	}

	return r.selectRankings(ctx, query, args)
}

func (r *RankingRepository) LatestRanks(ctx context.Context, playerIDs []string) (map[string]int, error) {
	if len(playerIDs) == 0 {
		return map[string]int{}, nil
	}

	const query = `
SELECT DISTINCT ON (player_id) player_id, rank
FROM player_rankings
WHERE player_id = ANY($1)
ORDER BY player_id, created_at DESC`

	var rows []struct {
		PlayerID string `db:"player_id"`
		Rank     int    `db:"rank"`
	}
	if err := r.db.SelectContext(ctx, &rows, query, pqStringArray(playerIDs)); err != nil {
		return nil, fmt.Errorf("select latest ranks: %w", err)
	}

	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.PlayerID] = row.Rank
	}

	return out, nil
}

func (r *RankingRepository) selectRankings(ctx context.Context, query string, args []any) ([]ranking.Ranking, error) {
	var rows []rankingTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select rankings: %w", err)
	}

	out := make([]ranking.Ranking, 0, len(rows))
	for _, row := range rows {
		out = append(out, ranking.Ranking{
			ID:         row.ID,
			PlayerID:   row.PlayerID,
			Position:   row.Position,
			Source:     row.Source,
			Rank:       row.Rank,
			Week:       nullIntPtr(row.Week),
			SeasonYear: row.SeasonYear,
			Tier:       nullIntPtr(row.Tier),
			Notes:      row.Notes,
		})
	}

	return out, nil
}
