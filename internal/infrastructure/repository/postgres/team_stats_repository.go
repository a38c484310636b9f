package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/teamstats"
)

type TeamStatsRepository struct {
	db *sqlx.DB
}

type teamDefenseStatTableModel struct {
	ID               string  `db:"id"`
	NFLTeamID        string  `db:"nfl_team_id"`
	NFLGameID        string  `db:"nfl_game_id"`
	Sacks            int     `db:"sacks"`
	Interceptions    int     `db:"interceptions"`
	FumblesRecovered int     `db:"fumbles_recovered"`
	Safeties         int     `db:"safeties"`
	Touchdowns       int     `db:"touchdowns"`
	PointsAllowed    int     `db:"points_allowed"`
	YardsAllowed     int     `db:"yards_allowed"`
	FantasyPoints    float64 `db:"fantasy_points"`
}

func NewTeamStatsRepository(db *sqlx.DB) *TeamStatsRepository {
	return &TeamStatsRepository{db: db}
}

func (r *TeamStatsRepository) ListByTeam(ctx context.Context, nflTeamID string, seasonYear int) ([]teamstats.DefenseGameStat, error) {
	const query = `
SELECT s.id, s.nfl_team_id, s.nfl_game_id, s.sacks, s.interceptions, s.fumbles_recovered,
       s.safeties, s.touchdowns, s.points_allowed, s.yards_allowed, s.fantasy_points
FROM team_defense_game_stats s
JOIN nfl_games g ON g.id = s.nfl_game_id
WHERE s.nfl_team_id = $1
  AND g.season_year = $2
ORDER BY g.week`

	var rows []teamDefenseStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, nflTeamID, seasonYear); err != nil {
		return nil, fmt.Errorf("select team defense stats: %w", err)
	}

	out := make([]teamstats.DefenseGameStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamstats.DefenseGameStat{
			ID:               row.ID,
			NFLTeamID:        row.NFLTeamID,
			NFLGameID:        row.NFLGameID,
			Sacks:            row.Sacks,
			Interceptions:    row.Interceptions,
			FumblesRecovered: row.FumblesRecovered,
			Safeties:         row.Safeties,
			Touchdowns:       row.Touchdowns,
			PointsAllowed:    row.PointsAllowed,
			YardsAllowed:     row.YardsAllowed,
			FantasyPoints:    row.FantasyPoints,
		})
	}

	return out, nil
}
