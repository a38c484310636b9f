package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

type playerGameStatTableModel struct {
	ID                  string  `db:"id"`
	PlayerID            string  `db:"player_id"`
	NFLGameID           string  `db:"nfl_game_id"`
	PassingYards        int     `db:"passing_yards"`
	PassingTouchdowns   int     `db:"passing_touchdowns"`
	Interceptions       int     `db:"interceptions"`
	RushingYards        int     `db:"rushing_yards"`
	RushingTouchdowns   int     `db:"rushing_touchdowns"`
	Receptions          int     `db:"receptions"`
	Targets             int     `db:"targets"`
	ReceivingYards      int     `db:"receiving_yards"`
	ReceivingTouchdowns int     `db:"receiving_touchdowns"`
	FumblesLost         int     `db:"fumbles_lost"`
	FieldGoalsMade      int     `db:"field_goals_made"`
	FieldGoalsAttempted int     `db:"field_goals_attempted"`
	ExtraPointsMade     int     `db:"extra_points_made"`
	FantasyPoints       float64 `db:"fantasy_points"`
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID string, seasonYear int) ([]playerstats.GameStat, error) {
	const query = `
SELECT s.id, s.player_id, s.nfl_game_id, s.passing_yards, s.passing_touchdowns, s.interceptions,
       s.rushing_yards, s.rushing_touchdowns, s.receptions, s.targets, s.receiving_yards,
       s.receiving_touchdowns, s.fumbles_lost, s.field_goals_made, s.field_goals_attempted,
       s.extra_points_made, s.fantasy_points
FROM player_game_stats s
JOIN nfl_games g ON g.id = s.nfl_game_id
WHERE s.player_id = $1
  AND g.season_year = $2
ORDER BY g.week`

	var rows []playerGameStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, playerID, seasonYear); err != nil {
		return nil, fmt.Errorf("select player game stats: %w", err)
	}

	out := make([]playerstats.GameStat, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerstats.GameStat{
			ID:                  row.ID,
			PlayerID:            row.PlayerID,
			NFLGameID:           row.NFLGameID,
			PassingYards:        row.PassingYards,
			PassingTouchdowns:   row.PassingTouchdowns,
			Interceptions:       row.Interceptions,
			RushingYards:        row.RushingYards,
			RushingTouchdowns:   row.RushingTouchdowns,
			Receptions:          row.Receptions,
			Targets:             row.Targets,
			ReceivingYards:      row.ReceivingYards,
			ReceivingTouchdowns: row.ReceivingTouchdowns,
			FumblesLost:         row.FumblesLost,
			FieldGoalsMade:      row.FieldGoalsMade,
			FieldGoalsAttempted: row.FieldGoalsAttempted,
			ExtraPointsMade:     row.ExtraPointsMade,
			FantasyPoints:       row.FantasyPoints,
		})
	}

	return out, nil
}
