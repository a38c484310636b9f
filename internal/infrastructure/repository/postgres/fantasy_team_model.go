package postgres

import (
	"database/sql"
	"time"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
)

type fantasyTeamTableModel struct {
	ID             string         `db:"id"`
	OwnerName      string         `db:"owner_name"`
	TeamName       string         `db:"team_name"`
	PlatformTeamID sql.NullString `db:"platform_team_id"`
	Wins           int            `db:"wins"`
	Losses         int            `db:"losses"`
	Ties           int            `db:"ties"`
	PointsFor      float64        `db:"points_for"`
	PointsAgainst  float64        `db:"points_against"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
}

func fantasyTeamFromRow(row fantasyTeamTableModel) fantasyteam.FantasyTeam {
	return fantasyteam.FantasyTeam{
		ID:             row.ID,
		OwnerName:      row.OwnerName,
		TeamName:       row.TeamName,
		PlatformTeamID: nullStringPtr(row.PlatformTeamID),
		Wins:           row.Wins,
		Losses:         row.Losses,
		Ties:           row.Ties,
		PointsFor:      row.PointsFor,
		PointsAgainst:  row.PointsAgainst,
	}
}

type weeklyScoreTableModel struct {
	ID            string  `db:"id"`
	FantasyTeamID string  `db:"fantasy_team_id"`
	Week          int     `db:"week"`
	TotalScore    float64 `db:"total_score"`
	BenchScore    float64 `db:"bench_score"`
	OptimalScore  float64 `db:"optimal_score"`
}
