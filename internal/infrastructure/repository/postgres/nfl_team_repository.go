package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/nflteam"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type NFLTeamRepository struct {
	db *sqlx.DB
}

var nflTeamSelectColumns = []string{
	"id",
	"code",
	"name",
	"city",
	"conference",
	"division",
	"created_at",
}

func NewNFLTeamRepository(db *sqlx.DB) *NFLTeamRepository {
	return &NFLTeamRepository{db: db}
}

func (r *NFLTeamRepository) List(ctx context.Context) ([]nflteam.NFLTeam, error) {
	query, args, err := qb.Select(nflTeamSelectColumns...).From("nfl_teams").
		OrderBy("code").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select nfl teams query: %w", err)
	}

	var rows []nflTeamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select nfl teams: %w", err)
	}

	out := make([]nflteam.NFLTeam, 0, len(rows))
	for _, row := range rows {
		out = append(out, nflTeamFromRow(row))
	}

	return out, nil
}

func (r *NFLTeamRepository) GetByCode(ctx context.Context, code string) (nflteam.NFLTeam, bool, error) {
	query, args, err := qb.Select(nflTeamSelectColumns...).From("nfl_teams").
		Where(qb.Eq("code", code)).
		ToSQL()
	if err != nil {
		return nflteam.NFLTeam{}, false, fmt.Errorf("build select nfl team by code query: %w", err)
	}

	var row nflTeamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nflteam.NFLTeam{}, false, nil
		}
		return nflteam.NFLTeam{}, false, fmt.Errorf("select nfl team by code: %w", err)
	}

	return nflTeamFromRow(row), true, nil
}

func nflTeamFromRow(row nflTeamTableModel) nflteam.NFLTeam {
	return nflteam.NFLTeam{
		ID:         row.ID,
		Code:       row.Code,
		Name:       row.Name,
		City:       row.City,
		Conference: row.Conference,
		Division:   row.Division,
	}
}
