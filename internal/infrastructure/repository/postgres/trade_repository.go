package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/trade"
	qb "github.com/gridironlabs/fantasy-dashboard/internal/platform/querybuilder"
)

type TradeRepository struct {
	db *sqlx.DB
}

type tradeProposalTableModel struct {
	ID              string       `db:"id"`
	ProposingTeamID string       `db:"proposing_team_id"`
	ReceivingTeamID string       `db:"receiving_team_id"`
	Status          string       `db:"status"`
	ProposedAt      time.Time    `db:"proposed_at"`
	ExpiresAt       sql.NullTime `db:"expires_at"`
	Notes           string       `db:"notes"`
}

type tradeItemTableModel struct {
	ID              string         `db:"id"`
	TradeProposalID string         `db:"trade_proposal_id"`
	FromTeamID      string         `db:"from_team_id"`
	ToTeamID        string         `db:"to_team_id"`
	PlayerID        sql.NullString `db:"player_id"`
	DraftPickRound  sql.NullInt64  `db:"draft_pick_round"`
	DraftPickYear   sql.NullInt64  `db:"draft_pick_year"`
}

type tradeAnalysisTableModel struct {
	ID                string    `db:"id"`
	TradeProposalID   string    `db:"trade_proposal_id"`
	ProposingValue    float64   `db:"proposing_value"`
	ReceivingValue    float64   `db:"receiving_value"`
	RosterImprovement float64   `db:"roster_improvement"`
	IsBalanced        bool      `db:"is_balanced"`
	Notes             string    `db:"notes"`
	CreatedAt         time.Time `db:"created_at"`
}

var tradeProposalSelectColumns = []string{
	"id",
	"proposing_team_id",
	"receiving_team_id",
	"status",
	"proposed_at",
	"expires_at",
	"notes",
}

var tradeItemSelectColumns = []string{
	"id",
	"trade_proposal_id",
	"from_team_id",
	"to_team_id",
	"player_id",
	"draft_pick_round",
	"draft_pick_year",
}

func NewTradeRepository(db *sqlx.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

func (r *TradeRepository) ListProposals(ctx context.Context) ([]trade.Proposal, error) {
	query, args, err := qb.Select(tradeProposalSelectColumns...).From("trade_proposals").
		OrderBy("proposed_at DESC").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select trade proposals query: %w", err)
	}

	var rows []tradeProposalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select trade proposals: %w", err)
	}

	out := make([]trade.Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, tradeProposalFromRow(row))
	}

	return out, nil
}

func (r *TradeRepository) GetProposal(ctx context.Context, proposalID string) (trade.Proposal, bool, error) {
	query, args, err := qb.Select(tradeProposalSelectColumns...).From("trade_proposals").
		Where(qb.Eq("id", proposalID)).
		ToSQL()
	if err != nil {
		return trade.Proposal{}, false, fmt.Errorf("build select trade proposal query: %w", err)
	}

	var row tradeProposalTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return trade.Proposal{}, false, nil
		}
		return trade.Proposal{}, false, fmt.Errorf("select trade proposal: %w", err)
	}

	return tradeProposalFromRow(row), true, nil
}

func (r *TradeRepository) CreateProposal(ctx context.Context, proposal trade.Proposal, items []trade.Item) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx for trade proposal: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	const insertProposalQuery = `
INSERT INTO trade_proposals (id, proposing_team_id, receiving_team_id, status, proposed_at, expires_at, notes)
VALUES (:id, :proposing_team_id, :receiving_team_id, :status, :proposed_at, :expires_at, :notes)`

	sqlQuery, args, err := sqlx.Named(insertProposalQuery, map[string]any{
		"id":                proposal.ID,
		"proposing_team_id": proposal.ProposingTeamID,
		"receiving_team_id": proposal.ReceivingTeamID,
		"status":            string(proposal.Status),
		"proposed_at":       proposal.ProposedAt.UTC(),
		"expires_at":        nullTime(proposal.ExpiresAt),
		"notes":             proposal.Notes,
	})
	if err != nil {
		return fmt.Errorf("bind insert trade proposal query: %w", err)
	}
	sqlQuery = tx.Rebind(sqlQuery)
	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("insert trade proposal: %w", err)
	}

	const insertItemQuery = `
INSERT INTO trade_items (id, trade_proposal_id, from_team_id, to_team_id, player_id, draft_pick_round, draft_pick_year)
VALUES (:id, :trade_proposal_id, :from_team_id, :to_team_id, :player_id, :draft_pick_round, :draft_pick_year)`

	for _, item := range items {
		itemSQL, itemArgs, err := sqlx.Named(insertItemQuery, map[string]any{
			"id":                item.ID,
			"trade_proposal_id": item.TradeProposalID,
			"from_team_id":      item.FromTeamID,
			"to_team_id":        item.ToTeamID,
			"player_id":         ptrNullString(item.PlayerID),
			"draft_pick_round":  ptrNullInt(item.DraftPickRound),
			"draft_pick_year":   ptrNullInt(item.DraftPickYear),
		})
		if err != nil {
			return fmt.Errorf("bind insert trade item %s query: %w", item.ID, err)
		}
		itemSQL = tx.Rebind(itemSQL)
		if _, err := tx.ExecContext(ctx, itemSQL, itemArgs...); err != nil {
			return fmt.Errorf("insert trade item %s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit trade proposal tx: %w", err)
	}

	return nil
}

func (r *TradeRepository) ListItems(ctx context.Context, proposalID string) ([]trade.Item, error) {
	query, args, err := qb.Select(tradeItemSelectColumns...).From("trade_items").
		Where(qb.Eq("trade_proposal_id", proposalID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select trade items query: %w", err)
	}

	var rows []tradeItemTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select trade items: %w", err)
	}

	out := make([]trade.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, trade.Item{
			ID:              row.ID,
			TradeProposalID: row.TradeProposalID,
			FromTeamID:      row.FromTeamID,
			ToTeamID:        row.ToTeamID,
			PlayerID:        nullStringPtr(row.PlayerID),
			DraftPickRound:  nullIntPtr(row.DraftPickRound),
			DraftPickYear:   nullIntPtr(row.DraftPickYear),
		})
	}

	return out, nil
}

func (r *TradeRepository) GetAnalysis(ctx context.Context, proposalID string) (trade.Analysis, bool, error) {
	query, args, err := qb.Select(
		"id", "trade_proposal_id", "proposing_value", "receiving_value",
		"roster_improvement", "is_balanced", "notes", "created_at",
	).From("trade_analysis").
		Where(qb.Eq("trade_proposal_id", proposalID)).
		ToSQL()
	if err != nil {
		return trade.Analysis{}, false, fmt.Errorf("build select trade analysis query: %w", err)
	}

	var row tradeAnalysisTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return trade.Analysis{}, false, nil
		}
		return trade.Analysis{}, false, fmt.Errorf("select trade analysis: %w", err)
	}

	return trade.Analysis{
		ID:                row.ID,
		TradeProposalID:   row.TradeProposalID,
		ProposingValue:    row.ProposingValue,
		ReceivingValue:    row.ReceivingValue,
		RosterImprovement: row.RosterImprovement,
		IsBalanced:        row.IsBalanced,
		Notes:             row.Notes,
	}, true, nil
}

func (r *TradeRepository) SaveAnalysis(ctx context.Context, analysis trade.Analysis) error {
	const upsertQuery = `
INSERT INTO trade_analysis (id, trade_proposal_id, proposing_value, receiving_value, roster_improvement, is_balanced, notes)
VALUES (:id, :trade_proposal_id, :proposing_value, :receiving_value, :roster_improvement, :is_balanced, :notes)
ON CONFLICT (trade_proposal_id) DO UPDATE SET
    proposing_value = EXCLUDED.proposing_value,
    receiving_value = EXCLUDED.receiving_value,
    roster_improvement = EXCLUDED.roster_improvement,
    is_balanced = EXCLUDED.is_balanced,
    notes = EXCLUDED.notes`

	sqlQuery, args, err := sqlx.Named(upsertQuery, map[string]any{
		"id":                 analysis.ID,
		"trade_proposal_id":  analysis.TradeProposalID,
		"proposing_value":    analysis.ProposingValue,
		"receiving_value":    analysis.ReceivingValue,
		"roster_improvement": analysis.RosterImprovement,
		"is_balanced":        analysis.IsBalanced,
		"notes":              analysis.Notes,
	})
	if err != nil {
		return fmt.Errorf("bind upsert trade analysis query: %w", err)
	}
	sqlQuery = r.db.Rebind(sqlQuery)
	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("upsert trade analysis: %w", err)
	}

	return nil
}

func tradeProposalFromRow(row tradeProposalTableModel) trade.Proposal {
	return trade.Proposal{
		ID:              row.ID,
		ProposingTeamID: row.ProposingTeamID,
		ReceivingTeamID: row.ReceivingTeamID,
		Status:          trade.Status(row.Status),
		ProposedAt:      row.ProposedAt,
		ExpiresAt:       nullTimePtr(row.ExpiresAt),
		Notes:           row.Notes,
	}
}

func nullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: v.UTC(), Valid: true}
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
