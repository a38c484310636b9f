package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/ranking"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/trade"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/id"
)

const (
	// Rank-based player value: a top rank is worth close to the cap,
	// rank 200 and beyond is worth nothing.
	tradeValueCap = 200.0
	// Unranked players are treated as deep-bench depth.
	tradeDefaultRank = 175
	// Sides within this value gap are considered a fair swap.
	tradeBalancedMargin = 20.0
)

// CreateProposalInput describes a new trade offer.
type CreateProposalInput struct {
	ProposingTeamID  string
	ReceivingTeamID  string
	OfferedPlayerIDs []string
	WantedPlayerIDs  []string
	Notes            string
	ExpiresAt        *time.Time
}

// ProposalView is a proposal joined with its items and analysis.
type ProposalView struct {
	Proposal trade.Proposal  `json:"proposal"`
	Items    []trade.Item    `json:"items"`
	Analysis *trade.Analysis `json:"analysis,omitempty"`
}

// TradeEvaluation is a fairness verdict for an arbitrary asset swap.
type TradeEvaluation struct {
	ProposingValue  float64  `json:"proposing_value"`
	ReceivingValue  float64  `json:"receiving_value"`
	ValueGap        float64  `json:"value_gap"`
	IsBalanced      bool     `json:"is_balanced"`
	FavoredSide     string   `json:"favored_side,omitempty"`
	ProposingAssets []string `json:"proposing_assets"`
	ReceivingAssets []string `json:"receiving_assets"`
}

// TradeService manages trade proposals and fairness analysis.
type TradeService struct {
	tradeRepo   trade.Repository
	teamRepo    fantasyteam.Repository
	rosterRepo  roster.Repository
	playerRepo  player.Repository
	rankingRepo ranking.Repository
	ids         id.Generator
}

func NewTradeService(
	tradeRepo trade.Repository,
	teamRepo fantasyteam.Repository,
	rosterRepo roster.Repository,
	playerRepo player.Repository,
	rankingRepo ranking.Repository,
	ids id.Generator,
) *TradeService {
	return &TradeService{
		tradeRepo:   tradeRepo,
		teamRepo:    teamRepo,
		rosterRepo:  rosterRepo,
		playerRepo:  playerRepo,
		rankingRepo: rankingRepo,
		ids:         ids,
	}
}

// ListProposals returns every proposal with items and analysis attached.
func (s *TradeService) ListProposals(ctx context.Context) ([]ProposalView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.ListProposals")
	defer span.End()

	proposals, err := s.tradeRepo.ListProposals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trade proposals: %w", err)
	}

	out := make([]ProposalView, 0, len(proposals))
	for _, p := range proposals {
		items, err := s.tradeRepo.ListItems(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("list trade items for %s: %w", p.ID, err)
		}

		view := ProposalView{Proposal: p, Items: items}
		analysis, found, err := s.tradeRepo.GetAnalysis(ctx, p.ID)
		if err != nil {
			return nil, fmt.Errorf("get trade analysis for %s: %w", p.ID, err)
		}
		if found {
			view.Analysis = &analysis
		}

		out = append(out, view)
	}

	return out, nil
}

// CreateProposal validates the offer and persists it with a computed
// fairness analysis.
func (s *TradeService) CreateProposal(ctx context.Context, input CreateProposalInput) (ProposalView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.CreateProposal")
	defer span.End()

	input.ProposingTeamID = strings.TrimSpace(input.ProposingTeamID)
	input.ReceivingTeamID = strings.TrimSpace(input.ReceivingTeamID)
	if input.ProposingTeamID == "" || input.ReceivingTeamID == "" {
		return ProposalView{}, fmt.Errorf("%w: both team ids are required", ErrInvalidInput)
	}
	if input.ProposingTeamID == input.ReceivingTeamID {
		return ProposalView{}, fmt.Errorf("%w: a team cannot trade with itself", ErrInvalidInput)
	}
	if len(input.OfferedPlayerIDs) == 0 && len(input.WantedPlayerIDs) == 0 {
		return ProposalView{}, fmt.Errorf("%w: a trade needs at least one player", ErrInvalidInput)
	}

	for _, teamID := range []string{input.ProposingTeamID, input.ReceivingTeamID} {
		_, found, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return ProposalView{}, fmt.Errorf("get fantasy team: %w", err)
		}
		if !found {
			return ProposalView{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
		}
	}

	if err := s.validateOwnership(ctx, input.ProposingTeamID, input.OfferedPlayerIDs); err != nil {
		return ProposalView{}, err
	}
	if err := s.validateOwnership(ctx, input.ReceivingTeamID, input.WantedPlayerIDs); err != nil {
		return ProposalView{}, err
	}

	proposalID, err := s.ids.NewID()
	if err != nil {
		return ProposalView{}, fmt.Errorf("generate proposal id: %w", err)
	}

	proposal := trade.Proposal{
		ID:              proposalID,
		ProposingTeamID: input.ProposingTeamID,
		ReceivingTeamID: input.ReceivingTeamID,
		Status:          trade.StatusPending,
		ProposedAt:      time.Now().UTC(),
		ExpiresAt:       input.ExpiresAt,
		Notes:           strings.TrimSpace(input.Notes),
	}
	if err := proposal.Validate(); err != nil {
		return ProposalView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items := make([]trade.Item, 0, len(input.OfferedPlayerIDs)+len(input.WantedPlayerIDs))
	appendItems := func(playerIDs []string, fromTeamID, toTeamID string) error {
		for _, playerID := range playerIDs {
			itemID, err := s.ids.NewID()
			if err != nil {
				return fmt.Errorf("generate trade item id: %w", err)
			}
			pid := playerID
			item := trade.Item{
				ID:              itemID,
				TradeProposalID: proposalID,
				FromTeamID:      fromTeamID,
				ToTeamID:        toTeamID,
				PlayerID:        &pid,
			}
			if err := item.Validate(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			items = append(items, item)
		}
		return nil
	}
	if err := appendItems(input.OfferedPlayerIDs, input.ProposingTeamID, input.ReceivingTeamID); err != nil {
		return ProposalView{}, err
	}
	if err := appendItems(input.WantedPlayerIDs, input.ReceivingTeamID, input.ProposingTeamID); err != nil {
		return ProposalView{}, err
	}

	if err := s.tradeRepo.CreateProposal(ctx, proposal, items); err != nil {
		return ProposalView{}, fmt.Errorf("create trade proposal: %w", err)
	}

	view := ProposalView{Proposal: proposal, Items: items}

	evaluation, err := s.Evaluate(ctx, input.OfferedPlayerIDs, input.WantedPlayerIDs)
	if err != nil {
		return ProposalView{}, err
	}

	analysisID, err := s.ids.NewID()
	if err != nil {
		return ProposalView{}, fmt.Errorf("generate analysis id: %w", err)
	}
	analysis := trade.Analysis{
		ID:                analysisID,
		TradeProposalID:   proposalID,
		ProposingValue:    evaluation.ProposingValue,
		ReceivingValue:    evaluation.ReceivingValue,
		RosterImprovement: clampImprovement(evaluation.ReceivingValue - evaluation.ProposingValue),
		IsBalanced:        evaluation.IsBalanced,
		Notes:             evaluationNotes(evaluation),
	}
	if err := s.tradeRepo.SaveAnalysis(ctx, analysis); err != nil {
		return ProposalView{}, fmt.Errorf("save trade analysis: %w", err)
	}
	view.Analysis = &analysis

	return view, nil
}

// Evaluate values both sides of a swap from the latest rankings. A
// player's value is the rank cap minus their rank, floored at zero.
func (s *TradeService) Evaluate(ctx context.Context, offeredPlayerIDs, wantedPlayerIDs []string) (TradeEvaluation, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.Evaluate")
	defer span.End()

	if len(offeredPlayerIDs) == 0 && len(wantedPlayerIDs) == 0 {
		return TradeEvaluation{}, fmt.Errorf("%w: a trade needs at least one player", ErrInvalidInput)
	}

	all := append(append([]string{}, offeredPlayerIDs...), wantedPlayerIDs...)
	players, err := s.playerRepo.GetByIDs(ctx, all)
	if err != nil {
		return TradeEvaluation{}, fmt.Errorf("load trade players: %w", err)
	}
	byID := make(map[string]player.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	for _, playerID := range all {
		if _, ok := byID[playerID]; !ok {
			return TradeEvaluation{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
		}
	}

	ranks, err := s.rankingRepo.LatestRanks(ctx, all)
	if err != nil {
		return TradeEvaluation{}, fmt.Errorf("load latest ranks: %w", err)
	}

	sideValue := func(playerIDs []string) (float64, []string) {
		var total float64
		names := make([]string, 0, len(playerIDs))
		for _, playerID := range playerIDs {
			rank, ok := ranks[playerID]
			if !ok {
				rank = tradeDefaultRank
			}
			value := tradeValueCap - float64(rank)
			if value < 0 {
				value = 0
			}
			total += value
			names = append(names, byID[playerID].Name)
		}
		return total, names
	}

	proposingValue, proposingAssets := sideValue(offeredPlayerIDs)
	receivingValue, receivingAssets := sideValue(wantedPlayerIDs)

	gap := proposingValue - receivingValue
	if gap < 0 {
		gap = -gap
	}

	out := TradeEvaluation{
		ProposingValue:  proposingValue,
		ReceivingValue:  receivingValue,
		ValueGap:        gap,
		IsBalanced:      gap <= tradeBalancedMargin,
		ProposingAssets: proposingAssets,
		ReceivingAssets: receivingAssets,
	}
	if !out.IsBalanced {
		if proposingValue > receivingValue {
			out.FavoredSide = "receiving"
		} else {
			out.FavoredSide = "proposing"
		}
	}

	return out, nil
}

func (s *TradeService) validateOwnership(ctx context.Context, teamID string, playerIDs []string) error {
	if len(playerIDs) == 0 {
		return nil
	}

	owners, err := s.rosterRepo.TeamIDsForPlayers(ctx, playerIDs)
	if err != nil {
		return fmt.Errorf("resolve player owners: %w", err)
	}

	for _, playerID := range playerIDs {
		owner, rostered := owners[playerID]
		if !rostered {
			return fmt.Errorf("%w: player %s is not on a roster", ErrInvalidInput, playerID)
		}
		if owner != teamID {
			return fmt.Errorf("%w: player %s does not belong to team %s", ErrInvalidInput, playerID, teamID)
		}
	}

	return nil
}

func evaluationNotes(e TradeEvaluation) string {
	if e.IsBalanced {
		return "Trade is balanced"
	}
	return fmt.Sprintf("Trade favors the %s side by %.1f", e.FavoredSide, e.ValueGap)
}

func clampImprovement(v float64) float64 {
	if v > 100 {
		return 100
	}
	if v < -100 {
		return -100
	}
	return v
}
