package httpapi

import (
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

type createTradeRequest struct {
	ProposingTeamID  string     `json:"proposing_team_id" validate:"required"`
	ReceivingTeamID  string     `json:"receiving_team_id" validate:"required"`
	OfferedPlayerIDs []string   `json:"offered_player_ids" validate:"required_without=WantedPlayerIDs,dive,required"`
	WantedPlayerIDs  []string   `json:"wanted_player_ids" validate:"required_without=OfferedPlayerIDs,dive,required"`
	Notes            string     `json:"notes" validate:"max=2000"`
	ExpiresAt        *time.Time `json:"expires_at"`
}

type analyzeTradeRequest struct {
	OfferedPlayerIDs []string `json:"offered_player_ids" validate:"required_without=WantedPlayerIDs,dive,required"`
	WantedPlayerIDs  []string `json:"wanted_player_ids" validate:"required_without=OfferedPlayerIDs,dive,required"`
}

func (h *Handler) ListTradeProposals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTradeProposals")
	defer span.End()

	views, err := h.tradeService.ListProposals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list trade proposals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]tradeProposalViewDTO, 0, len(views))
	for _, view := range views {
		out = append(out, tradeProposalViewToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) CreateTradeProposal(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateTradeProposal")
	defer span.End()

	var req createTradeRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.tradeService.CreateProposal(ctx, usecase.CreateProposalInput{
		ProposingTeamID:  req.ProposingTeamID,
		ReceivingTeamID:  req.ReceivingTeamID,
		OfferedPlayerIDs: req.OfferedPlayerIDs,
		WantedPlayerIDs:  req.WantedPlayerIDs,
		Notes:            req.Notes,
		ExpiresAt:        req.ExpiresAt,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create trade proposal failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tradeProposalViewToDTO(view))
}

func (h *Handler) AnalyzeTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AnalyzeTrade")
	defer span.End()

	var req analyzeTradeRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	evaluation, err := h.tradeService.Evaluate(ctx, req.OfferedPlayerIDs, req.WantedPlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze trade failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, evaluation)
}
