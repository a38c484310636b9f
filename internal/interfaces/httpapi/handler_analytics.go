package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

func (h *Handler) GetLeagueAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueAnalytics")
	defer span.End()

	analytics, err := h.analyticsService.League(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league analytics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, analytics)
}

func (h *Handler) GetPositionalAnalytics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPositionalAnalytics")
	defer span.End()

	scarcity, err := h.analyticsService.Positional(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "positional analytics failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scarcity)
}

func (h *Handler) GetOptimalLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOptimalLineups")
	defer span.End()

	week, err := weekParamOrZero(r.URL.Query().Get("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if week == 0 {
		writeError(ctx, w, fmt.Errorf("%w: week query parameter is required", usecase.ErrInvalidInput))
		return
	}

	lineups, err := h.analyticsService.OptimalLineups(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "optimal lineups failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineups)
}
