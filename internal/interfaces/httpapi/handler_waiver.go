package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

func (h *Handler) GetWaiverPriority(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWaiverPriority")
	defer span.End()

	entries, err := h.waiverService.Priority(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "waiver priority failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]waiverPriorityDTO, 0, len(entries))
	for _, entry := range entries {
		out = append(out, waiverPriorityToDTO(entry))
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetWaiverRecommendations(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWaiverRecommendations")
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

	views, err := h.waiverService.Recommendations(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "waiver recommendations failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]waiverRecommendationDTO, 0, len(views))
	for _, view := range views {
		out = append(out, waiverRecommendationToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, struct {
		Week            int                       `json:"week"`
		Recommendations []waiverRecommendationDTO `json:"recommendations"`
	}{Week: week, Recommendations: out})
}
