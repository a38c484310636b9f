package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

// RunLeagueSyncJob pulls the full league snapshot from the upstream
// provider and rebuilds the local tables. Guarded by the internal job
// token so it is never reachable from the public dashboard surface.
func (h *Handler) RunLeagueSyncJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunLeagueSyncJob")
	defer span.End()

	if h.syncService == nil {
		writeError(ctx, w, fmt.Errorf("%w: league sync is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	result, err := h.syncService.SyncLeague(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league sync job failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "league sync job completed",
		"teams", result.TeamCount,
		"players", result.PlayerCount,
		"matchups", result.MatchupCount,
		"duration_ms", result.DurationMs,
	)
	writeSuccess(ctx, w, http.StatusOK, result)
}
