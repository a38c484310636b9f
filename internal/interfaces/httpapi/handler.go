package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	teamService      *usecase.TeamService
	playerService    *usecase.PlayerService
	matchupService   *usecase.MatchupService
	tradeService     *usecase.TradeService
	waiverService    *usecase.WaiverService
	analyticsService *usecase.AnalyticsService
	syncService      *usecase.SyncService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	teamService *usecase.TeamService,
	playerService *usecase.PlayerService,
	matchupService *usecase.MatchupService,
	tradeService *usecase.TradeService,
	waiverService *usecase.WaiverService,
	analyticsService *usecase.AnalyticsService,
	syncService *usecase.SyncService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		teamService:      teamService,
		playerService:    playerService,
		matchupService:   matchupService,
		tradeService:     tradeService,
		waiverService:    waiverService,
		analyticsService: analyticsService,
		syncService:      syncService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	cfg, err := h.leagueService.GetActive(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueConfigToDTO(cfg))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
