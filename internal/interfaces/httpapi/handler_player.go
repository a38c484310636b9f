package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	position := r.URL.Query().Get("position")
	players, err := h.playerService.List(ctx, position)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) ListAvailablePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAvailablePlayers")
	defer span.End()

	position := r.URL.Query().Get("position")
	grouped, err := h.playerService.ListAvailable(ctx, position)
	if err != nil {
		h.logger.WarnContext(ctx, "list available players failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]playerDTO, len(grouped))
	for pos, players := range grouped {
		out[pos] = playersToDTO(players)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayerRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerRankings")
	defer span.End()

	position := r.URL.Query().Get("position")
	week, err := optionalWeekParam(r.URL.Query().Get("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rankings, err := h.playerService.Rankings(ctx, position, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get rankings failed", "position", position, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingsToDTO(rankings))
}

type comparePlayersRequest struct {
	PlayerIDs []string `json:"player_ids" validate:"required,min=2,dive,required"`
}

func (h *Handler) ComparePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ComparePlayers")
	defer span.End()

	var req comparePlayersRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	comparisons, err := h.playerService.Compare(ctx, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "compare players failed", "player_count", len(req.PlayerIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerComparisonDTO, 0, len(comparisons))
	for _, comparison := range comparisons {
		items = append(items, playerComparisonToDTO(comparison))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	details, err := h.playerService.GetDetails(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerDetailsToDTO(details))
}

func (h *Handler) GetPlayerProjections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProjections")
	defer span.End()

	playerID := r.PathValue("playerID")
	week, err := weekParamOrZero(r.URL.Query().Get("week"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	projections, err := h.playerService.Projections(ctx, playerID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "get projections failed", "player_id", playerID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, projectionsToDTO(projections))
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := r.PathValue("playerID")
	seasonYear := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("season")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: season must be a number", usecase.ErrInvalidInput))
			return
		}
		seasonYear = parsed
	}

	stats, err := h.playerService.SeasonStats(ctx, playerID, seasonYear)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "season", seasonYear, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSeasonStatsToDTO(stats))
}

func optionalWeekParam(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: week must be a number", usecase.ErrInvalidInput)
	}
	return &week, nil
}

func weekParamOrZero(raw string) (int, error) {
	week, err := optionalWeekParam(raw)
	if err != nil {
		return 0, err
	}
	if week == nil {
		return 0, nil
	}
	return *week, nil
}
