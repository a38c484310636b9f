package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

func (h *Handler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchups")
	defer span.End()

	weeks, err := h.matchupService.ListGroupedByWeek(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matchups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]weekMatchupsDTO, 0, len(weeks))
	for _, week := range weeks {
		item := weekMatchupsDTO{Week: week.Week, Matchups: make([]matchupViewDTO, 0, len(week.Matchups))}
		for _, view := range week.Matchups {
			item.Matchups = append(item.Matchups, matchupViewToDTO(view))
		}
		out = append(out, item)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListMatchupsByWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchupsByWeek")
	defer span.End()

	week, err := strconv.Atoi(r.PathValue("week"))
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: week must be a number", usecase.ErrInvalidInput))
		return
	}

	views, err := h.matchupService.ListByWeek(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list week matchups failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchupViewDTO, 0, len(views))
	for _, view := range views {
		items = append(items, matchupViewToDTO(view))
	}

	writeSuccess(ctx, w, http.StatusOK, weekMatchupsDTO{Week: week, Matchups: items})
}

func (h *Handler) GetMatchup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchup")
	defer span.End()

	matchupID := r.PathValue("matchupID")
	details, err := h.matchupService.GetDetails(ctx, matchupID)
	if err != nil {
		h.logger.WarnContext(ctx, "get matchup failed", "matchup_id", matchupID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchupDetailsDTO{
		Matchup:    matchupToDTO(details.Matchup),
		HomeTeam:   teamRosterToDTO(details.HomeTeam),
		AwayTeam:   teamRosterToDTO(details.AwayTeam),
		HomeRecord: details.HomeRecord,
		AwayRecord: details.AwayRecord,
	})
}
