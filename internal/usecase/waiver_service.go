package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/ranking"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/waiver"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/id"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
)

const (
	waiverRecsPerPosition = 10
	waiverRecsTotalLimit  = 50
)

// PriorityEntry is one team's slot in the waiver claim order.
type PriorityEntry struct {
	Priority waiver.Priority `json:"priority"`
	TeamName string          `json:"team_name"`
	Record   string          `json:"record"`
}

// RecommendationView is a pickup suggestion joined with player detail.
type RecommendationView struct {
	Recommendation waiver.Recommendation `json:"recommendation"`
	Player         player.Player         `json:"player"`
}

// WaiverService produces waiver priority and free agent recommendations.
type WaiverService struct {
	waiverRepo     waiver.Repository
	teamRepo       fantasyteam.Repository
	playerRepo     player.Repository
	projectionRepo projection.Repository
	rankingRepo    ranking.Repository
	leagueRepo     league.Repository
	ids            id.Generator
	logger         *logging.Logger
}

func NewWaiverService(
	waiverRepo waiver.Repository,
	teamRepo fantasyteam.Repository,
	playerRepo player.Repository,
	projectionRepo projection.Repository,
	rankingRepo ranking.Repository,
	leagueRepo league.Repository,
	ids id.Generator,
	logger *logging.Logger,
) *WaiverService {
	return &WaiverService{
		waiverRepo:     waiverRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		projectionRepo: projectionRepo,
		rankingRepo:    rankingRepo,
		leagueRepo:     leagueRepo,
		ids:            ids,
		logger:         logger,
	}
}

// Priority returns the waiver claim order for the active season. When no
// order has been stored yet it is derived from the inverse standings,
// persisted, and returned.
func (s *WaiverService) Priority(ctx context.Context) ([]PriorityEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WaiverService.Priority")
	defer span.End()

	cfg, found, err := s.leagueRepo.GetActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active league: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: no active league configured", ErrNotFound)
	}

	priorities, err := s.waiverRepo.ListPriorities(ctx, cfg.SeasonYear)
	if err != nil {
		return nil, fmt.Errorf("list waiver priorities: %w", err)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}
	teamsByID := make(map[string]fantasyteam.FantasyTeam, len(teams))
	for _, t := range teams {
		teamsByID[t.ID] = t
	}

	if len(priorities) == 0 {
		priorities = derivePriorities(teams, cfg.SeasonYear)
		for i := range priorities {
			priorityID, err := s.ids.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate priority id: %w", err)
			}
			priorities[i].ID = priorityID
		}
		if err := s.waiverRepo.ReplacePriorities(ctx, priorities); err != nil {
			return nil, fmt.Errorf("store waiver priorities: %w", err)
		}
		s.logger.InfoContext(ctx, "derived waiver priority from standings", "teams", len(priorities))
	}

	out := make([]PriorityEntry, 0, len(priorities))
	for _, p := range priorities {
		entry := PriorityEntry{Priority: p}
		if team, ok := teamsByID[p.FantasyTeamID]; ok {
			entry.TeamName = team.TeamName
			entry.Record = fmt.Sprintf("%d-%d-%d", team.Wins, team.Losses, team.Ties)
		}
		out = append(out, entry)
	}

	return out, nil
}

// Recommendations returns ranked free agent pickups for the given week,
// refreshing the stored set as a side effect.
func (s *WaiverService) Recommendations(ctx context.Context, week int) ([]RecommendationView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.WaiverService.Recommendations")
	defer span.End()

	if week < 1 || week > 21 {
		return nil, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, week)
	}

	available, err := s.playerRepo.ListAvailable(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list available players: %w", err)
	}
	if len(available) == 0 {
		return []RecommendationView{}, nil
	}

	playerIDs := make([]string, 0, len(available))
	for _, p := range available {
		playerIDs = append(playerIDs, p.ID)
	}

	ranks, err := s.rankingRepo.LatestRanks(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("load latest ranks: %w", err)
	}

	projections, err := s.projectionRepo.ListForWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("load week projections: %w", err)
	}
	projected := make(map[string]float64, len(projections))
	for _, pr := range projections {
		if _, ok := projected[pr.PlayerID]; !ok {
			projected[pr.PlayerID] = pr.ProjectedFantasyPoints
		}
	}

	type candidate struct {
		player player.Player
		rank   int
		ranked bool
		points float64
	}

	byPosition := make(map[player.Position][]candidate)
	for _, p := range available {
		c := candidate{player: p, points: projected[p.ID]}
		if rank, ok := ranks[p.ID]; ok {
			c.rank = rank
			c.ranked = true
		}
		byPosition[p.Position] = append(byPosition[p.Position], c)
	}

	var picked []candidate
	for _, candidates := range byPosition {
		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i], candidates[j]
			if a.ranked != b.ranked {
				return a.ranked
			}
			if a.ranked && a.rank != b.rank {
				return a.rank < b.rank
			}
			return a.points > b.points
		})
		if len(candidates) > waiverRecsPerPosition {
			candidates = candidates[:waiverRecsPerPosition]
		}
		picked = append(picked, candidates...)
	}

	sort.SliceStable(picked, func(i, j int) bool {
		a, b := picked[i], picked[j]
		if a.ranked != b.ranked {
			return a.ranked
		}
		if a.ranked && a.rank != b.rank {
			return a.rank < b.rank
		}
		return a.points > b.points
	})
	if len(picked) > waiverRecsTotalLimit {
		picked = picked[:waiverRecsTotalLimit]
	}

	recommendations := make([]waiver.Recommendation, 0, len(picked))
	views := make([]RecommendationView, 0, len(picked))
	for _, c := range picked {
		recommendationID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate recommendation id: %w", err)
		}
		rec := waiver.Recommendation{
			ID:              recommendationID,
			PlayerID:        c.player.ID,
			Week:            week,
			Reason:          recommendationReason(c.player.Position, c.rank, c.ranked, c.points),
			Priority:        recommendationPriority(c.rank, c.ranked, c.points),
			ProjectedImpact: c.points,
		}
		recommendations = append(recommendations, rec)
		views = append(views, RecommendationView{Recommendation: rec, Player: c.player})
	}

	if err := s.waiverRepo.ReplaceRecommendations(ctx, week, recommendations); err != nil {
		return nil, fmt.Errorf("store waiver recommendations: %w", err)
	}

	return views, nil
}

// derivePriorities orders teams worst record first, the usual waiver
// convention.
func derivePriorities(teams []fantasyteam.FantasyTeam, seasonYear int) []waiver.Priority {
	sorted := make([]fantasyteam.FantasyTeam, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Wins != sorted[j].Wins {
			return sorted[i].Wins < sorted[j].Wins
		}
		return sorted[i].PointsFor < sorted[j].PointsFor
	})

	out := make([]waiver.Priority, 0, len(sorted))
	for i, t := range sorted {
		out = append(out, waiver.Priority{
			FantasyTeamID: t.ID,
			PriorityOrder: i + 1,
			SeasonYear:    seasonYear,
		})
	}

	return out
}

func recommendationPriority(rank int, ranked bool, points float64) waiver.PriorityLevel {
	switch {
	case ranked && rank <= 60, points >= 12:
		return waiver.PriorityHigh
	case ranked && rank <= 120, points >= 6:
		return waiver.PriorityMedium
	default:
		return waiver.PriorityLow
	}
}

func recommendationReason(position player.Position, rank int, ranked bool, points float64) string {
	switch {
	case ranked && points > 0:
		return fmt.Sprintf("Ranked #%d at %s with %.1f projected points", rank, position, points)
	case ranked:
		return fmt.Sprintf("Ranked #%d at %s", rank, position)
	case points > 0:
		return fmt.Sprintf("Projected for %.1f points at %s", points, position)
	default:
		return fmt.Sprintf("Best available at %s", position)
	}
}
