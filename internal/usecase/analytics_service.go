package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/cache"
)

// Scarcity thresholds by share of the position pool already rostered.
const (
	scarcityHighThreshold   = 0.8
	scarcityMediumThreshold = 0.6
)

// Starting lineup shape used for optimal lineup computation.
var lineupSlots = []lineupSlot{
	{Name: "QB", Eligible: []player.Position{player.PositionQB}},
	{Name: "RB1", Eligible: []player.Position{player.PositionRB}},
	{Name: "RB2", Eligible: []player.Position{player.PositionRB}},
	{Name: "WR1", Eligible: []player.Position{player.PositionWR}},
	{Name: "WR2", Eligible: []player.Position{player.PositionWR}},
	{Name: "TE", Eligible: []player.Position{player.PositionTE}},
	{Name: "FLEX", Eligible: []player.Position{player.PositionRB, player.PositionWR, player.PositionTE}},
	{Name: "K", Eligible: []player.Position{player.PositionK}},
	{Name: "DEF", Eligible: []player.Position{player.PositionDEF}},
}

type lineupSlot struct {
	Name     string
	Eligible []player.Position
}

// ScoreExtreme is a single-team scoring high or low water mark.
type ScoreExtreme struct {
	TeamID   string  `json:"team_id"`
	TeamName string  `json:"team_name"`
	Week     int     `json:"week"`
	Score    float64 `json:"score"`
}

// MatchupExtreme is the closest game or biggest blowout on record.
type MatchupExtreme struct {
	MatchupID    string  `json:"matchup_id"`
	Week         int     `json:"week"`
	HomeTeamName string  `json:"home_team_name"`
	AwayTeamName string  `json:"away_team_name"`
	HomeScore    float64 `json:"home_score"`
	AwayScore    float64 `json:"away_score"`
	Margin       float64 `json:"margin"`
}

// TeamMetric is one team's season performance line.
type TeamMetric struct {
	TeamID        string  `json:"team_id"`
	TeamName      string  `json:"team_name"`
	PointsFor     float64 `json:"points_for"`
	PointsAgainst float64 `json:"points_against"`
	WinPercentage float64 `json:"win_percentage"`
	AveragePoints float64 `json:"average_points"`
}

// LeagueAnalytics is a league-wide scoring summary.
type LeagueAnalytics struct {
	TotalTeams           int                     `json:"total_teams"`
	TotalActivePlayers   int                     `json:"total_active_players"`
	CompletedMatchups    int                     `json:"completed_matchups"`
	TotalPoints          float64                 `json:"total_points"`
	AverageScore         float64                 `json:"average_score"`
	PositionDistribution map[player.Position]int `json:"position_distribution"`
	TeamMetrics          []TeamMetric            `json:"team_metrics"`
	HighestScoringTeam   *TeamMetric             `json:"highest_scoring_team,omitempty"`
	LowestScoringTeam    *TeamMetric             `json:"lowest_scoring_team,omitempty"`
	HighestScore         *ScoreExtreme           `json:"highest_score,omitempty"`
	LowestScore          *ScoreExtreme           `json:"lowest_score,omitempty"`
	ClosestMatchup       *MatchupExtreme         `json:"closest_matchup,omitempty"`
	BiggestBlowout       *MatchupExtreme         `json:"biggest_blowout,omitempty"`
}

// PositionScarcity summarizes how picked-over one position pool is.
type PositionScarcity struct {
	Position      player.Position `json:"position"`
	TotalPlayers  int             `json:"total_players"`
	Rostered      int             `json:"rostered"`
	RosteredShare float64         `json:"rostered_share"`
	Scarcity      string          `json:"scarcity"`
}

// LineupSlotPick is one slot of a computed optimal lineup.
type LineupSlotPick struct {
	Slot            string          `json:"slot"`
	PlayerID        string          `json:"player_id"`
	PlayerName      string          `json:"player_name"`
	Position        player.Position `json:"position"`
	ProjectedPoints float64         `json:"projected_points"`
	IsStarting      bool            `json:"is_starting"`
}

// OptimalLineup is the best projected lineup a team could start.
type OptimalLineup struct {
	FantasyTeamID  string           `json:"fantasy_team_id"`
	TeamName       string           `json:"team_name"`
	Week           int              `json:"week"`
	Slots          []LineupSlotPick `json:"slots"`
	ProjectedTotal float64          `json:"projected_total"`
}

// AnalyticsService computes league-wide derived views.
type AnalyticsService struct {
	teamRepo       fantasyteam.Repository
	matchupRepo    matchup.Repository
	playerRepo     player.Repository
	rosterRepo     roster.Repository
	projectionRepo projection.Repository
	cache          *cache.Store
}

func NewAnalyticsService(
	teamRepo fantasyteam.Repository,
	matchupRepo matchup.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	projectionRepo projection.Repository,
	cacheStore *cache.Store,
) *AnalyticsService {
	return &AnalyticsService{
		teamRepo:       teamRepo,
		matchupRepo:    matchupRepo,
		playerRepo:     playerRepo,
		rosterRepo:     rosterRepo,
		projectionRepo: projectionRepo,
		cache:          cacheStore,
	}
}

// League summarizes scoring across all completed matchups.
func (s *AnalyticsService) League(ctx context.Context) (LeagueAnalytics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.League")
	defer span.End()

	if s.cache == nil {
		return s.buildLeague(ctx)
	}

	value, err := s.cache.GetOrLoad(ctx, "analytics:league", func(ctx context.Context) (any, error) {
		return s.buildLeague(ctx)
	})
	if err != nil {
		return LeagueAnalytics{}, err
	}

	return value.(LeagueAnalytics), nil
}

func (s *AnalyticsService) buildLeague(ctx context.Context) (LeagueAnalytics, error) {
	matchups, err := s.matchupRepo.List(ctx)
	if err != nil {
		return LeagueAnalytics{}, fmt.Errorf("list matchups: %w", err)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return LeagueAnalytics{}, fmt.Errorf("list fantasy teams: %w", err)
	}
	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.TeamName
	}

	players, err := s.playerRepo.List(ctx, "")
	if err != nil {
		return LeagueAnalytics{}, fmt.Errorf("list players: %w", err)
	}

	out := LeagueAnalytics{
		TotalTeams:           len(teams),
		PositionDistribution: map[player.Position]int{},
		TeamMetrics:          buildTeamMetrics(teams),
	}
	for _, p := range players {
		if !p.IsActive {
			continue
		}
		out.TotalActivePlayers++
		out.PositionDistribution[p.Position]++
	}
	for i := range out.TeamMetrics {
		metric := out.TeamMetrics[i]
		if out.HighestScoringTeam == nil || metric.PointsFor > out.HighestScoringTeam.PointsFor {
			high := metric
			out.HighestScoringTeam = &high
		}
		if out.LowestScoringTeam == nil || metric.PointsFor < out.LowestScoringTeam.PointsFor {
			low := metric
			out.LowestScoringTeam = &low
		}
	}

	for _, m := range matchups {
		if !m.IsComplete {
			continue
		}
		out.CompletedMatchups++
		out.TotalPoints += m.HomeScore + m.AwayScore

		for _, side := range []struct {
			teamID string
			score  float64
		}{
			{m.HomeTeamID, m.HomeScore},
			{m.AwayTeamID, m.AwayScore},
		} {
			extreme := ScoreExtreme{
				TeamID:   side.teamID,
				TeamName: names[side.teamID],
				Week:     m.Week,
				Score:    side.score,
			}
			if out.HighestScore == nil || side.score > out.HighestScore.Score {
				high := extreme
				out.HighestScore = &high
			}
			if out.LowestScore == nil || side.score < out.LowestScore.Score {
				low := extreme
				out.LowestScore = &low
			}
		}

		margin := m.HomeScore - m.AwayScore
		if margin < 0 {
			margin = -margin
		}
		extreme := MatchupExtreme{
			MatchupID:    m.ID,
			Week:         m.Week,
			HomeTeamName: names[m.HomeTeamID],
			AwayTeamName: names[m.AwayTeamID],
			HomeScore:    m.HomeScore,
			AwayScore:    m.AwayScore,
			Margin:       margin,
		}
		if out.ClosestMatchup == nil || margin < out.ClosestMatchup.Margin {
			closest := extreme
			out.ClosestMatchup = &closest
		}
		if out.BiggestBlowout == nil || margin > out.BiggestBlowout.Margin {
			blowout := extreme
			out.BiggestBlowout = &blowout
		}
	}

	if out.CompletedMatchups > 0 {
		out.AverageScore = out.TotalPoints / float64(out.CompletedMatchups*2)
	}

	return out, nil
}

func buildTeamMetrics(teams []fantasyteam.FantasyTeam) []TeamMetric {
	out := make([]TeamMetric, 0, len(teams))
	for _, t := range teams {
		metric := TeamMetric{
			TeamID:        t.ID,
			TeamName:      t.TeamName,
			PointsFor:     t.PointsFor,
			PointsAgainst: t.PointsAgainst,
			WinPercentage: t.WinPercentage(),
		}
		if played := t.GamesPlayed(); played > 0 {
			metric.AveragePoints = t.PointsFor / float64(played)
		}
		out = append(out, metric)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PointsFor > out[j].PointsFor
	})
	return out
}

// Positional reports how scarce each position pool is based on the
// share already rostered.
func (s *AnalyticsService) Positional(ctx context.Context) ([]PositionScarcity, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Positional")
	defer span.End()

	players, err := s.playerRepo.List(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		return []PositionScarcity{}, nil
	}

	playerIDs := make([]string, 0, len(players))
	for _, p := range players {
		playerIDs = append(playerIDs, p.ID)
	}
	rostered, err := s.rosterRepo.TeamIDsForPlayers(ctx, playerIDs)
	if err != nil {
		return nil, fmt.Errorf("resolve rostered players: %w", err)
	}

	totals := make(map[player.Position]int)
	taken := make(map[player.Position]int)
	for _, p := range players {
		totals[p.Position]++
		if _, ok := rostered[p.ID]; ok {
			taken[p.Position]++
		}
	}

	out := make([]PositionScarcity, 0, len(totals))
	for position, total := range totals {
		share := float64(taken[position]) / float64(total)
		out = append(out, PositionScarcity{
			Position:      position,
			TotalPlayers:  total,
			Rostered:      taken[position],
			RosteredShare: share,
			Scarcity:      scarcityLabel(share),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].RosteredShare != out[j].RosteredShare {
			return out[i].RosteredShare > out[j].RosteredShare
		}
		return out[i].Position < out[j].Position
	})

	return out, nil
}

// OptimalLineups computes, for every team, the highest projected lineup
// it could field in the given week.
func (s *AnalyticsService) OptimalLineups(ctx context.Context, week int) ([]OptimalLineup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.OptimalLineups")
	defer span.End()

	if week < 1 || week > 21 {
		return nil, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, week)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
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

	out := make([]OptimalLineup, 0, len(teams))
	for _, team := range teams {
		entries, err := s.rosterRepo.ListByTeam(ctx, team.ID)
		if err != nil {
			return nil, fmt.Errorf("list roster for %s: %w", team.ID, err)
		}

		lineup, err := s.buildOptimal(ctx, team, week, entries, projected)
		if err != nil {
			return nil, err
		}
		out = append(out, lineup)
	}

	return out, nil
}

func (s *AnalyticsService) buildOptimal(
	ctx context.Context,
	team fantasyteam.FantasyTeam,
	week int,
	entries []roster.Entry,
	projected map[string]float64,
) (OptimalLineup, error) {
	lineup := OptimalLineup{
		FantasyTeamID: team.ID,
		TeamName:      team.TeamName,
		Week:          week,
		Slots:         []LineupSlotPick{},
	}
	if len(entries) == 0 {
		return lineup, nil
	}

	playerIDs := make([]string, 0, len(entries))
	starting := make(map[string]bool, len(entries))
	for _, e := range entries {
		playerIDs = append(playerIDs, e.PlayerID)
		starting[e.PlayerID] = e.IsStarting
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return OptimalLineup{}, fmt.Errorf("load roster players for %s: %w", team.ID, err)
	}

	// Greedy fill: slots are ordered dedicated positions first, so FLEX
	// only sees what the fixed slots left behind.
	sort.SliceStable(players, func(i, j int) bool {
		return projected[players[i].ID] > projected[players[j].ID]
	})

	used := make(map[string]bool, len(players))
	for _, slot := range lineupSlots {
		for _, p := range players {
			if used[p.ID] || !slotAccepts(slot, p.Position) {
				continue
			}
			used[p.ID] = true
			points := projected[p.ID]
			lineup.Slots = append(lineup.Slots, LineupSlotPick{
				Slot:            slot.Name,
				PlayerID:        p.ID,
				PlayerName:      p.Name,
				Position:        p.Position,
				ProjectedPoints: points,
				IsStarting:      starting[p.ID],
			})
			lineup.ProjectedTotal += points
			break
		}
	}

	return lineup, nil
}

func slotAccepts(slot lineupSlot, position player.Position) bool {
	for _, eligible := range slot.Eligible {
		if eligible == position {
			return true
		}
	}
	return false
}

func scarcityLabel(share float64) string {
	switch {
	case share > scarcityHighThreshold:
		return "High"
	case share > scarcityMediumThreshold:
		return "Medium"
	default:
		return "Low"
	}
}
