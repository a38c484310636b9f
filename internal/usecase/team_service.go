package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/cache"
)

// TeamStanding is one row of the league table with derived metrics.
type TeamStanding struct {
	Rank                 int     `json:"rank"`
	TeamID               string  `json:"team_id"`
	TeamName             string  `json:"team_name"`
	OwnerName            string  `json:"owner_name"`
	Wins                 int     `json:"wins"`
	Losses               int     `json:"losses"`
	Ties                 int     `json:"ties"`
	WinPercentage        float64 `json:"win_percentage"`
	PointsFor            float64 `json:"points_for"`
	PointsAgainst        float64 `json:"points_against"`
	AveragePointsFor     float64 `json:"average_points_for"`
	AveragePointsAgainst float64 `json:"average_points_against"`
	PointDifferential    float64 `json:"point_differential"`
}

// RosterPlayer is a roster slot joined with its player.
type RosterPlayer struct {
	Player      player.Player          `json:"player"`
	IsStarting  bool                   `json:"is_starting"`
	Acquisition roster.AcquisitionType `json:"acquisition_type"`
}

// TeamRoster splits a roster into lineup and bench.
type TeamRoster struct {
	TeamID         string         `json:"team_id"`
	TeamName       string         `json:"team_name"`
	Starting       []RosterPlayer `json:"starting"`
	Bench          []RosterPlayer `json:"bench"`
	PositionCounts map[string]int `json:"position_counts"`
}

// TeamWithRoster pairs a franchise with its current roster.
type TeamWithRoster struct {
	Team   fantasyteam.FantasyTeam `json:"team"`
	Roster TeamRoster              `json:"roster"`
}

// ScheduleEntry is one week of a team's season schedule.
type ScheduleEntry struct {
	Week          int     `json:"week"`
	OpponentID    string  `json:"opponent_id"`
	OpponentName  string  `json:"opponent_name"`
	TeamScore     float64 `json:"team_score"`
	OpponentScore float64 `json:"opponent_score"`
	IsComplete    bool    `json:"is_complete"`
	Result        string  `json:"result,omitempty"`
	IsPlayoff     bool    `json:"is_playoff"`
}

// TeamStats is a team's season scoring summary.
type TeamStats struct {
	TeamID        string                    `json:"team_id"`
	TeamName      string                    `json:"team_name"`
	Record        string                    `json:"record"`
	PointsFor     float64                   `json:"points_for"`
	PointsAgainst float64                   `json:"points_against"`
	AveragePoints float64                   `json:"average_points"`
	WeeklyScores  []fantasyteam.WeeklyScore `json:"weekly_scores"`
	HighestWeek   *fantasyteam.WeeklyScore  `json:"highest_week,omitempty"`
	LowestWeek    *fantasyteam.WeeklyScore  `json:"lowest_week,omitempty"`
}

// TeamService serves fantasy team views.
type TeamService struct {
	teamRepo        fantasyteam.Repository
	weeklyScoreRepo fantasyteam.WeeklyScoreRepository
	rosterRepo      roster.Repository
	playerRepo      player.Repository
	matchupRepo     matchup.Repository
	cache           *cache.Store
}

func NewTeamService(
	teamRepo fantasyteam.Repository,
	weeklyScoreRepo fantasyteam.WeeklyScoreRepository,
	rosterRepo roster.Repository,
	playerRepo player.Repository,
	matchupRepo matchup.Repository,
	store *cache.Store,
) *TeamService {
	return &TeamService{
		teamRepo:        teamRepo,
		weeklyScoreRepo: weeklyScoreRepo,
		rosterRepo:      rosterRepo,
		playerRepo:      playerRepo,
		matchupRepo:     matchupRepo,
		cache:           store,
	}
}

func (s *TeamService) List(ctx context.Context) ([]fantasyteam.FantasyTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}

	return teams, nil
}

func (s *TeamService) GetByID(ctx context.Context, teamID string) (fantasyteam.FantasyTeam, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetByID")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fantasyteam.FantasyTeam{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	team, found, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fantasyteam.FantasyTeam{}, fmt.Errorf("get fantasy team: %w", err)
	}
	if !found {
		return fantasyteam.FantasyTeam{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return team, nil
}

// Standings ranks teams by wins, breaking ties on points scored.
func (s *TeamService) Standings(ctx context.Context) ([]TeamStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Standings")
	defer span.End()

	load := func(ctx context.Context) (any, error) {
		teams, err := s.teamRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list fantasy teams: %w", err)
		}
		return buildStandings(teams), nil
	}

	if s.cache == nil {
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return value.([]TeamStanding), nil
	}

	value, err := s.cache.GetOrLoad(ctx, "teams:standings", load)
	if err != nil {
		return nil, err
	}

	return value.([]TeamStanding), nil
}

func (s *TeamService) Roster(ctx context.Context, teamID string) (TeamRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Roster")
	defer span.End()

	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return TeamRoster{}, err
	}

	return s.rosterForTeam(ctx, team)
}

// AllRosters returns every franchise with its full roster in one view,
// ordered by season points scored.
func (s *TeamService) AllRosters(ctx context.Context) ([]TeamWithRoster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.AllRosters")
	defer span.End()

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}
	sorted := append([]fantasyteam.FantasyTeam(nil), teams...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PointsFor > sorted[j].PointsFor
	})

	out := make([]TeamWithRoster, 0, len(sorted))
	for _, team := range sorted {
		teamRoster, err := s.rosterForTeam(ctx, team)
		if err != nil {
			return nil, err
		}
		out = append(out, TeamWithRoster{Team: team, Roster: teamRoster})
	}

	return out, nil
}

func (s *TeamService) rosterForTeam(ctx context.Context, team fantasyteam.FantasyTeam) (TeamRoster, error) {
	entries, err := s.rosterRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("list roster entries: %w", err)
	}

	playerIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		playerIDs = append(playerIDs, e.PlayerID)
	}

	players, err := s.playerRepo.GetByIDs(ctx, playerIDs)
	if err != nil {
		return TeamRoster{}, fmt.Errorf("load roster players: %w", err)
	}
	playersByID := make(map[string]player.Player, len(players))
	for _, p := range players {
		playersByID[p.ID] = p
	}

	out := TeamRoster{
		TeamID:         team.ID,
		TeamName:       team.TeamName,
		Starting:       []RosterPlayer{},
		Bench:          []RosterPlayer{},
		PositionCounts: map[string]int{},
	}
	for _, e := range entries {
		p, ok := playersByID[e.PlayerID]
		if !ok {
			continue
		}
		slot := RosterPlayer{
			Player:      p,
			IsStarting:  e.IsStarting,
			Acquisition: e.Acquisition,
		}
		if e.IsStarting {
			out.Starting = append(out.Starting, slot)
		} else {
			out.Bench = append(out.Bench, slot)
		}
		out.PositionCounts[string(p.Position)]++
	}

	return out, nil
}

func (s *TeamService) Schedule(ctx context.Context, teamID string) ([]ScheduleEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Schedule")
	defer span.End()

	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	matchups, err := s.matchupRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("list team matchups: %w", err)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}
	namesByID := make(map[string]string, len(teams))
	for _, t := range teams {
		namesByID[t.ID] = t.TeamName
	}

	out := make([]ScheduleEntry, 0, len(matchups))
	for _, m := range matchups {
		entry := ScheduleEntry{
			Week:       m.Week,
			IsComplete: m.IsComplete,
			IsPlayoff:  m.IsPlayoff,
		}
		if m.HomeTeamID == team.ID {
			entry.OpponentID = m.AwayTeamID
			entry.TeamScore = m.HomeScore
			entry.OpponentScore = m.AwayScore
		} else {
			entry.OpponentID = m.HomeTeamID
			entry.TeamScore = m.AwayScore
			entry.OpponentScore = m.HomeScore
		}
		entry.OpponentName = namesByID[entry.OpponentID]
		if m.IsComplete {
			switch {
			case entry.TeamScore > entry.OpponentScore:
				entry.Result = "W"
			case entry.TeamScore < entry.OpponentScore:
				entry.Result = "L"
			default:
				entry.Result = "T"
			}
		}
		out = append(out, entry)
	}

	return out, nil
}

func (s *TeamService) Stats(ctx context.Context, teamID string) (TeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Stats")
	defer span.End()

	team, err := s.GetByID(ctx, teamID)
	if err != nil {
		return TeamStats{}, err
	}

	scores, err := s.weeklyScoreRepo.ListByTeam(ctx, team.ID)
	if err != nil {
		return TeamStats{}, fmt.Errorf("list weekly scores: %w", err)
	}

	out := TeamStats{
		TeamID:        team.ID,
		TeamName:      team.TeamName,
		Record:        fmt.Sprintf("%d-%d-%d", team.Wins, team.Losses, team.Ties),
		PointsFor:     team.PointsFor,
		PointsAgainst: team.PointsAgainst,
		WeeklyScores:  scores,
	}
	if played := team.GamesPlayed(); played > 0 {
		out.AveragePoints = team.PointsFor / float64(played)
	}

	for i := range scores {
		score := scores[i]
		if out.HighestWeek == nil || score.TotalScore > out.HighestWeek.TotalScore {
			high := score
			out.HighestWeek = &high
		}
		if out.LowestWeek == nil || score.TotalScore < out.LowestWeek.TotalScore {
			low := score
			out.LowestWeek = &low
		}
	}

	return out, nil
}

func buildStandings(teams []fantasyteam.FantasyTeam) []TeamStanding {
	sorted := append([]fantasyteam.FantasyTeam(nil), teams...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Wins != sorted[j].Wins {
			return sorted[i].Wins > sorted[j].Wins
		}
		return sorted[i].PointsFor > sorted[j].PointsFor
	})

	out := make([]TeamStanding, 0, len(sorted))
	for i, t := range sorted {
		row := TeamStanding{
			Rank:              i + 1,
			TeamID:            t.ID,
			TeamName:          t.TeamName,
			OwnerName:         t.OwnerName,
			Wins:              t.Wins,
			Losses:            t.Losses,
			Ties:              t.Ties,
			WinPercentage:     t.WinPercentage(),
			PointsFor:         t.PointsFor,
			PointsAgainst:     t.PointsAgainst,
			PointDifferential: t.PointsFor - t.PointsAgainst,
		}
		if played := t.GamesPlayed(); played > 0 {
			row.AveragePointsFor = t.PointsFor / float64(played)
			row.AveragePointsAgainst = t.PointsAgainst / float64(played)
		}
		out = append(out, row)
	}

	return out
}
