package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
)

// MatchupView is a matchup joined with both team names.
type MatchupView struct {
	Matchup      matchup.Matchup `json:"matchup"`
	HomeTeamName string          `json:"home_team_name"`
	AwayTeamName string          `json:"away_team_name"`
}

// WeekMatchups groups one week's pairings.
type WeekMatchups struct {
	Week     int           `json:"week"`
	Matchups []MatchupView `json:"matchups"`
}

// MatchupDetails is one matchup with both sides' rosters.
type MatchupDetails struct {
	Matchup    matchup.Matchup `json:"matchup"`
	HomeTeam   TeamRoster      `json:"home_team"`
	AwayTeam   TeamRoster      `json:"away_team"`
	HomeRecord string          `json:"home_record"`
	AwayRecord string          `json:"away_record"`
}

// MatchupService serves head-to-head views.
type MatchupService struct {
	matchupRepo matchup.Repository
	teamRepo    fantasyteam.Repository
	teamService *TeamService
}

func NewMatchupService(matchupRepo matchup.Repository, teamRepo fantasyteam.Repository, teamService *TeamService) *MatchupService {
	return &MatchupService{
		matchupRepo: matchupRepo,
		teamRepo:    teamRepo,
		teamService: teamService,
	}
}

// ListGroupedByWeek returns the full season schedule keyed by week.
func (s *MatchupService) ListGroupedByWeek(ctx context.Context) ([]WeekMatchups, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.ListGroupedByWeek")
	defer span.End()

	matchups, err := s.matchupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchups: %w", err)
	}

	names, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}

	byWeek := make(map[int][]MatchupView)
	for _, m := range matchups {
		byWeek[m.Week] = append(byWeek[m.Week], matchupView(m, names))
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	out := make([]WeekMatchups, 0, len(weeks))
	for _, week := range weeks {
		out = append(out, WeekMatchups{Week: week, Matchups: byWeek[week]})
	}

	return out, nil
}

func (s *MatchupService) ListByWeek(ctx context.Context, week int) ([]MatchupView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.ListByWeek")
	defer span.End()

	if week < 1 || week > 21 {
		return nil, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, week)
	}

	matchups, err := s.matchupRepo.ListByWeek(ctx, week)
	if err != nil {
		return nil, fmt.Errorf("list matchups for week %d: %w", week, err)
	}

	names, err := s.teamNames(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]MatchupView, 0, len(matchups))
	for _, m := range matchups {
		out = append(out, matchupView(m, names))
	}

	return out, nil
}

// GetDetails loads one matchup with both teams' full rosters.
func (s *MatchupService) GetDetails(ctx context.Context, matchupID string) (MatchupDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.GetDetails")
	defer span.End()

	matchupID = strings.TrimSpace(matchupID)
	if matchupID == "" {
		return MatchupDetails{}, fmt.Errorf("%w: matchup id is required", ErrInvalidInput)
	}

	m, found, err := s.matchupRepo.GetByID(ctx, matchupID)
	if err != nil {
		return MatchupDetails{}, fmt.Errorf("get matchup: %w", err)
	}
	if !found {
		return MatchupDetails{}, fmt.Errorf("%w: matchup=%s", ErrNotFound, matchupID)
	}

	homeTeam, err := s.teamService.GetByID(ctx, m.HomeTeamID)
	if err != nil {
		return MatchupDetails{}, err
	}
	awayTeam, err := s.teamService.GetByID(ctx, m.AwayTeamID)
	if err != nil {
		return MatchupDetails{}, err
	}

	homeRoster, err := s.teamService.Roster(ctx, m.HomeTeamID)
	if err != nil {
		return MatchupDetails{}, err
	}
	awayRoster, err := s.teamService.Roster(ctx, m.AwayTeamID)
	if err != nil {
		return MatchupDetails{}, err
	}

	return MatchupDetails{
		Matchup:    m,
		HomeTeam:   homeRoster,
		AwayTeam:   awayRoster,
		HomeRecord: fmt.Sprintf("%d-%d-%d", homeTeam.Wins, homeTeam.Losses, homeTeam.Ties),
		AwayRecord: fmt.Sprintf("%d-%d-%d", awayTeam.Wins, awayTeam.Losses, awayTeam.Ties),
	}, nil
}

func (s *MatchupService) teamNames(ctx context.Context) (map[string]string, error) {
	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list fantasy teams: %w", err)
	}

	names := make(map[string]string, len(teams))
	for _, t := range teams {
		names[t.ID] = t.TeamName
	}

	return names, nil
}

func matchupView(m matchup.Matchup, names map[string]string) MatchupView {
	return MatchupView{
		Matchup:      m,
		HomeTeamName: names[m.HomeTeamID],
		AwayTeamName: names[m.AwayTeamID],
	}
}
