package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/id"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
)

// SyncConfig controls league ingestion behaviour.
type SyncConfig struct {
	Enabled    bool
	SeasonYear int
	MaxWorkers int
}

// SyncResult reports what one full league sync wrote.
type SyncResult struct {
	LeagueName   string `json:"league_name"`
	SeasonYear   int    `json:"season_year"`
	TeamCount    int    `json:"team_count"`
	PlayerCount  int    `json:"player_count"`
	RosterCount  int    `json:"roster_count"`
	MatchupCount int    `json:"matchup_count"`
	WeeksFetched int    `json:"weeks_fetched"`
	DurationMs   int64  `json:"duration_ms"`
}

// SyncService replaces the league snapshot with fresh provider data.
type SyncService struct {
	cfg             SyncConfig
	provider        LeagueProvider
	leagueRepo      league.Repository
	teamRepo        fantasyteam.Repository
	weeklyScoreRepo fantasyteam.WeeklyScoreRepository
	playerRepo      player.Repository
	rosterRepo      roster.Repository
	matchupRepo     matchup.Repository
	nflTeamIDs      func(ctx context.Context) (map[string]string, error)
	ids             id.Generator
	logger          *logging.Logger
}

func NewSyncService(
	cfg SyncConfig,
	provider LeagueProvider,
	leagueRepo league.Repository,
	teamRepo fantasyteam.Repository,
	weeklyScoreRepo fantasyteam.WeeklyScoreRepository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	matchupRepo matchup.Repository,
	nflTeamIDs func(ctx context.Context) (map[string]string, error),
	ids id.Generator,
	logger *logging.Logger,
) *SyncService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.MaxWorkers < 1 {
		cfg.MaxWorkers = 4
	}
	return &SyncService{
		cfg:             cfg,
		provider:        provider,
		leagueRepo:      leagueRepo,
		teamRepo:        teamRepo,
		weeklyScoreRepo: weeklyScoreRepo,
		playerRepo:      playerRepo,
		rosterRepo:      rosterRepo,
		matchupRepo:     matchupRepo,
		nflTeamIDs:      nflTeamIDs,
		ids:             ids,
		logger:          logger,
	}
}

// SyncLeague pulls the full league snapshot and replaces stored data in
// dependency order: config, teams, players, rosters, matchups, scores.
func (s *SyncService) SyncLeague(ctx context.Context) (SyncResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SyncService.SyncLeague")
	defer span.End()

	// Access is verified before any table is replaced.
	if err := s.ValidateAccess(ctx); err != nil {
		return SyncResult{}, err
	}

	start := time.Now()

	bundle, err := s.provider.FetchLeague(ctx)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch league bundle: %w", err)
	}
	if len(bundle.Teams) == 0 {
		return SyncResult{}, fmt.Errorf("%w: provider returned no fantasy teams", ErrDependencyUnavailable)
	}

	externalMatchups, weeksFetched, err := s.fetchMatchups(ctx, bundle.Settings.CurrentWeek)
	if err != nil {
		return SyncResult{}, err
	}

	cfgRow, err := s.buildLeagueConfig(bundle.Settings)
	if err != nil {
		return SyncResult{}, err
	}

	teams, teamIDByPlatform, err := s.buildTeams(bundle.Teams)
	if err != nil {
		return SyncResult{}, err
	}

	players, playerIDByPlatform, err := s.buildPlayers(ctx, bundle.Players)
	if err != nil {
		return SyncResult{}, err
	}

	entries, err := s.buildRoster(bundle.Roster, teamIDByPlatform, playerIDByPlatform)
	if err != nil {
		return SyncResult{}, err
	}

	matchups, err := s.buildMatchups(externalMatchups, teamIDByPlatform)
	if err != nil {
		return SyncResult{}, err
	}

	scores, err := s.buildWeeklyScores(matchups)
	if err != nil {
		return SyncResult{}, err
	}

	if err := s.leagueRepo.Replace(ctx, cfgRow); err != nil {
		return SyncResult{}, fmt.Errorf("replace league config: %w", err)
	}
	if err := s.teamRepo.ReplaceAll(ctx, teams); err != nil {
		return SyncResult{}, fmt.Errorf("replace fantasy teams: %w", err)
	}
	if err := s.playerRepo.ReplaceAll(ctx, players); err != nil {
		return SyncResult{}, fmt.Errorf("replace players: %w", err)
	}
	if err := s.rosterRepo.ReplaceAll(ctx, entries); err != nil {
		return SyncResult{}, fmt.Errorf("replace roster entries: %w", err)
	}
	if err := s.matchupRepo.ReplaceAll(ctx, matchups); err != nil {
		return SyncResult{}, fmt.Errorf("replace matchups: %w", err)
	}
	if err := s.weeklyScoreRepo.ReplaceAll(ctx, scores); err != nil {
		return SyncResult{}, fmt.Errorf("replace weekly scores: %w", err)
	}

	result := SyncResult{
		LeagueName:   cfgRow.LeagueName,
		SeasonYear:   cfgRow.SeasonYear,
		TeamCount:    len(teams),
		PlayerCount:  len(players),
		RosterCount:  len(entries),
		MatchupCount: len(matchups),
		WeeksFetched: weeksFetched,
		DurationMs:   time.Since(start).Milliseconds(),
	}

	s.logger.InfoContext(ctx, "league sync complete",
		"league", result.LeagueName,
		"teams", result.TeamCount,
		"players", result.PlayerCount,
		"matchups", result.MatchupCount,
		"duration_ms", result.DurationMs,
	)

	return result, nil
}

// EnsureSynced runs a full sync when the database holds no fantasy teams
// yet. Used at startup so a fresh install comes up populated.
func (s *SyncService) EnsureSynced(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	count, err := s.teamRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count fantasy teams: %w", err)
	}
	if count > 0 {
		return nil
	}

	s.logger.InfoContext(ctx, "no fantasy teams found, running bootstrap sync")
	if _, err := s.SyncLeague(ctx); err != nil {
		return err
	}

	return nil
}

// ValidateAccess probes the provider before a destructive replace.
func (s *SyncService) ValidateAccess(ctx context.Context) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("%w: league sync is disabled", ErrDependencyUnavailable)
	}
	if s.provider == nil {
		return fmt.Errorf("%w: league provider is not configured", ErrDependencyUnavailable)
	}
	if err := s.provider.ValidateAccess(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrDependencyUnavailable, err)
	}
	return nil
}

func (s *SyncService) fetchMatchups(ctx context.Context, currentWeek int) ([]ExternalMatchup, int, error) {
	if currentWeek < 1 {
		return nil, 0, nil
	}
	if currentWeek > 21 {
		currentWeek = 21
	}

	workerCount := s.cfg.MaxWorkers
	if workerCount > currentWeek {
		workerCount = currentWeek
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, 0, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	type weekResult struct {
		week     int
		matchups []ExternalMatchup
		err      error
	}

	results := make(chan weekResult, currentWeek)

	var workers sync.WaitGroup
	for week := 1; week <= currentWeek; week++ {
		week := week
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			items, err := s.provider.FetchMatchupsByWeek(ctx, week)
			results <- weekResult{week: week, matchups: items, err: err}
		}); err != nil {
			workers.Done()
			return nil, 0, fmt.Errorf("submit week %d to worker pool: %w", week, err)
		}
	}

	workers.Wait()
	close(results)

	byWeek := make(map[int][]ExternalMatchup, currentWeek)
	for row := range results {
		if row.err != nil {
			// One bad scoreboard week should not abort the whole sync.
			s.logger.WarnContext(ctx, "skipping scoreboard week",
				"week", row.week,
				"error", row.err,
			)
			continue
		}
		byWeek[row.week] = row.matchups
	}

	weeks := make([]int, 0, len(byWeek))
	for week := range byWeek {
		weeks = append(weeks, week)
	}
	sort.Ints(weeks)

	out := make([]ExternalMatchup, 0, len(byWeek)*8)
	for _, week := range weeks {
		out = append(out, byWeek[week]...)
	}

	return out, len(weeks), nil
}

func (s *SyncService) buildLeagueConfig(settings ExternalLeagueSettings) (league.Config, error) {
	configID, err := s.ids.NewID()
	if err != nil {
		return league.Config{}, fmt.Errorf("generate league config id: %w", err)
	}

	seasonYear := settings.SeasonYear
	if seasonYear == 0 {
		seasonYear = s.cfg.SeasonYear
	}

	cfg := league.Config{
		ID:               configID,
		LeagueName:       settings.Name,
		Platform:         league.PlatformESPN,
		PlatformLeagueID: settings.PlatformLeagueID,
		SeasonYear:       seasonYear,
		ScoringType:      settings.ScoringType,
		TeamCount:        settings.TeamCount,
		PlayoffTeams:     settings.PlayoffTeams,
		IsActive:         true,
	}
	if cfg.LeagueName == "" {
		cfg.LeagueName = fmt.Sprintf("ESPN League %d", seasonYear)
	}
	if err := cfg.Validate(); err != nil {
		return league.Config{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return cfg, nil
}

func (s *SyncService) buildTeams(items []ExternalTeam) ([]fantasyteam.FantasyTeam, map[string]string, error) {
	teams := make([]fantasyteam.FantasyTeam, 0, len(items))
	idByPlatform := make(map[string]string, len(items))

	for _, item := range items {
		teamID, err := s.ids.NewID()
		if err != nil {
			return nil, nil, fmt.Errorf("generate fantasy team id: %w", err)
		}

		platformID := item.PlatformTeamID
		team := fantasyteam.FantasyTeam{
			ID:             teamID,
			OwnerName:      item.OwnerName,
			TeamName:       item.TeamName,
			PlatformTeamID: &platformID,
			Wins:           item.Wins,
			Losses:         item.Losses,
			Ties:           item.Ties,
			PointsFor:      item.PointsFor,
			PointsAgainst:  item.PointsAgainst,
		}
		if team.OwnerName == "" {
			team.OwnerName = "Unknown Owner"
		}
		if err := team.Validate(); err != nil {
			return nil, nil, fmt.Errorf("%w: team %s: %v", ErrInvalidInput, item.PlatformTeamID, err)
		}

		teams = append(teams, team)
		idByPlatform[item.PlatformTeamID] = teamID
	}

	return teams, idByPlatform, nil
}

func (s *SyncService) buildPlayers(ctx context.Context, items []ExternalPlayer) ([]player.Player, map[string]string, error) {
	nflIDs, err := s.nflTeamIDs(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load nfl team ids: %w", err)
	}

	players := make([]player.Player, 0, len(items))
	idByPlatform := make(map[string]string, len(items))

	for _, item := range items {
		// Rosters and free agents can both carry the same athlete.
		if _, seen := idByPlatform[item.PlatformPlayerID]; seen {
			continue
		}

		playerID, err := s.ids.NewID()
		if err != nil {
			return nil, nil, fmt.Errorf("generate player id: %w", err)
		}

		platformID := item.PlatformPlayerID
		p := player.Player{
			ID:              playerID,
			Name:            item.Name,
			Position:        item.Position,
			ESPNID:          &platformID,
			JerseyNumber:    item.JerseyNumber,
			HeightInches:    item.HeightInches,
			WeightPounds:    item.WeightPounds,
			Age:             item.Age,
			YearsExperience: item.YearsExperience,
			College:         item.College,
			IsActive:        item.IsActive,
			IsInjured:       item.IsInjured,
			InjuryStatus:    item.InjuryStatus,
		}
		if nflID, ok := nflIDs[item.NFLTeamCode]; ok {
			teamID := nflID
			p.NFLTeamID = &teamID
		}
		if err := p.Validate(); err != nil {
			s.logger.WarnContext(ctx, "skipping invalid player",
				"espn_id", item.PlatformPlayerID,
				"error", err,
			)
			continue
		}

		players = append(players, p)
		idByPlatform[item.PlatformPlayerID] = playerID
	}

	return players, idByPlatform, nil
}

func (s *SyncService) buildRoster(slots []ExternalRosterSlot, teamIDs, playerIDs map[string]string) ([]roster.Entry, error) {
	entries := make([]roster.Entry, 0, len(slots))
	now := time.Now().UTC()

	for _, slot := range slots {
		teamID, ok := teamIDs[slot.PlatformTeamID]
		if !ok {
			continue
		}
		playerID, ok := playerIDs[slot.PlatformPlayerID]
		if !ok {
			continue
		}

		entryID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate roster entry id: %w", err)
		}

		acquisition := slot.Acquisition
		if _, ok := roster.AllAcquisitionTypes[acquisition]; !ok {
			acquisition = roster.AcquisitionFreeAgent
		}

		entries = append(entries, roster.Entry{
			ID:            entryID,
			FantasyTeamID: teamID,
			PlayerID:      playerID,
			IsStarting:    slot.IsStarting,
			Acquisition:   acquisition,
			AcquiredAt:    now,
		})
	}

	return entries, nil
}

func (s *SyncService) buildMatchups(items []ExternalMatchup, teamIDs map[string]string) ([]matchup.Matchup, error) {
	matchups := make([]matchup.Matchup, 0, len(items))

	for _, item := range items {
		homeID, ok := teamIDs[item.HomeTeamID]
		if !ok {
			continue
		}
		awayID, ok := teamIDs[item.AwayTeamID]
		if !ok {
			continue
		}

		matchupID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate matchup id: %w", err)
		}

		m := matchup.Matchup{
			ID:             matchupID,
			Week:           item.Week,
			HomeTeamID:     homeID,
			AwayTeamID:     awayID,
			HomeScore:      item.HomeScore,
			AwayScore:      item.AwayScore,
			IsComplete:     item.IsComplete,
			IsPlayoff:      item.IsPlayoff,
			IsChampionship: item.IsChampionship,
		}
		if winner := m.Winner(); winner != "" {
			m.WinnerTeamID = &winner
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: matchup week %d: %v", ErrInvalidInput, item.Week, err)
		}

		matchups = append(matchups, m)
	}

	return matchups, nil
}

func (s *SyncService) buildWeeklyScores(matchups []matchup.Matchup) ([]fantasyteam.WeeklyScore, error) {
	scores := make([]fantasyteam.WeeklyScore, 0, len(matchups)*2)

	for _, m := range matchups {
		if !m.IsComplete {
			continue
		}

		for _, side := range []struct {
			teamID string
			score  float64
		}{
			{m.HomeTeamID, m.HomeScore},
			{m.AwayTeamID, m.AwayScore},
		} {
			scoreID, err := s.ids.NewID()
			if err != nil {
				return nil, fmt.Errorf("generate weekly score id: %w", err)
			}
			scores = append(scores, fantasyteam.WeeklyScore{
				ID:            scoreID,
				FantasyTeamID: side.teamID,
				Week:          m.Week,
				TotalScore:    side.score,
			})
		}
	}

	return scores, nil
}
