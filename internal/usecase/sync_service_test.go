package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
)

type syncFixture struct {
	svc        *SyncService
	provider   *stubProvider
	leagueRepo *stubLeagueRepo
	teamRepo   *stubTeamRepo
	scoreRepo  *stubWeeklyScoreRepo
	playerRepo *stubPlayerRepo
	rosterRepo *stubRosterRepo
	matchRepo  *stubMatchupRepo
}

func newSyncFixture(cfg SyncConfig, provider *stubProvider) *syncFixture {
	f := &syncFixture{
		provider:   provider,
		leagueRepo: &stubLeagueRepo{},
		teamRepo:   &stubTeamRepo{},
		scoreRepo:  &stubWeeklyScoreRepo{},
		playerRepo: &stubPlayerRepo{availableIDs: map[string]bool{}},
		rosterRepo: &stubRosterRepo{},
		matchRepo:  &stubMatchupRepo{},
	}
	nflTeamIDs := func(ctx context.Context) (map[string]string, error) {
		return map[string]string{"KC": "nfl-kc", "SF": "nfl-sf"}, nil
	}
	var leagueProvider LeagueProvider
	if provider != nil {
		leagueProvider = provider
	}
	f.svc = NewSyncService(cfg, leagueProvider, f.leagueRepo, f.teamRepo, f.scoreRepo,
		f.playerRepo, f.rosterRepo, f.matchRepo, nflTeamIDs, newTestIDs(), logging.NewNop())
	return f
}

func syncTestBundle() ExternalLeagueBundle {
	return ExternalLeagueBundle{
		Settings: ExternalLeagueSettings{
			Name:             "The Gridiron Gang",
			PlatformLeagueID: "770123",
			SeasonYear:       2025,
			ScoringType:      league.ScoringPPR,
			TeamCount:        2,
			PlayoffTeams:     2,
			CurrentWeek:      2,
		},
		Teams: []ExternalTeam{
			{PlatformTeamID: "1", TeamName: "Home Heroes", OwnerName: "Alex", Wins: 1, PointsFor: 221, PointsAgainst: 197},
			{PlatformTeamID: "2", TeamName: "Road Warriors", Losses: 1, PointsFor: 197, PointsAgainst: 221},
		},
		Players: []ExternalPlayer{
			{PlatformPlayerID: "100", Name: "Star QB", Position: player.PositionQB, NFLTeamCode: "KC", Age: intPtr(29), YearsExperience: intPtr(8), College: "Texas Tech", IsActive: true},
			{PlatformPlayerID: "200", Name: "Star WR", Position: player.PositionWR, NFLTeamCode: "SF", IsActive: true},
			// Repeated athlete from the free agent feed.
			{PlatformPlayerID: "100", Name: "Star QB", Position: player.PositionQB, NFLTeamCode: "KC", IsActive: true},
			// Unmapped position, dropped with a warning.
			{PlatformPlayerID: "300", Name: "Long Snapper", Position: player.Position("LS")},
		},
		Roster: []ExternalRosterSlot{
			{PlatformTeamID: "1", PlatformPlayerID: "100", IsStarting: true, Acquisition: roster.AcquisitionDraft},
			{PlatformTeamID: "2", PlatformPlayerID: "200", IsStarting: true},
			// Unknown platform ids are skipped.
			{PlatformTeamID: "9", PlatformPlayerID: "100"},
			{PlatformTeamID: "1", PlatformPlayerID: "999"},
		},
	}
}

func TestSyncService_SyncLeague_Disabled(t *testing.T) {
	f := newSyncFixture(SyncConfig{Enabled: false}, &stubProvider{})

	if _, err := f.svc.SyncLeague(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSyncService_SyncLeague_NoProvider(t *testing.T) {
	f := newSyncFixture(SyncConfig{Enabled: true}, nil)

	if _, err := f.svc.SyncLeague(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}

func TestSyncService_SyncLeague_EmptyLeague(t *testing.T) {
	provider := &stubProvider{bundle: ExternalLeagueBundle{}}
	f := newSyncFixture(SyncConfig{Enabled: true, SeasonYear: 2025}, provider)

	if _, err := f.svc.SyncLeague(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable for empty league, got %v", err)
	}
}

func TestSyncService_SyncLeague_AccessDeniedAbortsBeforeFetch(t *testing.T) {
	provider := &stubProvider{
		bundle:    syncTestBundle(),
		accessErr: fmt.Errorf("espn_s2 cookie expired"),
	}
	f := newSyncFixture(SyncConfig{Enabled: true, SeasonYear: 2025}, provider)

	if _, err := f.svc.SyncLeague(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if provider.fetchCalls != 0 {
		t.Fatalf("denied access must not fetch, got %d fetches", provider.fetchCalls)
	}
	if _, found, _ := f.leagueRepo.GetActive(t.Context()); found {
		t.Fatalf("denied access must not touch stored data")
	}
}

func TestSyncService_SyncLeague_ReplacesSnapshot(t *testing.T) {
	provider := &stubProvider{
		bundle: syncTestBundle(),
		matchupsByWeek: map[int][]ExternalMatchup{
			1: {{Week: 1, HomeTeamID: "1", AwayTeamID: "2", HomeScore: 121, AwayScore: 97, IsComplete: true}},
			2: {{Week: 2, HomeTeamID: "2", AwayTeamID: "1", HomeScore: 100, AwayScore: 100}},
		},
	}
	f := newSyncFixture(SyncConfig{Enabled: true, SeasonYear: 2025, MaxWorkers: 2}, provider)

	result, err := f.svc.SyncLeague(t.Context())
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if result.LeagueName != "The Gridiron Gang" || result.SeasonYear != 2025 {
		t.Fatalf("unexpected result header: %+v", result)
	}
	if result.TeamCount != 2 || result.PlayerCount != 2 || result.RosterCount != 2 {
		t.Fatalf("unexpected result counts: %+v", result)
	}
	if result.MatchupCount != 2 || result.WeeksFetched != 2 {
		t.Fatalf("unexpected matchup counts: %+v", result)
	}

	cfg, found, err := f.leagueRepo.GetActive(t.Context())
	if err != nil || !found {
		t.Fatalf("league config not stored: found=%v err=%v", found, err)
	}
	if cfg.Platform != league.PlatformESPN || !cfg.IsActive {
		t.Fatalf("unexpected league config: %+v", cfg)
	}
	if cfg.PlatformLeagueID != "770123" {
		t.Fatalf("expected platform league id 770123, got=%q", cfg.PlatformLeagueID)
	}

	if len(f.teamRepo.teams) != 2 {
		t.Fatalf("expected 2 teams stored, got %d", len(f.teamRepo.teams))
	}

	// Duplicate platform id deduped, invalid position skipped.
	if len(f.playerRepo.players) != 2 {
		t.Fatalf("expected 2 players stored, got %d", len(f.playerRepo.players))
	}
	for _, p := range f.playerRepo.players {
		if p.NFLTeamID == nil {
			t.Fatalf("player %s missing nfl team mapping", p.Name)
		}
		if p.Name == "Star QB" {
			if p.Age == nil || *p.Age != 29 || p.YearsExperience == nil || *p.YearsExperience != 8 {
				t.Fatalf("player bio attributes not carried: %+v", p)
			}
			if p.College != "Texas Tech" {
				t.Fatalf("expected college Texas Tech, got=%q", p.College)
			}
		}
	}

	// Roster slots pointing at unknown teams or players are dropped.
	if len(f.rosterRepo.entries) != 2 {
		t.Fatalf("expected 2 roster entries, got %d", len(f.rosterRepo.entries))
	}
	for _, entry := range f.rosterRepo.entries {
		switch entry.FantasyTeamID {
		case f.teamRepo.teams[0].ID:
			if entry.Acquisition != roster.AcquisitionDraft {
				t.Fatalf("expected drafted entry, got=%s", entry.Acquisition)
			}
		default:
			// Entries without a provider acquisition default to free agent.
			if entry.Acquisition != roster.AcquisitionFreeAgent {
				t.Fatalf("expected free agent fallback, got=%s", entry.Acquisition)
			}
		}
	}

	if len(f.matchRepo.matchups) != 2 {
		t.Fatalf("expected 2 matchups stored, got %d", len(f.matchRepo.matchups))
	}
	week1 := f.matchRepo.matchups[0]
	if week1.Week != 1 || week1.WinnerTeamID == nil {
		t.Fatalf("completed matchup missing winner: %+v", week1)
	}

	// Only the completed week produces scoring lines, one per side.
	if len(f.scoreRepo.scores) != 2 {
		t.Fatalf("expected 2 weekly scores, got %d", len(f.scoreRepo.scores))
	}
}

func TestSyncService_SyncLeague_SkipsFailedWeeks(t *testing.T) {
	provider := &stubProvider{
		bundle: syncTestBundle(),
		matchupsByWeek: map[int][]ExternalMatchup{
			1: {{Week: 1, HomeTeamID: "1", AwayTeamID: "2", HomeScore: 110, AwayScore: 90, IsComplete: true}},
		},
		weekErrs: map[int]error{
			2: fmt.Errorf("scoreboard timeout"),
		},
	}
	f := newSyncFixture(SyncConfig{Enabled: true, SeasonYear: 2025}, provider)

	result, err := f.svc.SyncLeague(t.Context())
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	if result.WeeksFetched != 1 || result.MatchupCount != 1 {
		t.Fatalf("failed week should be skipped, got %+v", result)
	}
}

func TestSyncService_EnsureSynced(t *testing.T) {
	provider := &stubProvider{bundle: syncTestBundle()}
	f := newSyncFixture(SyncConfig{Enabled: true, SeasonYear: 2025}, provider)

	if err := f.svc.EnsureSynced(t.Context()); err != nil {
		t.Fatalf("bootstrap sync failed: %v", err)
	}
	if provider.fetchCalls != 1 {
		t.Fatalf("expected one fetch, got %d", provider.fetchCalls)
	}

	// A populated database must not trigger a second destructive replace.
	if err := f.svc.EnsureSynced(t.Context()); err != nil {
		t.Fatalf("ensure synced failed: %v", err)
	}
	if provider.fetchCalls != 1 {
		t.Fatalf("populated database should skip the sync, got %d fetches", provider.fetchCalls)
	}
}

func TestSyncService_EnsureSynced_DisabledIsNoop(t *testing.T) {
	provider := &stubProvider{}
	f := newSyncFixture(SyncConfig{Enabled: false}, provider)

	if err := f.svc.EnsureSynced(t.Context()); err != nil {
		t.Fatalf("disabled sync should be a noop, got %v", err)
	}
	if provider.fetchCalls != 0 {
		t.Fatalf("provider should not be called, got %d fetches", provider.fetchCalls)
	}
}

func TestSyncService_ValidateAccess(t *testing.T) {
	provider := &stubProvider{accessErr: fmt.Errorf("espn_s2 cookie expired")}
	f := newSyncFixture(SyncConfig{Enabled: true}, provider)

	if err := f.svc.ValidateAccess(t.Context()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	provider.accessErr = nil
	if err := f.svc.ValidateAccess(t.Context()); err != nil {
		t.Fatalf("validate access failed: %v", err)
	}
}
