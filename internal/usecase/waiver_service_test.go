package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/waiver"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
)

func newWaiverServiceFixture() (*WaiverService, *stubWaiverRepo, *stubTeamRepo, *stubPlayerRepo, *stubProjectionRepo, *stubRankingRepo, *stubLeagueRepo) {
	waiverRepo := newStubWaiverRepo()
	teamRepo := &stubTeamRepo{}
	playerRepo := &stubPlayerRepo{availableIDs: map[string]bool{}}
	projectionRepo := &stubProjectionRepo{}
	rankingRepo := &stubRankingRepo{ranks: map[string]int{}}
	leagueRepo := &stubLeagueRepo{
		cfg: league.Config{
			ID:          "league-1",
			LeagueName:  "Test League",
			Platform:    league.PlatformESPN,
			SeasonYear:  2025,
			ScoringType: league.ScoringPPR,
			TeamCount:   3,
			IsActive:    true,
		},
		found: true,
	}
	svc := NewWaiverService(waiverRepo, teamRepo, playerRepo, projectionRepo, rankingRepo, leagueRepo, newTestIDs(), logging.NewNop())
	return svc, waiverRepo, teamRepo, playerRepo, projectionRepo, rankingRepo, leagueRepo
}

func TestWaiverService_Priority_DerivesFromStandingsWhenEmpty(t *testing.T) {
	svc, waiverRepo, teamRepo, _, _, _, _ := newWaiverServiceFixture()
	teamRepo.teams = []fantasyteam.FantasyTeam{
		{ID: "t1", TeamName: "Leaders", Wins: 7, Losses: 1, PointsFor: 1000},
		{ID: "t2", TeamName: "Cellar", Wins: 1, Losses: 7, PointsFor: 700},
		{ID: "t3", TeamName: "Middle", Wins: 4, Losses: 4, PointsFor: 850},
	}

	entries, err := svc.Priority(t.Context())
	if err != nil {
		t.Fatalf("priority failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	// Worst record claims first.
	if entries[0].Priority.FantasyTeamID != "t2" || entries[0].Priority.PriorityOrder != 1 {
		t.Fatalf("unexpected first claim: %+v", entries[0].Priority)
	}
	if entries[2].Priority.FantasyTeamID != "t1" {
		t.Fatalf("unexpected last claim: %+v", entries[2].Priority)
	}
	if entries[0].TeamName != "Cellar" || entries[0].Record != "1-7-0" {
		t.Fatalf("unexpected entry detail: %+v", entries[0])
	}

	if len(waiverRepo.priorities) != 3 {
		t.Fatalf("derived order should be persisted, stored %d", len(waiverRepo.priorities))
	}
	for _, p := range waiverRepo.priorities {
		if p.ID == "" || p.SeasonYear != 2025 {
			t.Fatalf("stored priority incomplete: %+v", p)
		}
	}
}

func TestWaiverService_Priority_UsesStoredOrder(t *testing.T) {
	svc, waiverRepo, teamRepo, _, _, _, _ := newWaiverServiceFixture()
	teamRepo.teams = []fantasyteam.FantasyTeam{
		{ID: "t1", TeamName: "Leaders", Wins: 7, Losses: 1},
		{ID: "t2", TeamName: "Cellar", Wins: 1, Losses: 7},
	}
	waiverRepo.priorities = []waiver.Priority{
		{ID: "w1", FantasyTeamID: "t1", PriorityOrder: 1, SeasonYear: 2025},
		{ID: "w2", FantasyTeamID: "t2", PriorityOrder: 2, SeasonYear: 2025},
	}

	entries, err := svc.Priority(t.Context())
	if err != nil {
		t.Fatalf("priority failed: %v", err)
	}

	if entries[0].Priority.FantasyTeamID != "t1" {
		t.Fatalf("stored order should win, got %+v", entries[0].Priority)
	}
}

func TestWaiverService_Priority_NoActiveLeague(t *testing.T) {
	svc, _, _, _, _, _, leagueRepo := newWaiverServiceFixture()
	leagueRepo.found = false

	if _, err := svc.Priority(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWaiverService_Recommendations_Validation(t *testing.T) {
	svc, _, _, _, _, _, _ := newWaiverServiceFixture()

	for _, week := range []int{0, 22} {
		if _, err := svc.Recommendations(t.Context(), week); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput for week %d, got %v", week, err)
		}
	}
}

func TestWaiverService_Recommendations_RanksAndCaps(t *testing.T) {
	svc, waiverRepo, _, playerRepo, projectionRepo, rankingRepo, _ := newWaiverServiceFixture()

	for i := 1; i <= 12; i++ {
		id := fmt.Sprintf("rb-%02d", i)
		playerRepo.players = append(playerRepo.players, player.Player{
			ID:       id,
			Name:     fmt.Sprintf("Running Back %02d", i),
			Position: player.PositionRB,
			IsActive: true,
		})
		playerRepo.availableIDs[id] = true
	}
	rankingRepo.ranks = map[string]int{
		"rb-03": 40,
		"rb-07": 90,
	}
	projectionRepo.projections = []projection.Projection{
		{ID: "pr1", PlayerID: "rb-01", Week: 5, SeasonYear: 2025, ProjectedFantasyPoints: 13},
		{ID: "pr2", PlayerID: "rb-02", Week: 5, SeasonYear: 2025, ProjectedFantasyPoints: 7},
	}

	views, err := svc.Recommendations(t.Context(), 5)
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}

	if len(views) != waiverRecsPerPosition {
		t.Fatalf("expected the per-position cap of %d, got %d", waiverRecsPerPosition, len(views))
	}
	if views[0].Player.ID != "rb-03" {
		t.Fatalf("best ranked player should lead, got %s", views[0].Player.ID)
	}
	if views[0].Recommendation.Priority != waiver.PriorityHigh {
		t.Fatalf("rank 40 should be a high priority pickup, got %s", views[0].Recommendation.Priority)
	}
	if views[1].Player.ID != "rb-07" {
		t.Fatalf("second ranked player should follow, got %s", views[1].Player.ID)
	}
	if views[2].Player.ID != "rb-01" {
		t.Fatalf("unranked players should sort by projection, got %s", views[2].Player.ID)
	}
	if views[2].Recommendation.Priority != waiver.PriorityHigh {
		t.Fatalf("a 13 point projection should be high priority, got %s", views[2].Recommendation.Priority)
	}
	if views[3].Recommendation.Priority != waiver.PriorityMedium {
		t.Fatalf("a 7 point projection should be medium priority, got %s", views[3].Recommendation.Priority)
	}

	stored, err := waiverRepo.ListRecommendations(t.Context(), 5)
	if err != nil {
		t.Fatalf("list stored recommendations failed: %v", err)
	}
	if len(stored) != len(views) {
		t.Fatalf("recommendations should be persisted: stored %d, returned %d", len(stored), len(views))
	}
}

func TestWaiverService_Recommendations_EmptyPool(t *testing.T) {
	svc, _, _, _, _, _, _ := newWaiverServiceFixture()

	views, err := svc.Recommendations(t.Context(), 3)
	if err != nil {
		t.Fatalf("recommendations failed: %v", err)
	}
	if len(views) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(views))
	}
}
