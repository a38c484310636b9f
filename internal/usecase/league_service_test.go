package usecase

import (
	"errors"
	"testing"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
)

func TestLeagueService_GetActive(t *testing.T) {
	leagueRepo := &stubLeagueRepo{
		cfg: league.Config{
			ID:          "league-1",
			LeagueName:  "Sunday Showdown",
			Platform:    league.PlatformESPN,
			SeasonYear:  2025,
			ScoringType: league.ScoringHalfPPR,
			TeamCount:   10,
			IsActive:    true,
		},
		found: true,
	}
	svc := NewLeagueService(leagueRepo)

	cfg, err := svc.GetActive(t.Context())
	if err != nil {
		t.Fatalf("get active league failed: %v", err)
	}
	if cfg.LeagueName != "Sunday Showdown" || cfg.ScoringType != league.ScoringHalfPPR {
		t.Fatalf("unexpected league config: %+v", cfg)
	}
}

func TestLeagueService_GetActive_NotConfigured(t *testing.T) {
	svc := NewLeagueService(&stubLeagueRepo{})

	if _, err := svc.GetActive(t.Context()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
