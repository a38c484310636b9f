package usecase

import (
	"context"
	"fmt"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
)

// LeagueService exposes the active league configuration.
type LeagueService struct {
	leagueRepo league.Repository
}

func NewLeagueService(leagueRepo league.Repository) *LeagueService {
	return &LeagueService{leagueRepo: leagueRepo}
}

func (s *LeagueService) GetActive(ctx context.Context) (league.Config, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetActive")
	defer span.End()

	cfg, found, err := s.leagueRepo.GetActive(ctx)
	if err != nil {
		return league.Config{}, fmt.Errorf("get active league: %w", err)
	}
	if !found {
		return league.Config{}, fmt.Errorf("%w: no active league configured", ErrNotFound)
	}

	return cfg, nil
}
