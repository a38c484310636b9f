package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
)

type leagueRepoMock struct {
	mock.Mock
}

func (m *leagueRepoMock) GetActive(ctx context.Context) (league.Config, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(league.Config), args.Bool(1), args.Error(2)
}

func (m *leagueRepoMock) Replace(ctx context.Context, cfg league.Config) error {
	return m.Called(ctx, cfg).Error(0)
}

func TestLeagueService_GetActive_RepoErrorIsWrapped(t *testing.T) {
	t.Parallel()

	repo := &leagueRepoMock{}
	repo.
		On("GetActive", mock.Anything).
		Return(league.Config{}, false, fmt.Errorf("pq: connection refused")).
		Once()

	svc := NewLeagueService(repo)

	_, err := svc.GetActive(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("a repository failure must not read as not found: %v", err)
	}
	repo.AssertExpectations(t)
}

func TestLeagueService_GetActive_PassesContextThrough(t *testing.T) {
	t.Parallel()

	want := league.Config{
		ID:          "league-1",
		LeagueName:  "Mock Bowl",
		Platform:    league.PlatformESPN,
		SeasonYear:  2025,
		ScoringType: league.ScoringStandard,
		TeamCount:   8,
		IsActive:    true,
	}

	repo := &leagueRepoMock{}
	repo.
		On("GetActive", mock.MatchedBy(func(v context.Context) bool { return v != nil })).
		Return(want, true, nil).
		Once()

	svc := NewLeagueService(repo)

	got, err := svc.GetActive(context.Background())
	if err != nil {
		t.Fatalf("get active league: %v", err)
	}
	if got.ID != want.ID || got.LeagueName != want.LeagueName {
		t.Fatalf("unexpected config: %+v", got)
	}
	repo.AssertExpectations(t)
}
