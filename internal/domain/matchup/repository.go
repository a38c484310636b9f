package matchup

import "context"

// Repository describes matchup persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Matchup, error)
	ListByWeek(ctx context.Context, week int) ([]Matchup, error)
	ListByTeam(ctx context.Context, teamID string) ([]Matchup, error)
	GetByID(ctx context.Context, matchupID string) (Matchup, bool, error)
	ReplaceAll(ctx context.Context, matchups []Matchup) error
}
