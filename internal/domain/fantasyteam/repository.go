package fantasyteam

import "context"

// Repository describes fantasy team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]FantasyTeam, error)
	GetByID(ctx context.Context, teamID string) (FantasyTeam, bool, error)
	Count(ctx context.Context) (int, error)
	ReplaceAll(ctx context.Context, teams []FantasyTeam) error
}

// WeeklyScoreRepository stores per-week team scoring lines.
type WeeklyScoreRepository interface {
	ListByTeam(ctx context.Context, teamID string) ([]WeeklyScore, error)
	ReplaceAll(ctx context.Context, scores []WeeklyScore) error
}
