package projection

import "context"

// Repository exposes projection read operations.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID string, week int) ([]Projection, error)
	ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]Projection, error)
	ListForWeek(ctx context.Context, week int) ([]Projection, error)
}
