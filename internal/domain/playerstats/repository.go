package playerstats

import "context"

// Repository exposes player stat read operations.
type Repository interface {
	ListByPlayer(ctx context.Context, playerID string, seasonYear int) ([]GameStat, error)
}
