package ranking

import "context"

// Repository exposes ranking read operations.
type Repository interface {
	List(ctx context.Context, position string, week *int) ([]Ranking, error)
	ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]Ranking, error)
	// LatestRanks maps each player id to its most recent rank.
	LatestRanks(ctx context.Context, playerIDs []string) (map[string]int, error)
}
