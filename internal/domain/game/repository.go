package game

import "context"

// Repository exposes NFL game read operations.
type Repository interface {
	ListBySeason(ctx context.Context, seasonYear int) ([]NFLGame, error)
	ListByWeek(ctx context.Context, seasonYear, week int) ([]NFLGame, error)
}
