package nflteam

import "context"

// Repository exposes NFL team read operations.
type Repository interface {
	List(ctx context.Context) ([]NFLTeam, error)
	GetByCode(ctx context.Context, code string) (NFLTeam, bool, error)
}
