package teamstats

import "context"

// Repository exposes team defense stat read operations.
type Repository interface {
	ListByTeam(ctx context.Context, nflTeamID string, seasonYear int) ([]DefenseGameStat, error)
}
