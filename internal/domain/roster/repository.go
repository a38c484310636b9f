package roster

import "context"

// Repository describes roster persistence needs from use cases.
type Repository interface {
	ListByTeam(ctx context.Context, teamID string) ([]Entry, error)
	// TeamIDsForPlayers maps each rostered player id to its fantasy team id.
	// Unrostered players are absent from the result.
	TeamIDsForPlayers(ctx context.Context, playerIDs []string) (map[string]string, error)
	ReplaceAll(ctx context.Context, entries []Entry) error
}
