package league

import "context"

// Repository describes league config persistence needs from use cases.
type Repository interface {
	GetActive(ctx context.Context) (Config, bool, error)
	Replace(ctx context.Context, cfg Config) error
}
