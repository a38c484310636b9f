package waiver

import "context"

// Repository describes waiver persistence needs from use cases.
type Repository interface {
	ListPriorities(ctx context.Context, seasonYear int) ([]Priority, error)
	ReplacePriorities(ctx context.Context, priorities []Priority) error
	ListRecommendations(ctx context.Context, week int) ([]Recommendation, error)
	ReplaceRecommendations(ctx context.Context, week int, recommendations []Recommendation) error
}
