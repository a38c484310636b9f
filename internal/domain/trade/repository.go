package trade

import "context"

// Repository describes trade persistence needs from use cases.
type Repository interface {
	ListProposals(ctx context.Context) ([]Proposal, error)
	GetProposal(ctx context.Context, proposalID string) (Proposal, bool, error)
	// CreateProposal inserts the proposal and its items in one transaction.
	CreateProposal(ctx context.Context, proposal Proposal, items []Item) error
	ListItems(ctx context.Context, proposalID string) ([]Item, error)
	GetAnalysis(ctx context.Context, proposalID string) (Analysis, bool, error)
	SaveAnalysis(ctx context.Context, analysis Analysis) error
}
