package trade

import (
	"fmt"
	"time"
)

// Status tracks the lifecycle of a trade proposal.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
	StatusExpired  Status = "Expired"
)

var AllStatuses = map[Status]struct{}{
	StatusPending:  {},
	StatusAccepted: {},
	StatusRejected: {},
	StatusExpired:  {},
}

// Proposal is an offer exchanging assets between two fantasy teams.
type Proposal struct {
	ID              string
	ProposingTeamID string
	ReceivingTeamID string
	Status          Status
	ProposedAt      time.Time
	ExpiresAt       *time.Time
	Notes           string
}

func (p Proposal) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("trade proposal id is required")
	}
	if p.ProposingTeamID == "" || p.ReceivingTeamID == "" {
		return fmt.Errorf("trade proposal requires both teams")
	}
	if p.ProposingTeamID == p.ReceivingTeamID {
		return fmt.Errorf("trade proposal teams must differ")
	}
	if _, ok := AllStatuses[p.Status]; !ok {
		return fmt.Errorf("invalid trade status: %s", p.Status)
	}

	return nil
}

// Item is one asset inside a proposal. It names either a player or a
// future draft pick.
type Item struct {
	ID              string
	TradeProposalID string
	FromTeamID      string
	ToTeamID        string
	PlayerID        *string
	DraftPickRound  *int
	DraftPickYear   *int
}

func (i Item) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("trade item id is required")
	}
	if i.TradeProposalID == "" {
		return fmt.Errorf("trade item proposal id is required")
	}
	if i.FromTeamID == "" || i.ToTeamID == "" {
		return fmt.Errorf("trade item requires both teams")
	}
	if i.PlayerID == nil && (i.DraftPickRound == nil || i.DraftPickYear == nil) {
		return fmt.Errorf("trade item must name a player or a draft pick")
	}
	if i.DraftPickRound != nil && (*i.DraftPickRound < 1 || *i.DraftPickRound > 20) {
		return fmt.Errorf("draft pick round %d out of range", *i.DraftPickRound)
	}

	return nil
}

// Analysis is a computed evaluation of a proposal's fairness.
type Analysis struct {
	ID                string
	TradeProposalID   string
	ProposingValue    float64
	ReceivingValue    float64
	RosterImprovement float64
	IsBalanced        bool
	Notes             string
}

func (a Analysis) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("trade analysis id is required")
	}
	if a.TradeProposalID == "" {
		return fmt.Errorf("trade analysis proposal id is required")
	}
	if a.RosterImprovement < -100 || a.RosterImprovement > 100 {
		return fmt.Errorf("roster improvement %.1f out of range", a.RosterImprovement)
	}

	return nil
}
