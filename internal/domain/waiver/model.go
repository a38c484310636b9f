package waiver

import "fmt"

// PriorityLevel buckets how urgently a pickup is recommended.
type PriorityLevel string

const (
	PriorityHigh   PriorityLevel = "High"
	PriorityMedium PriorityLevel = "Medium"
	PriorityLow    PriorityLevel = "Low"
)

// Priority is one team's slot in the waiver claim order.
type Priority struct {
	ID            string
	FantasyTeamID string
	PriorityOrder int
	SeasonYear    int
}

func (p Priority) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("waiver priority id is required")
	}
	if p.FantasyTeamID == "" {
		return fmt.Errorf("waiver priority team id is required")
	}
	if p.PriorityOrder < 1 {
		return fmt.Errorf("priority order must be at least 1")
	}
	if p.SeasonYear < 2000 || p.SeasonYear > 2030 {
		return fmt.Errorf("season year %d out of range", p.SeasonYear)
	}

	return nil
}

// Recommendation is a suggested free agent pickup for one week.
type Recommendation struct {
	ID              string
	PlayerID        string
	Week            int
	Reason          string
	Priority        PriorityLevel
	ProjectedImpact float64
}

func (r Recommendation) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("waiver recommendation id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("waiver recommendation player id is required")
	}
	if r.Week < 1 || r.Week > 21 {
		return fmt.Errorf("week %d out of range", r.Week)
	}
	switch r.Priority {
	case PriorityHigh, PriorityMedium, PriorityLow:
	default:
		return fmt.Errorf("invalid priority level: %s", r.Priority)
	}

	return nil
}
