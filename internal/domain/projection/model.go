package projection

import "fmt"

// Projection is a forecast stat line for a player in one week.
type Projection struct {
	ID         string
	PlayerID   string
	Week       int
	SeasonYear int
	Source     string

	ProjectedPassingYards   float64
	ProjectedPassingTDs     float64
	ProjectedRushingYards   float64
	ProjectedRushingTDs     float64
	ProjectedReceptions     float64
	ProjectedReceivingYards float64
	ProjectedReceivingTDs   float64

	ProjectedFantasyPoints float64
	Confidence             *int
}

func (p Projection) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("projection id is required")
	}
	if p.PlayerID == "" {
		return fmt.Errorf("projection player id is required")
	}
	if p.Week < 1 || p.Week > 21 {
		return fmt.Errorf("week %d out of range", p.Week)
	}
	if p.SeasonYear < 2000 || p.SeasonYear > 2030 {
		return fmt.Errorf("season year %d out of range", p.SeasonYear)
	}
	if p.Confidence != nil && (*p.Confidence < 1 || *p.Confidence > 10) {
		return fmt.Errorf("confidence %d out of range", *p.Confidence)
	}

	return nil
}
