package ranking

import "fmt"

// Ranking is one source's positional rank for a player, either a weekly
// rank or a season-long one when Week is nil.
type Ranking struct {
	ID         string
	PlayerID   string
	Position   string
	Source     string
	Rank       int
	Week       *int
	SeasonYear int
	Tier       *int
	Notes      string
}

func (r Ranking) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("ranking id is required")
	}
	if r.PlayerID == "" {
		return fmt.Errorf("ranking player id is required")
	}
	if r.Rank < 1 {
		return fmt.Errorf("rank must be at least 1")
	}
	if r.Week != nil && (*r.Week < 1 || *r.Week > 21) {
		return fmt.Errorf("week %d out of range", *r.Week)
	}
	if r.SeasonYear < 2000 || r.SeasonYear > 2030 {
		return fmt.Errorf("season year %d out of range", r.SeasonYear)
	}

	return nil
}
