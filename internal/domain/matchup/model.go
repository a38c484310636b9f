package matchup

import "fmt"

// Matchup is one head-to-head fantasy pairing for a given week.
type Matchup struct {
	ID            string
	Week          int
	HomeTeamID    string
	AwayTeamID    string
	HomeScore     float64
	AwayScore     float64
	IsComplete    bool
	WinnerTeamID  *string
	IsPlayoff     bool
	IsChampionship bool
}

func (m Matchup) Validate() error {
	if m.ID == "" {
		return fmt.Errorf("matchup id is required")
	}
	if m.Week < 1 || m.Week > 21 {
		return fmt.Errorf("week %d out of range", m.Week)
	}
	if m.HomeTeamID == "" || m.AwayTeamID == "" {
		return fmt.Errorf("matchup requires both teams")
	}
	if m.HomeTeamID == m.AwayTeamID {
		return fmt.Errorf("matchup teams must differ")
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("matchup scores cannot be negative")
	}

	return nil
}

// Winner resolves the higher-scoring side for a completed matchup.
// A tie returns an empty id.
func (m Matchup) Winner() string {
	if !m.IsComplete {
		return ""
	}
	switch {
	case m.HomeScore > m.AwayScore:
		return m.HomeTeamID
	case m.AwayScore > m.HomeScore:
		return m.AwayTeamID
	default:
		return ""
	}
}
