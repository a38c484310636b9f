package game

import "fmt"

const (
	StatusScheduled  = "Scheduled"
	StatusInProgress = "In Progress"
	StatusFinal      = "Final"
)

// NFLGame is one real-world game between two NFL teams.
type NFLGame struct {
	ID            string
	SeasonYear    int
	Week          int
	HomeNFLTeamID string
	AwayNFLTeamID string
	HomeScore     *int
	AwayScore     *int
	Status        string
}

func (g NFLGame) Validate() error {
	if g.ID == "" {
		return fmt.Errorf("nfl game id is required")
	}
	if g.SeasonYear < 2000 || g.SeasonYear > 2030 {
		return fmt.Errorf("season year %d out of range", g.SeasonYear)
	}
	if g.Week < 1 || g.Week > 21 {
		return fmt.Errorf("week %d out of range", g.Week)
	}
	if g.HomeNFLTeamID == "" || g.AwayNFLTeamID == "" {
		return fmt.Errorf("nfl game requires both teams")
	}
	if g.HomeNFLTeamID == g.AwayNFLTeamID {
		return fmt.Errorf("nfl game teams must differ")
	}
	switch g.Status {
	case StatusScheduled, StatusInProgress, StatusFinal:
	default:
		return fmt.Errorf("invalid game status: %s", g.Status)
	}

	return nil
}
