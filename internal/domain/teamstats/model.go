package teamstats

import "fmt"

// DefenseGameStat is one NFL team defense line for one game, the unit
// rostered as a DEF fantasy player.
type DefenseGameStat struct {
	ID        string
	NFLTeamID string
	NFLGameID string

	Sacks            int
	Interceptions    int
	FumblesRecovered int
	Safeties         int
	Touchdowns       int

	PointsAllowed int
	YardsAllowed  int

	FantasyPoints float64
}

func (s DefenseGameStat) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("defense stat id is required")
	}
	if s.NFLTeamID == "" {
		return fmt.Errorf("defense stat team id is required")
	}
	if s.NFLGameID == "" {
		return fmt.Errorf("defense stat game id is required")
	}
	if s.PointsAllowed < 0 {
		return fmt.Errorf("points allowed cannot be negative")
	}

	return nil
}
