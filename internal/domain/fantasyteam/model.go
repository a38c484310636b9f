package fantasyteam

import "fmt"

// FantasyTeam is one franchise inside the fantasy league.
type FantasyTeam struct {
	ID             string
	OwnerName      string
	TeamName       string
	PlatformTeamID *string
	Wins           int
	Losses         int
	Ties           int
	PointsFor      float64
	PointsAgainst  float64
}

func (t FantasyTeam) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("fantasy team id is required")
	}
	if t.OwnerName == "" {
		return fmt.Errorf("fantasy team owner is required")
	}
	if t.TeamName == "" {
		return fmt.Errorf("fantasy team name is required")
	}
	if t.Wins < 0 || t.Losses < 0 || t.Ties < 0 {
		return fmt.Errorf("fantasy team record cannot be negative")
	}

	return nil
}

// GamesPlayed counts decided plus tied games.
func (t FantasyTeam) GamesPlayed() int {
	return t.Wins + t.Losses + t.Ties
}

// WinPercentage includes ties as half wins.
func (t FantasyTeam) WinPercentage() float64 {
	played := t.GamesPlayed()
	if played == 0 {
		return 0
	}
	return (float64(t.Wins) + 0.5*float64(t.Ties)) / float64(played)
}

// WeeklyScore is a team's scoring line for one fantasy week.
type WeeklyScore struct {
	ID            string
	FantasyTeamID string
	Week          int
	TotalScore    float64
	BenchScore    float64
	OptimalScore  float64
}

func (s WeeklyScore) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("weekly score id is required")
	}
	if s.FantasyTeamID == "" {
		return fmt.Errorf("weekly score team id is required")
	}
	if s.Week < 1 || s.Week > 21 {
		return fmt.Errorf("week %d out of range", s.Week)
	}

	return nil
}
