package playerstats

import "fmt"

// GameStat is one player's stat line for one NFL game.
type GameStat struct {
	ID        string
	PlayerID  string
	NFLGameID string

	PassingYards      int
	PassingTouchdowns int
	Interceptions     int

	RushingYards      int
	RushingTouchdowns int

	Receptions          int
	Targets             int
	ReceivingYards      int
	ReceivingTouchdowns int

	FumblesLost int

	FieldGoalsMade      int
	FieldGoalsAttempted int
	ExtraPointsMade     int

	FantasyPoints float64
}

func (s GameStat) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("game stat id is required")
	}
	if s.PlayerID == "" {
		return fmt.Errorf("game stat player id is required")
	}
	if s.NFLGameID == "" {
		return fmt.Errorf("game stat game id is required")
	}
	if s.Receptions > s.Targets && s.Targets > 0 {
		return fmt.Errorf("receptions %d exceed targets %d", s.Receptions, s.Targets)
	}
	if s.FieldGoalsMade > s.FieldGoalsAttempted && s.FieldGoalsAttempted > 0 {
		return fmt.Errorf("field goals made %d exceed attempts %d", s.FieldGoalsMade, s.FieldGoalsAttempted)
	}

	return nil
}

// SeasonSummary aggregates a player's game lines for one season.
type SeasonSummary struct {
	GamesPlayed         int
	PassingYards        int
	PassingTouchdowns   int
	Interceptions       int
	RushingYards        int
	RushingTouchdowns   int
	Receptions          int
	ReceivingYards      int
	ReceivingTouchdowns int
	FumblesLost         int
	FantasyPoints       float64
	AveragePoints       float64
}

// Summarize folds game lines into season totals.
func Summarize(stats []GameStat) SeasonSummary {
	out := SeasonSummary{GamesPlayed: len(stats)}
	for _, s := range stats {
		out.PassingYards += s.PassingYards
		out.PassingTouchdowns += s.PassingTouchdowns
		out.Interceptions += s.Interceptions
		out.RushingYards += s.RushingYards
		out.RushingTouchdowns += s.RushingTouchdowns
		out.Receptions += s.Receptions
		out.ReceivingYards += s.ReceivingYards
		out.ReceivingTouchdowns += s.ReceivingTouchdowns
		out.FumblesLost += s.FumblesLost
		out.FantasyPoints += s.FantasyPoints
	}
	if out.GamesPlayed > 0 {
		out.AveragePoints = out.FantasyPoints / float64(out.GamesPlayed)
	}
	return out
}
