package player

import "fmt"

// Position represents fantasy-relevant football positions.
type Position string

const (
	PositionQB        Position = "QB"
	PositionRB        Position = "RB"
	PositionWR        Position = "WR"
	PositionTE        Position = "TE"
	PositionK         Position = "K"
	PositionDEF       Position = "DEF"
	PositionFlex      Position = "FLEX"
	PositionSuperflex Position = "SUPERFLEX"
)

var AllPositions = map[Position]struct{}{
	PositionQB:        {},
	PositionRB:        {},
	PositionWR:        {},
	PositionTE:        {},
	PositionK:         {},
	PositionDEF:       {},
	PositionFlex:      {},
	PositionSuperflex: {},
}

// Player is an NFL athlete in the league player pool.
type Player struct {
	ID              string
	Name            string
	Position        Position
	NFLTeamID       *string
	ESPNID          *string
	JerseyNumber    *int
	HeightInches    *int
	WeightPounds    *int
	Age             *int
	YearsExperience *int
	College         string
	IsActive        bool
	IsInjured       bool
	InjuryStatus    string
}

func (p Player) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("player id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}
	if p.JerseyNumber != nil && (*p.JerseyNumber < 0 || *p.JerseyNumber > 99) {
		return fmt.Errorf("jersey number %d out of range", *p.JerseyNumber)
	}
	if p.Age != nil && (*p.Age < 18 || *p.Age > 50) {
		return fmt.Errorf("player age %d out of range", *p.Age)
	}

	return nil
}
