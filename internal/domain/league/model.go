package league

import "fmt"

// Platform identifies where league data is sourced from.
type Platform string

const (
	PlatformESPN    Platform = "ESPN"
	PlatformYahoo   Platform = "Yahoo"
	PlatformSleeper Platform = "Sleeper"
	PlatformCustom  Platform = "Custom"
)

// ScoringType is the reception scoring model of a league.
type ScoringType string

const (
	ScoringStandard ScoringType = "Standard"
	ScoringPPR      ScoringType = "PPR"
	ScoringHalfPPR  ScoringType = "Half-PPR"
)

var AllPlatforms = map[Platform]struct{}{
	PlatformESPN:    {},
	PlatformYahoo:   {},
	PlatformSleeper: {},
	PlatformCustom:  {},
}

var AllScoringTypes = map[ScoringType]struct{}{
	ScoringStandard: {},
	ScoringPPR:      {},
	ScoringHalfPPR:  {},
}

// Config is the single-league settings row that drives ingestion and
// every derived view.
type Config struct {
	ID               string
	LeagueName       string
	Platform         Platform
	PlatformLeagueID string
	SeasonYear       int
	ScoringType      ScoringType
	TeamCount        int
	PlayoffTeams     int
	IsActive         bool
}

func (c Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("league config id is required")
	}
	if c.LeagueName == "" {
		return fmt.Errorf("league name is required")
	}
	if _, ok := AllPlatforms[c.Platform]; !ok {
		return fmt.Errorf("invalid league platform: %s", c.Platform)
	}
	if c.SeasonYear < 2000 || c.SeasonYear > 2030 {
		return fmt.Errorf("season year %d out of range", c.SeasonYear)
	}
	if _, ok := AllScoringTypes[c.ScoringType]; !ok {
		return fmt.Errorf("invalid scoring type: %s", c.ScoringType)
	}
	if c.TeamCount < 2 || c.TeamCount > 32 {
		return fmt.Errorf("team count %d out of range", c.TeamCount)
	}
	if c.PlayoffTeams < 0 || c.PlayoffTeams > c.TeamCount {
		return fmt.Errorf("playoff teams %d out of range", c.PlayoffTeams)
	}

	return nil
}
