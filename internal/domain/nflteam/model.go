package nflteam

import "fmt"

const (
	ConferenceAFC = "AFC"
	ConferenceNFC = "NFC"
)

var AllDivisions = map[string]struct{}{
	"East":  {},
	"West":  {},
	"North": {},
	"South": {},
}

// NFLTeam is one of the 32 professional franchises players belong to.
type NFLTeam struct {
	ID         string
	Code       string
	Name       string
	City       string
	Conference string
	Division   string
}

func (t NFLTeam) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("nfl team id is required")
	}
	if len(t.Code) < 2 || len(t.Code) > 3 {
		return fmt.Errorf("invalid nfl team code: %s", t.Code)
	}
	if t.Name == "" {
		return fmt.Errorf("nfl team name is required")
	}
	if t.Conference != ConferenceAFC && t.Conference != ConferenceNFC {
		return fmt.Errorf("invalid conference: %s", t.Conference)
	}
	if _, ok := AllDivisions[t.Division]; !ok {
		return fmt.Errorf("invalid division: %s", t.Division)
	}

	return nil
}
