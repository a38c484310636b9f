package espn

// Envelope types for the ESPN fantasy v3 reads API. Field coverage is
// limited to what the sync pipeline consumes.

type leagueEnvelope struct {
	ID              int64          `json:"id"`
	SeasonID        int            `json:"seasonId"`
	ScoringPeriodID int            `json:"scoringPeriodId"`
	Status          leagueStatus   `json:"status"`
	Settings        leagueSettings `json:"settings"`
	Teams           []teamItem     `json:"teams"`
	Members         []memberItem   `json:"members"`
}

type leagueStatus struct {
	CurrentMatchupPeriod int  `json:"currentMatchupPeriod"`
	IsActive             bool `json:"isActive"`
	LatestScoringPeriod  int  `json:"latestScoringPeriod"`
}

type leagueSettings struct {
	Name             string           `json:"name"`
	Size             int              `json:"size"`
	ScheduleSettings scheduleSettings `json:"scheduleSettings"`
	ScoringSettings  scoringSettings  `json:"scoringSettings"`
}

type scheduleSettings struct {
	MatchupPeriodCount int `json:"matchupPeriodCount"`
	PlayoffTeamCount   int `json:"playoffTeamCount"`
}

type scoringSettings struct {
	ScoringItems []scoringItem `json:"scoringItems"`
}

type scoringItem struct {
	StatID int     `json:"statId"`
	Points float64 `json:"points"`
}

type teamItem struct {
	ID       int64      `json:"id"`
	Name     string     `json:"name"`
	Abbrev   string     `json:"abbrev"`
	Location string     `json:"location"`
	Nickname string     `json:"nickname"`
	Owners   []string   `json:"owners"`
	Record   teamRecord `json:"record"`
	Roster   teamRoster `json:"roster"`
}

type teamRecord struct {
	Overall recordLine `json:"overall"`
}

type recordLine struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type teamRoster struct {
	Entries []rosterEntry `json:"entries"`
}

type rosterEntry struct {
	PlayerID        int64           `json:"playerId"`
	LineupSlotID    int             `json:"lineupSlotId"`
	AcquisitionType string          `json:"acquisitionType"`
	PlayerPoolEntry playerPoolEntry `json:"playerPoolEntry"`
}

type playerPoolEntry struct {
	Player playerItem `json:"player"`
}

type playerItem struct {
	ID                int64             `json:"id"`
	FullName          string            `json:"fullName"`
	DefaultPositionID int               `json:"defaultPositionId"`
	ProTeamID         int               `json:"proTeamId"`
	Jersey            string            `json:"jersey"`
	Height            float64           `json:"height"`
	Weight            float64           `json:"weight"`
	Age               int               `json:"age"`
	Experience        *playerExperience `json:"experience"`
	College           string            `json:"college"`
	Active            bool              `json:"active"`
	Injured           bool              `json:"injured"`
	InjuryStatus      string            `json:"injuryStatus"`
}

type playerExperience struct {
	Years int `json:"years"`
}

type memberItem struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
}

type scoreboardEnvelope struct {
	Schedule []scheduleItem `json:"schedule"`
}

type scheduleItem struct {
	ID              int64        `json:"id"`
	MatchupPeriodID int          `json:"matchupPeriodId"`
	Winner          string       `json:"winner"`
	PlayoffTierType string       `json:"playoffTierType"`
	Home            matchupSide  `json:"home"`
	Away            *matchupSide `json:"away"`
}

type matchupSide struct {
	TeamID      int64   `json:"teamId"`
	TotalPoints float64 `json:"totalPoints"`
}
