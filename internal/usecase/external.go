package usecase

import (
	"context"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
)

// ExternalLeagueSettings is provider-neutral league configuration.
type ExternalLeagueSettings struct {
	Name             string
	PlatformLeagueID string
	SeasonYear       int
	ScoringType      league.ScoringType
	TeamCount        int
	PlayoffTeams     int
	CurrentWeek      int
}

// ExternalTeam is a provider-neutral fantasy franchise.
type ExternalTeam struct {
	PlatformTeamID string
	TeamName       string
	OwnerName      string
	Wins           int
	Losses         int
	Ties           int
	PointsFor      float64
	PointsAgainst  float64
}

// ExternalPlayer is a provider-neutral athlete record.
type ExternalPlayer struct {
	PlatformPlayerID string
	Name             string
	Position         player.Position
	NFLTeamCode      string
	JerseyNumber     *int
	HeightInches     *int
	WeightPounds     *int
	Age              *int
	YearsExperience  *int
	College          string
	IsActive         bool
	IsInjured        bool
	InjuryStatus     string
}

// ExternalRosterSlot links a provider player to a provider team.
type ExternalRosterSlot struct {
	PlatformTeamID   string
	PlatformPlayerID string
	IsStarting       bool
	Acquisition      roster.AcquisitionType
}

// ExternalMatchup is one provider head-to-head pairing.
type ExternalMatchup struct {
	Week           int
	HomeTeamID     string
	AwayTeamID     string
	HomeScore      float64
	AwayScore      float64
	IsComplete     bool
	IsPlayoff      bool
	IsChampionship bool
}

// ExternalLeagueBundle is everything one settings+rosters fetch yields.
type ExternalLeagueBundle struct {
	Settings ExternalLeagueSettings
	Teams    []ExternalTeam
	Players  []ExternalPlayer
	Roster   []ExternalRosterSlot
}

// LeagueProvider pulls fantasy league data from an external platform.
type LeagueProvider interface {
	FetchLeague(ctx context.Context) (ExternalLeagueBundle, error)
	FetchMatchupsByWeek(ctx context.Context, week int) ([]ExternalMatchup, error)
	ValidateAccess(ctx context.Context) error
}
