package roster

import (
	"fmt"
	"time"
)

// AcquisitionType records how a player joined a roster.
type AcquisitionType string

const (
	AcquisitionDraft     AcquisitionType = "Draft"
	AcquisitionWaiver    AcquisitionType = "Waiver"
	AcquisitionTrade     AcquisitionType = "Trade"
	AcquisitionFreeAgent AcquisitionType = "Free Agent"
)

var AllAcquisitionTypes = map[AcquisitionType]struct{}{
	AcquisitionDraft:     {},
	AcquisitionWaiver:    {},
	AcquisitionTrade:     {},
	AcquisitionFreeAgent: {},
}

// Entry links a player to the fantasy team that currently holds them.
type Entry struct {
	ID            string
	FantasyTeamID string
	PlayerID      string
	IsStarting    bool
	Acquisition   AcquisitionType
	AcquiredAt    time.Time
}

func (e Entry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("roster entry id is required")
	}
	if e.FantasyTeamID == "" {
		return fmt.Errorf("roster entry team id is required")
	}
	if e.PlayerID == "" {
		return fmt.Errorf("roster entry player id is required")
	}
	if _, ok := AllAcquisitionTypes[e.Acquisition]; !ok {
		return fmt.Errorf("invalid acquisition type: %s", e.Acquisition)
	}

	return nil
}
