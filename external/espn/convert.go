package espn

import (
	"strconv"
	"strings"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

const (
	// ESPN stat id for a reception, used to infer the scoring model.
	statIDReception = 53

	lineupSlotBench = 20
	lineupSlotIR    = 21

	unknownOwnerName = "Unknown Owner"
)

// defaultPositionId values for fantasy-relevant positions.
var positionByID = map[int]player.Position{
	1:  player.PositionQB,
	2:  player.PositionRB,
	3:  player.PositionWR,
	4:  player.PositionTE,
	5:  player.PositionK,
	16: player.PositionDEF,
}

// proTeamId values as ESPN assigns them. Zero means free agent.
var nflCodeByProTeamID = map[int]string{
	1:  "ATL",
	2:  "BUF",
	3:  "CHI",
	4:  "CIN",
	5:  "CLE",
	6:  "DAL",
	7:  "DEN",
	8:  "DET",
	9:  "GB",
	10: "TEN",
	11: "IND",
	12: "KC",
	13: "LV",
	14: "LAR",
	15: "MIA",
	16: "MIN",
	17: "NE",
	18: "NO",
	19: "NYG",
	20: "NYJ",
	21: "PHI",
	22: "ARI",
	23: "PIT",
	24: "LAC",
	25: "SF",
	26: "SEA",
	27: "TB",
	28: "WAS",
	29: "CAR",
	30: "JAX",
	33: "BAL",
	34: "HOU",
}

func convertLeagueSettings(envelope leagueEnvelope) usecase.ExternalLeagueSettings {
	currentWeek := envelope.Status.CurrentMatchupPeriod
	if currentWeek <= 0 {
		currentWeek = envelope.ScoringPeriodID
	}
	if currentWeek <= 0 {
		currentWeek = 1
	}

	teamCount := envelope.Settings.Size
	if teamCount <= 0 {
		teamCount = len(envelope.Teams)
	}

	platformLeagueID := ""
	if envelope.ID > 0 {
		platformLeagueID = strconv.FormatInt(envelope.ID, 10)
	}

	return usecase.ExternalLeagueSettings{
		Name:             strings.TrimSpace(envelope.Settings.Name),
		PlatformLeagueID: platformLeagueID,
		SeasonYear:       envelope.SeasonID,
		ScoringType:      scoringTypeFromItems(envelope.Settings.ScoringSettings.ScoringItems),
		TeamCount:        teamCount,
		PlayoffTeams:     envelope.Settings.ScheduleSettings.PlayoffTeamCount,
		CurrentWeek:      currentWeek,
	}
}

// scoringTypeFromItems infers the league scoring model from the points
// awarded per reception.
func scoringTypeFromItems(items []scoringItem) league.ScoringType {
	for _, item := range items {
		if item.StatID != statIDReception {
			continue
		}
		switch item.Points {
		case 1.0:
			return league.ScoringPPR
		case 0.5:
			return league.ScoringHalfPPR
		}
		break
	}
	return league.ScoringStandard
}

func convertTeams(envelope leagueEnvelope) []usecase.ExternalTeam {
	owners := ownerNamesByGUID(envelope.Members)

	out := make([]usecase.ExternalTeam, 0, len(envelope.Teams))
	for _, item := range envelope.Teams {
		out = append(out, usecase.ExternalTeam{
			PlatformTeamID: strconv.FormatInt(item.ID, 10),
			TeamName:       teamDisplayName(item),
			OwnerName:      resolveOwnerName(item.Owners, owners),
			Wins:           item.Record.Overall.Wins,
			Losses:         item.Record.Overall.Losses,
			Ties:           item.Record.Overall.Ties,
			PointsFor:      item.Record.Overall.PointsFor,
			PointsAgainst:  item.Record.Overall.PointsAgainst,
		})
	}

	return out
}

func teamDisplayName(item teamItem) string {
	if name := strings.TrimSpace(item.Name); name != "" {
		return name
	}
	combined := strings.TrimSpace(strings.TrimSpace(item.Location) + " " + strings.TrimSpace(item.Nickname))
	if combined != "" {
		return combined
	}
	if abbrev := strings.TrimSpace(item.Abbrev); abbrev != "" {
		return abbrev
	}
	return "Team " + strconv.FormatInt(item.ID, 10)
}

func ownerNamesByGUID(members []memberItem) map[string]string {
	out := make(map[string]string, len(members))
	for _, member := range members {
		name := strings.TrimSpace(member.DisplayName)
		if name == "" {
			name = strings.TrimSpace(strings.TrimSpace(member.FirstName) + " " + strings.TrimSpace(member.LastName))
		}
		if name != "" {
			out[member.ID] = name
		}
	}
	return out
}

func resolveOwnerName(guids []string, names map[string]string) string {
	for _, guid := range guids {
		if name, ok := names[guid]; ok {
			return name
		}
	}
	return unknownOwnerName
}

func convertRosters(envelope leagueEnvelope) ([]usecase.ExternalPlayer, []usecase.ExternalRosterSlot) {
	players := make([]usecase.ExternalPlayer, 0, len(envelope.Teams)*16)
	slots := make([]usecase.ExternalRosterSlot, 0, len(envelope.Teams)*16)

	for _, team := range envelope.Teams {
		teamID := strconv.FormatInt(team.ID, 10)
		for _, entry := range team.Roster.Entries {
			source := entry.PlayerPoolEntry.Player
			if source.ID == 0 {
				source.ID = entry.PlayerID
			}
			converted, ok := convertPlayer(source)
			if !ok {
				continue
			}

			players = append(players, converted)
			slots = append(slots, usecase.ExternalRosterSlot{
				PlatformTeamID:   teamID,
				PlatformPlayerID: converted.PlatformPlayerID,
				IsStarting:       isStartingSlot(entry.LineupSlotID),
				Acquisition:      acquisitionFromESPN(entry.AcquisitionType),
			})
		}
	}

	return players, slots
}

func convertPlayer(source playerItem) (usecase.ExternalPlayer, bool) {
	if source.ID == 0 {
		return usecase.ExternalPlayer{}, false
	}
	position, ok := positionByID[source.DefaultPositionID]
	if !ok {
		return usecase.ExternalPlayer{}, false
	}

	out := usecase.ExternalPlayer{
		PlatformPlayerID: strconv.FormatInt(source.ID, 10),
		Name:             strings.TrimSpace(source.FullName),
		Position:         position,
		NFLTeamCode:      nflCodeByProTeamID[source.ProTeamID],
		College:          strings.TrimSpace(source.College),
		IsActive:         source.Active,
		IsInjured:        source.Injured,
		InjuryStatus:     normalizeInjuryStatus(source.InjuryStatus),
	}
	if out.Name == "" {
		return usecase.ExternalPlayer{}, false
	}
	if jersey, err := strconv.Atoi(strings.TrimSpace(source.Jersey)); err == nil && jersey >= 0 && jersey <= 99 {
		out.JerseyNumber = &jersey
	}
	if height := int(source.Height + 0.5); source.Height > 0 {
		out.HeightInches = &height
	}
	if weight := int(source.Weight + 0.5); source.Weight > 0 {
		out.WeightPounds = &weight
	}
	if age := source.Age; age >= 18 && age <= 50 {
		out.Age = &age
	}
	if source.Experience != nil && source.Experience.Years >= 0 {
		years := source.Experience.Years
		out.YearsExperience = &years
	}

	return out, true
}

// acquisitionFromESPN maps the roster entry acquisitionType. ESPN only
// distinguishes drafts, trades, and adds, so adds land as free agent
// pickups.
func acquisitionFromESPN(value string) roster.AcquisitionType {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "DRAFT":
		return roster.AcquisitionDraft
	case "TRADE":
		return roster.AcquisitionTrade
	case "WAIVER", "WAIVERS":
		return roster.AcquisitionWaiver
	default:
		return roster.AcquisitionFreeAgent
	}
}

func isStartingSlot(slotID int) bool {
	return slotID != lineupSlotBench && slotID != lineupSlotIR
}

func normalizeInjuryStatus(raw string) string {
	value := strings.TrimSpace(raw)
	if strings.EqualFold(value, "ACTIVE") {
		return ""
	}
	return value
}

// convertScoreboard filters the full-season schedule down to one week.
// championshipWeek marks the final winners-bracket round; zero disables
// the check.
func convertScoreboard(envelope scoreboardEnvelope, week, championshipWeek int) []usecase.ExternalMatchup {
	out := make([]usecase.ExternalMatchup, 0, len(envelope.Schedule))
	for _, item := range envelope.Schedule {
		if item.MatchupPeriodID != week {
			continue
		}
		// Bye weeks come through with no away side.
		if item.Away == nil || item.Home.TeamID == 0 || item.Away.TeamID == 0 {
			continue
		}

		playoff := isPlayoffTier(item.PlayoffTierType)
		out = append(out, usecase.ExternalMatchup{
			Week:           week,
			HomeTeamID:     strconv.FormatInt(item.Home.TeamID, 10),
			AwayTeamID:     strconv.FormatInt(item.Away.TeamID, 10),
			HomeScore:      item.Home.TotalPoints,
			AwayScore:      item.Away.TotalPoints,
			IsComplete:     !strings.EqualFold(item.Winner, "UNDECIDED") && strings.TrimSpace(item.Winner) != "",
			IsPlayoff:      playoff,
			IsChampionship: playoff && championshipWeek > 0 && week == championshipWeek,
		})
	}
	return out
}

func isPlayoffTier(tier string) bool {
	value := strings.TrimSpace(tier)
	return value != "" && !strings.EqualFold(value, "NONE")
}
