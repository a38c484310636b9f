package httpapi

import (
	"time"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/playerstats"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/ranking"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/trade"
	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

type leagueConfigDTO struct {
	ID               string `json:"id"`
	LeagueName       string `json:"league_name"`
	Platform         string `json:"platform"`
	PlatformLeagueID string `json:"platform_league_id"`
	SeasonYear       int    `json:"season_year"`
	ScoringType      string `json:"scoring_type"`
	TeamCount        int    `json:"team_count"`
	PlayoffTeams     int    `json:"playoff_teams"`
	IsActive         bool   `json:"is_active"`
}

func leagueConfigToDTO(cfg league.Config) leagueConfigDTO {
	return leagueConfigDTO{
		ID:               cfg.ID,
		LeagueName:       cfg.LeagueName,
		Platform:         string(cfg.Platform),
		PlatformLeagueID: cfg.PlatformLeagueID,
		SeasonYear:       cfg.SeasonYear,
		ScoringType:      string(cfg.ScoringType),
		TeamCount:        cfg.TeamCount,
		PlayoffTeams:     cfg.PlayoffTeams,
		IsActive:         cfg.IsActive,
	}
}

type teamDTO struct {
	ID             string  `json:"id"`
	TeamName       string  `json:"team_name"`
	OwnerName      string  `json:"owner_name"`
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Ties           int     `json:"ties"`
	PointsFor      float64 `json:"points_for"`
	PointsAgainst  float64 `json:"points_against"`
	PlatformTeamID *string `json:"platform_team_id,omitempty"`
}

func teamToDTO(t fantasyteam.FantasyTeam) teamDTO {
	return teamDTO{
		ID:             t.ID,
		TeamName:       t.TeamName,
		OwnerName:      t.OwnerName,
		Wins:           t.Wins,
		Losses:         t.Losses,
		Ties:           t.Ties,
		PointsFor:      t.PointsFor,
		PointsAgainst:  t.PointsAgainst,
		PlatformTeamID: t.PlatformTeamID,
	}
}

type playerDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Position        string  `json:"position"`
	NFLTeamID       *string `json:"nfl_team_id,omitempty"`
	JerseyNumber    *int    `json:"jersey_number,omitempty"`
	HeightInches    *int    `json:"height_inches,omitempty"`
	WeightPounds    *int    `json:"weight_pounds,omitempty"`
	Age             *int    `json:"age,omitempty"`
	YearsExperience *int    `json:"years_experience,omitempty"`
	College         string  `json:"college,omitempty"`
	IsActive        bool    `json:"is_active"`
	IsInjured       bool    `json:"is_injured"`
	InjuryStatus    string  `json:"injury_status,omitempty"`
}

func playerToDTO(p player.Player) playerDTO {
	return playerDTO{
		ID:              p.ID,
		Name:            p.Name,
		Position:        string(p.Position),
		NFLTeamID:       p.NFLTeamID,
		JerseyNumber:    p.JerseyNumber,
		HeightInches:    p.HeightInches,
		WeightPounds:    p.WeightPounds,
		Age:             p.Age,
		YearsExperience: p.YearsExperience,
		College:         p.College,
		IsActive:        p.IsActive,
		IsInjured:       p.IsInjured,
		InjuryStatus:    p.InjuryStatus,
	}
}

func playersToDTO(players []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, playerToDTO(p))
	}
	return out
}

type playerDetailsDTO struct {
	Player      playerDTO `json:"player"`
	FantasyTeam *teamDTO  `json:"fantasy_team,omitempty"`
}

func playerDetailsToDTO(details usecase.PlayerDetails) playerDetailsDTO {
	out := playerDetailsDTO{Player: playerToDTO(details.Player)}
	if details.FantasyTeam != nil {
		team := teamToDTO(*details.FantasyTeam)
		out.FantasyTeam = &team
	}
	return out
}

type rosterPlayerDTO struct {
	Player      playerDTO `json:"player"`
	IsStarting  bool      `json:"is_starting"`
	Acquisition string    `json:"acquisition_type"`
}

type teamRosterDTO struct {
	TeamID         string            `json:"team_id"`
	TeamName       string            `json:"team_name"`
	Starting       []rosterPlayerDTO `json:"starting"`
	Bench          []rosterPlayerDTO `json:"bench"`
	PositionCounts map[string]int    `json:"position_counts"`
}

func teamRosterToDTO(r usecase.TeamRoster) teamRosterDTO {
	toDTO := func(items []usecase.RosterPlayer) []rosterPlayerDTO {
		out := make([]rosterPlayerDTO, 0, len(items))
		for _, item := range items {
			out = append(out, rosterPlayerDTO{
				Player:      playerToDTO(item.Player),
				IsStarting:  item.IsStarting,
				Acquisition: string(item.Acquisition),
			})
		}
		return out
	}

	return teamRosterDTO{
		TeamID:         r.TeamID,
		TeamName:       r.TeamName,
		Starting:       toDTO(r.Starting),
		Bench:          toDTO(r.Bench),
		PositionCounts: r.PositionCounts,
	}
}

type teamWithRosterDTO struct {
	Team   teamDTO       `json:"team"`
	Roster teamRosterDTO `json:"roster"`
}

func teamWithRosterToDTO(item usecase.TeamWithRoster) teamWithRosterDTO {
	return teamWithRosterDTO{
		Team:   teamToDTO(item.Team),
		Roster: teamRosterToDTO(item.Roster),
	}
}

type weeklyScoreDTO struct {
	Week         int     `json:"week"`
	TotalScore   float64 `json:"total_score"`
	BenchScore   float64 `json:"bench_score"`
	OptimalScore float64 `json:"optimal_score"`
}

func weeklyScoreToDTO(s fantasyteam.WeeklyScore) weeklyScoreDTO {
	return weeklyScoreDTO{
		Week:         s.Week,
		TotalScore:   s.TotalScore,
		BenchScore:   s.BenchScore,
		OptimalScore: s.OptimalScore,
	}
}

type teamStatsDTO struct {
	TeamID        string           `json:"team_id"`
	TeamName      string           `json:"team_name"`
	Record        string           `json:"record"`
	PointsFor     float64          `json:"points_for"`
	PointsAgainst float64          `json:"points_against"`
	AveragePoints float64          `json:"average_points"`
	WeeklyScores  []weeklyScoreDTO `json:"weekly_scores"`
	HighestWeek   *weeklyScoreDTO  `json:"highest_week,omitempty"`
	LowestWeek    *weeklyScoreDTO  `json:"lowest_week,omitempty"`
}

func teamStatsToDTO(stats usecase.TeamStats) teamStatsDTO {
	out := teamStatsDTO{
		TeamID:        stats.TeamID,
		TeamName:      stats.TeamName,
		Record:        stats.Record,
		PointsFor:     stats.PointsFor,
		PointsAgainst: stats.PointsAgainst,
		AveragePoints: stats.AveragePoints,
		WeeklyScores:  make([]weeklyScoreDTO, 0, len(stats.WeeklyScores)),
	}
	for _, s := range stats.WeeklyScores {
		out.WeeklyScores = append(out.WeeklyScores, weeklyScoreToDTO(s))
	}
	if stats.HighestWeek != nil {
		high := weeklyScoreToDTO(*stats.HighestWeek)
		out.HighestWeek = &high
	}
	if stats.LowestWeek != nil {
		low := weeklyScoreToDTO(*stats.LowestWeek)
		out.LowestWeek = &low
	}
	return out
}

type matchupDTO struct {
	ID             string  `json:"id"`
	Week           int     `json:"week"`
	HomeTeamID     string  `json:"home_team_id"`
	AwayTeamID     string  `json:"away_team_id"`
	HomeScore      float64 `json:"home_score"`
	AwayScore      float64 `json:"away_score"`
	IsComplete     bool    `json:"is_complete"`
	WinnerTeamID   *string `json:"winner_team_id,omitempty"`
	IsPlayoff      bool    `json:"is_playoff"`
	IsChampionship bool    `json:"is_championship"`
}

func matchupToDTO(m matchup.Matchup) matchupDTO {
	return matchupDTO{
		ID:             m.ID,
		Week:           m.Week,
		HomeTeamID:     m.HomeTeamID,
		AwayTeamID:     m.AwayTeamID,
		HomeScore:      m.HomeScore,
		AwayScore:      m.AwayScore,
		IsComplete:     m.IsComplete,
		WinnerTeamID:   m.WinnerTeamID,
		IsPlayoff:      m.IsPlayoff,
		IsChampionship: m.IsChampionship,
	}
}

type matchupViewDTO struct {
	Matchup      matchupDTO `json:"matchup"`
	HomeTeamName string     `json:"home_team_name"`
	AwayTeamName string     `json:"away_team_name"`
}

func matchupViewToDTO(view usecase.MatchupView) matchupViewDTO {
	return matchupViewDTO{
		Matchup:      matchupToDTO(view.Matchup),
		HomeTeamName: view.HomeTeamName,
		AwayTeamName: view.AwayTeamName,
	}
}

type weekMatchupsDTO struct {
	Week     int              `json:"week"`
	Matchups []matchupViewDTO `json:"matchups"`
}

type matchupDetailsDTO struct {
	Matchup    matchupDTO    `json:"matchup"`
	HomeTeam   teamRosterDTO `json:"home_team"`
	AwayTeam   teamRosterDTO `json:"away_team"`
	HomeRecord string        `json:"home_record"`
	AwayRecord string        `json:"away_record"`
}

type gameStatDTO struct {
	NFLGameID           string  `json:"nfl_game_id"`
	PassingYards        int     `json:"passing_yards"`
	PassingTouchdowns   int     `json:"passing_touchdowns"`
	Interceptions       int     `json:"interceptions"`
	RushingYards        int     `json:"rushing_yards"`
	RushingTouchdowns   int     `json:"rushing_touchdowns"`
	Receptions          int     `json:"receptions"`
	Targets             int     `json:"targets"`
	ReceivingYards      int     `json:"receiving_yards"`
	ReceivingTouchdowns int     `json:"receiving_touchdowns"`
	FumblesLost         int     `json:"fumbles_lost"`
	FieldGoalsMade      int     `json:"field_goals_made"`
	FieldGoalsAttempted int     `json:"field_goals_attempted"`
	ExtraPointsMade     int     `json:"extra_points_made"`
	FantasyPoints       float64 `json:"fantasy_points"`
}

type seasonSummaryDTO struct {
	GamesPlayed         int     `json:"games_played"`
	PassingYards        int     `json:"passing_yards"`
	PassingTouchdowns   int     `json:"passing_touchdowns"`
	Interceptions       int     `json:"interceptions"`
	RushingYards        int     `json:"rushing_yards"`
	RushingTouchdowns   int     `json:"rushing_touchdowns"`
	Receptions          int     `json:"receptions"`
	ReceivingYards      int     `json:"receiving_yards"`
	ReceivingTouchdowns int     `json:"receiving_touchdowns"`
	FumblesLost         int     `json:"fumbles_lost"`
	FantasyPoints       float64 `json:"fantasy_points"`
	AveragePoints       float64 `json:"average_points"`
}

type gameLineDTO struct {
	Week     int         `json:"week,omitempty"`
	Opponent string      `json:"opponent,omitempty"`
	Stats    gameStatDTO `json:"stats"`
}

type defenseGameLineDTO struct {
	Week     int            `json:"week,omitempty"`
	Opponent string         `json:"opponent,omitempty"`
	Stats    defenseStatDTO `json:"stats"`
}

type defenseStatDTO struct {
	NFLGameID        string  `json:"nfl_game_id"`
	Sacks            int     `json:"sacks"`
	Interceptions    int     `json:"interceptions"`
	FumblesRecovered int     `json:"fumbles_recovered"`
	Safeties         int     `json:"safeties"`
	Touchdowns       int     `json:"touchdowns"`
	PointsAllowed    int     `json:"points_allowed"`
	YardsAllowed     int     `json:"yards_allowed"`
	FantasyPoints    float64 `json:"fantasy_points"`
}

type playerSeasonStatsDTO struct {
	PlayerID   string               `json:"player_id"`
	SeasonYear int                  `json:"season_year"`
	Games      []gameLineDTO        `json:"games"`
	Defense    []defenseGameLineDTO `json:"defense,omitempty"`
	Summary    seasonSummaryDTO     `json:"summary"`
}

func playerSeasonStatsToDTO(stats usecase.PlayerSeasonStats) playerSeasonStatsDTO {
	out := playerSeasonStatsDTO{
		PlayerID:   stats.PlayerID,
		SeasonYear: stats.SeasonYear,
		Games:      make([]gameLineDTO, 0, len(stats.Games)),
		Summary:    seasonSummaryToDTO(stats.Summary),
	}
	for _, line := range stats.Games {
		out.Games = append(out.Games, gameLineDTO{
			Week:     line.Week,
			Opponent: line.Opponent,
			Stats:    gameStatToDTO(line.Stats),
		})
	}
	for _, line := range stats.Defense {
		out.Defense = append(out.Defense, defenseGameLineDTO{
			Week:     line.Week,
			Opponent: line.Opponent,
			Stats: defenseStatDTO{
				NFLGameID:        line.Stats.NFLGameID,
				Sacks:            line.Stats.Sacks,
				Interceptions:    line.Stats.Interceptions,
				FumblesRecovered: line.Stats.FumblesRecovered,
				Safeties:         line.Stats.Safeties,
				Touchdowns:       line.Stats.Touchdowns,
				PointsAllowed:    line.Stats.PointsAllowed,
				YardsAllowed:     line.Stats.YardsAllowed,
				FantasyPoints:    line.Stats.FantasyPoints,
			},
		})
	}
	return out
}

func gameStatToDTO(s playerstats.GameStat) gameStatDTO {
	return gameStatDTO{
		NFLGameID:           s.NFLGameID,
		PassingYards:        s.PassingYards,
		PassingTouchdowns:   s.PassingTouchdowns,
		Interceptions:       s.Interceptions,
		RushingYards:        s.RushingYards,
		RushingTouchdowns:   s.RushingTouchdowns,
		Receptions:          s.Receptions,
		Targets:             s.Targets,
		ReceivingYards:      s.ReceivingYards,
		ReceivingTouchdowns: s.ReceivingTouchdowns,
		FumblesLost:         s.FumblesLost,
		FieldGoalsMade:      s.FieldGoalsMade,
		FieldGoalsAttempted: s.FieldGoalsAttempted,
		ExtraPointsMade:     s.ExtraPointsMade,
		FantasyPoints:       s.FantasyPoints,
	}
}

func seasonSummaryToDTO(s playerstats.SeasonSummary) seasonSummaryDTO {
	return seasonSummaryDTO{
		GamesPlayed:         s.GamesPlayed,
		PassingYards:        s.PassingYards,
		PassingTouchdowns:   s.PassingTouchdowns,
		Interceptions:       s.Interceptions,
		RushingYards:        s.RushingYards,
		RushingTouchdowns:   s.RushingTouchdowns,
		Receptions:          s.Receptions,
		ReceivingYards:      s.ReceivingYards,
		ReceivingTouchdowns: s.ReceivingTouchdowns,
		FumblesLost:         s.FumblesLost,
		FantasyPoints:       s.FantasyPoints,
		AveragePoints:       s.AveragePoints,
	}
}

type projectionDTO struct {
	PlayerID                string  `json:"player_id"`
	Week                    int     `json:"week"`
	SeasonYear              int     `json:"season_year"`
	Source                  string  `json:"source,omitempty"`
	ProjectedPassingYards   float64 `json:"projected_passing_yards"`
	ProjectedPassingTDs     float64 `json:"projected_passing_tds"`
	ProjectedRushingYards   float64 `json:"projected_rushing_yards"`
	ProjectedRushingTDs     float64 `json:"projected_rushing_tds"`
	ProjectedReceptions     float64 `json:"projected_receptions"`
	ProjectedReceivingYards float64 `json:"projected_receiving_yards"`
	ProjectedReceivingTDs   float64 `json:"projected_receiving_tds"`
	ProjectedFantasyPoints  float64 `json:"projected_fantasy_points"`
	Confidence              *int    `json:"confidence,omitempty"`
}

func projectionToDTO(p projection.Projection) projectionDTO {
	return projectionDTO{
		PlayerID:                p.PlayerID,
		Week:                    p.Week,
		SeasonYear:              p.SeasonYear,
		Source:                  p.Source,
		ProjectedPassingYards:   p.ProjectedPassingYards,
		ProjectedPassingTDs:     p.ProjectedPassingTDs,
		ProjectedRushingYards:   p.ProjectedRushingYards,
		ProjectedRushingTDs:     p.ProjectedRushingTDs,
		ProjectedReceptions:     p.ProjectedReceptions,
		ProjectedReceivingYards: p.ProjectedReceivingYards,
		ProjectedReceivingTDs:   p.ProjectedReceivingTDs,
		ProjectedFantasyPoints:  p.ProjectedFantasyPoints,
		Confidence:              p.Confidence,
	}
}

func projectionsToDTO(items []projection.Projection) []projectionDTO {
	out := make([]projectionDTO, 0, len(items))
	for _, item := range items {
		out = append(out, projectionToDTO(item))
	}
	return out
}

type rankingDTO struct {
	PlayerID   string `json:"player_id"`
	Position   string `json:"position"`
	Source     string `json:"source,omitempty"`
	Rank       int    `json:"rank"`
	Week       *int   `json:"week,omitempty"`
	SeasonYear int    `json:"season_year"`
	Tier       *int   `json:"tier,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

func rankingToDTO(r ranking.Ranking) rankingDTO {
	return rankingDTO{
		PlayerID:   r.PlayerID,
		Position:   r.Position,
		Source:     r.Source,
		Rank:       r.Rank,
		Week:       r.Week,
		SeasonYear: r.SeasonYear,
		Tier:       r.Tier,
		Notes:      r.Notes,
	}
}

func rankingsToDTO(items []ranking.Ranking) []rankingDTO {
	out := make([]rankingDTO, 0, len(items))
	for _, item := range items {
		out = append(out, rankingToDTO(item))
	}
	return out
}

type playerComparisonDTO struct {
	Player            playerDTO       `json:"player"`
	RecentProjections []projectionDTO `json:"recent_projections"`
	RecentRankings    []rankingDTO    `json:"recent_rankings"`
}

func playerComparisonToDTO(c usecase.PlayerComparison) playerComparisonDTO {
	return playerComparisonDTO{
		Player:            playerToDTO(c.Player),
		RecentProjections: projectionsToDTO(c.RecentProjections),
		RecentRankings:    rankingsToDTO(c.RecentRankings),
	}
}

type tradeProposalDTO struct {
	ID              string     `json:"id"`
	ProposingTeamID string     `json:"proposing_team_id"`
	ReceivingTeamID string     `json:"receiving_team_id"`
	Status          string     `json:"status"`
	ProposedAt      time.Time  `json:"proposed_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

type tradeItemDTO struct {
	FromTeamID     string  `json:"from_team_id"`
	ToTeamID       string  `json:"to_team_id"`
	PlayerID       *string `json:"player_id,omitempty"`
	DraftPickRound *int    `json:"draft_pick_round,omitempty"`
	DraftPickYear  *int    `json:"draft_pick_year,omitempty"`
}

type tradeAnalysisDTO struct {
	ProposingValue    float64 `json:"proposing_value"`
	ReceivingValue    float64 `json:"receiving_value"`
	RosterImprovement float64 `json:"roster_improvement"`
	IsBalanced        bool    `json:"is_balanced"`
	Notes             string  `json:"notes,omitempty"`
}

type tradeProposalViewDTO struct {
	Proposal tradeProposalDTO  `json:"proposal"`
	Items    []tradeItemDTO    `json:"items"`
	Analysis *tradeAnalysisDTO `json:"analysis,omitempty"`
}

func tradeProposalViewToDTO(view usecase.ProposalView) tradeProposalViewDTO {
	out := tradeProposalViewDTO{
		Proposal: tradeProposalDTO{
			ID:              view.Proposal.ID,
			ProposingTeamID: view.Proposal.ProposingTeamID,
			ReceivingTeamID: view.Proposal.ReceivingTeamID,
			Status:          string(view.Proposal.Status),
			ProposedAt:      view.Proposal.ProposedAt,
			ExpiresAt:       view.Proposal.ExpiresAt,
			Notes:           view.Proposal.Notes,
		},
		Items: make([]tradeItemDTO, 0, len(view.Items)),
	}
	for _, item := range view.Items {
		out.Items = append(out.Items, tradeItemToDTO(item))
	}
	if view.Analysis != nil {
		analysis := tradeAnalysisDTO{
			ProposingValue:    view.Analysis.ProposingValue,
			ReceivingValue:    view.Analysis.ReceivingValue,
			RosterImprovement: view.Analysis.RosterImprovement,
			IsBalanced:        view.Analysis.IsBalanced,
			Notes:             view.Analysis.Notes,
		}
		out.Analysis = &analysis
	}
	return out
}

func tradeItemToDTO(item trade.Item) tradeItemDTO {
	return tradeItemDTO{
		FromTeamID:     item.FromTeamID,
		ToTeamID:       item.ToTeamID,
		PlayerID:       item.PlayerID,
		DraftPickRound: item.DraftPickRound,
		DraftPickYear:  item.DraftPickYear,
	}
}

type waiverPriorityDTO struct {
	FantasyTeamID string `json:"fantasy_team_id"`
	TeamName      string `json:"team_name,omitempty"`
	Record        string `json:"record,omitempty"`
	PriorityOrder int    `json:"priority_order"`
	SeasonYear    int    `json:"season_year"`
}

func waiverPriorityToDTO(entry usecase.PriorityEntry) waiverPriorityDTO {
	return waiverPriorityDTO{
		FantasyTeamID: entry.Priority.FantasyTeamID,
		TeamName:      entry.TeamName,
		Record:        entry.Record,
		PriorityOrder: entry.Priority.PriorityOrder,
		SeasonYear:    entry.Priority.SeasonYear,
	}
}

type waiverRecommendationDTO struct {
	Player          playerDTO `json:"player"`
	Week            int       `json:"week"`
	Reason          string    `json:"reason"`
	Priority        string    `json:"priority"`
	ProjectedImpact float64   `json:"projected_impact"`
}

func waiverRecommendationToDTO(view usecase.RecommendationView) waiverRecommendationDTO {
	return waiverRecommendationDTO{
		Player:          playerToDTO(view.Player),
		Week:            view.Recommendation.Week,
		Reason:          view.Recommendation.Reason,
		Priority:        string(view.Recommendation.Priority),
		ProjectedImpact: view.Recommendation.ProjectedImpact,
	}
}
