package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/game"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/nflteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/playerstats"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/ranking"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/teamstats"
)

const (
	compareProjectionLimit = 5
	compareRankingLimit    = 3
)

// PlayerDetails joins a player with the fantasy team that rosters them.
type PlayerDetails struct {
	Player      player.Player            `json:"player"`
	FantasyTeam *fantasyteam.FantasyTeam `json:"fantasy_team,omitempty"`
}

// PlayerComparison is one side of a multi-player comparison.
type PlayerComparison struct {
	Player            player.Player           `json:"player"`
	RecentProjections []projection.Projection `json:"recent_projections"`
	RecentRankings    []ranking.Ranking       `json:"recent_rankings"`
}

// GameLine is one stat line joined with its NFL schedule context.
type GameLine struct {
	Stats    playerstats.GameStat `json:"stats"`
	Week     int                  `json:"week,omitempty"`
	Opponent string               `json:"opponent,omitempty"`
}

// DefenseGameLine is one team defense line with schedule context, used
// for players rostered at DEF.
type DefenseGameLine struct {
	Stats    teamstats.DefenseGameStat `json:"stats"`
	Week     int                       `json:"week,omitempty"`
	Opponent string                    `json:"opponent,omitempty"`
}

// PlayerSeasonStats is a player's per-game lines plus season totals.
type PlayerSeasonStats struct {
	PlayerID   string                    `json:"player_id"`
	SeasonYear int                       `json:"season_year"`
	Games      []GameLine                `json:"games"`
	Defense    []DefenseGameLine         `json:"defense,omitempty"`
	Summary    playerstats.SeasonSummary `json:"summary"`
}

// PlayerService serves player pool views.
type PlayerService struct {
	playerRepo       player.Repository
	rosterRepo       roster.Repository
	teamRepo         fantasyteam.Repository
	projectionRepo   projection.Repository
	rankingRepo      ranking.Repository
	statsRepo        playerstats.Repository
	gameRepo         game.Repository
	defenseStatsRepo teamstats.Repository
	nflTeamRepo      nflteam.Repository
}

func NewPlayerService(
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	teamRepo fantasyteam.Repository,
	projectionRepo projection.Repository,
	rankingRepo ranking.Repository,
	statsRepo playerstats.Repository,
	gameRepo game.Repository,
	defenseStatsRepo teamstats.Repository,
	nflTeamRepo nflteam.Repository,
) *PlayerService {
	return &PlayerService{
		playerRepo:       playerRepo,
		rosterRepo:       rosterRepo,
		teamRepo:         teamRepo,
		projectionRepo:   projectionRepo,
		rankingRepo:      rankingRepo,
		statsRepo:        statsRepo,
		gameRepo:         gameRepo,
		defenseStatsRepo: defenseStatsRepo,
		nflTeamRepo:      nflTeamRepo,
	}
}

func (s *PlayerService) List(ctx context.Context, position string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	position, err := normalizePosition(position)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.List(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return players, nil
}

// ListAvailable returns unrostered active players grouped by position.
func (s *PlayerService) ListAvailable(ctx context.Context, position string) (map[string][]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListAvailable")
	defer span.End()

	position, err := normalizePosition(position)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListAvailable(ctx, position)
	if err != nil {
		return nil, fmt.Errorf("list available players: %w", err)
	}

	grouped := make(map[string][]player.Player)
	for _, p := range players {
		grouped[string(p.Position)] = append(grouped[string(p.Position)], p)
	}

	return grouped, nil
}

func (s *PlayerService) GetDetails(ctx context.Context, playerID string) (PlayerDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetDetails")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerDetails{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return PlayerDetails{}, fmt.Errorf("get player: %w", err)
	}
	if !found {
		return PlayerDetails{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	out := PlayerDetails{Player: p}

	teamIDs, err := s.rosterRepo.TeamIDsForPlayers(ctx, []string{p.ID})
	if err != nil {
		return PlayerDetails{}, fmt.Errorf("resolve roster team: %w", err)
	}
	if teamID, rostered := teamIDs[p.ID]; rostered {
		team, teamFound, err := s.teamRepo.GetByID(ctx, teamID)
		if err != nil {
			return PlayerDetails{}, fmt.Errorf("get fantasy team: %w", err)
		}
		if teamFound {
			out.FantasyTeam = &team
		}
	}

	return out, nil
}

func (s *PlayerService) Projections(ctx context.Context, playerID string, week int) ([]projection.Projection, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Projections")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if week < 0 || week > 21 {
		return nil, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, week)
	}

	if _, err := s.GetDetails(ctx, playerID); err != nil {
		return nil, err
	}

	items, err := s.projectionRepo.ListByPlayer(ctx, playerID, week)
	if err != nil {
		return nil, fmt.Errorf("list projections: %w", err)
	}

	return items, nil
}

func (s *PlayerService) SeasonStats(ctx context.Context, playerID string, seasonYear int) (PlayerSeasonStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SeasonStats")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return PlayerSeasonStats{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	details, err := s.GetDetails(ctx, playerID)
	if err != nil {
		return PlayerSeasonStats{}, err
	}
	p := details.Player

	schedule, err := s.seasonSchedule(ctx, seasonYear)
	if err != nil {
		return PlayerSeasonStats{}, err
	}

	out := PlayerSeasonStats{
		PlayerID:   playerID,
		SeasonYear: seasonYear,
		Games:      []GameLine{},
	}

	// DEF slots are backed by team defense lines, not athlete stats.
	if p.Position == player.PositionDEF && p.NFLTeamID != nil {
		lines, err := s.defenseStatsRepo.ListByTeam(ctx, *p.NFLTeamID, seasonYear)
		if err != nil {
			return PlayerSeasonStats{}, fmt.Errorf("list defense game stats: %w", err)
		}
		for _, line := range lines {
			week, opponent := schedule.context(line.NFLGameID, *p.NFLTeamID)
			out.Defense = append(out.Defense, DefenseGameLine{Stats: line, Week: week, Opponent: opponent})
			out.Summary.FantasyPoints += line.FantasyPoints
		}
		out.Summary.GamesPlayed = len(lines)
		if out.Summary.GamesPlayed > 0 {
			out.Summary.AveragePoints = out.Summary.FantasyPoints / float64(out.Summary.GamesPlayed)
		}
		return out, nil
	}

	games, err := s.statsRepo.ListByPlayer(ctx, playerID, seasonYear)
	if err != nil {
		return PlayerSeasonStats{}, fmt.Errorf("list player game stats: %w", err)
	}
	for _, stat := range games {
		line := GameLine{Stats: stat}
		if p.NFLTeamID != nil {
			line.Week, line.Opponent = schedule.context(stat.NFLGameID, *p.NFLTeamID)
		}
		out.Games = append(out.Games, line)
	}
	out.Summary = playerstats.Summarize(games)

	return out, nil
}

// seasonSchedule indexes one season's NFL games for opponent lookups.
type seasonSchedule struct {
	games      map[string]game.NFLGame
	codeByTeam map[string]string
}

func (s *PlayerService) seasonSchedule(ctx context.Context, seasonYear int) (seasonSchedule, error) {
	games, err := s.gameRepo.ListBySeason(ctx, seasonYear)
	if err != nil {
		return seasonSchedule{}, fmt.Errorf("list nfl games: %w", err)
	}
	teams, err := s.nflTeamRepo.List(ctx)
	if err != nil {
		return seasonSchedule{}, fmt.Errorf("list nfl teams: %w", err)
	}

	out := seasonSchedule{
		games:      make(map[string]game.NFLGame, len(games)),
		codeByTeam: make(map[string]string, len(teams)),
	}
	for _, g := range games {
		out.games[g.ID] = g
	}
	for _, t := range teams {
		out.codeByTeam[t.ID] = t.Code
	}

	return out, nil
}

func (s seasonSchedule) context(gameID, nflTeamID string) (int, string) {
	g, ok := s.games[gameID]
	if !ok {
		return 0, ""
	}
	opponentID := g.HomeNFLTeamID
	if nflTeamID == g.HomeNFLTeamID {
		opponentID = g.AwayNFLTeamID
	}
	return g.Week, s.codeByTeam[opponentID]
}

func (s *PlayerService) Rankings(ctx context.Context, position string, week *int) ([]ranking.Ranking, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Rankings")
	defer span.End()

	position, err := normalizePosition(position)
	if err != nil {
		return nil, err
	}
	if week != nil && (*week < 1 || *week > 21) {
		return nil, fmt.Errorf("%w: week %d out of range", ErrInvalidInput, *week)
	}

	items, err := s.rankingRepo.List(ctx, position, week)
	if err != nil {
		return nil, fmt.Errorf("list rankings: %w", err)
	}

	return items, nil
}

// Compare loads at least two players side by side with their recent
// projections and rankings.
func (s *PlayerService) Compare(ctx context.Context, playerIDs []string) ([]PlayerComparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Compare")
	defer span.End()

	ids := make([]string, 0, len(playerIDs))
	seen := make(map[string]struct{}, len(playerIDs))
	for _, raw := range playerIDs {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		ids = append(ids, trimmed)
	}
	if len(ids) < 2 {
		return nil, fmt.Errorf("%w: at least two player ids are required", ErrInvalidInput)
	}

	players, err := s.playerRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	if len(players) != len(ids) {
		return nil, fmt.Errorf("%w: one or more players do not exist", ErrNotFound)
	}

	out := make([]PlayerComparison, 0, len(players))
	for _, p := range players {
		projections, err := s.projectionRepo.ListRecentByPlayer(ctx, p.ID, compareProjectionLimit)
		if err != nil {
			return nil, fmt.Errorf("list recent projections for %s: %w", p.ID, err)
		}
		rankings, err := s.rankingRepo.ListRecentByPlayer(ctx, p.ID, compareRankingLimit)
		if err != nil {
			return nil, fmt.Errorf("list recent rankings for %s: %w", p.ID, err)
		}
		out = append(out, PlayerComparison{
			Player:            p,
			RecentProjections: projections,
			RecentRankings:    rankings,
		})
	}

	return out, nil
}

func normalizePosition(position string) (string, error) {
	position = strings.ToUpper(strings.TrimSpace(position))
	if position == "" {
		return "", nil
	}
	if _, ok := player.AllPositions[player.Position(position)]; !ok {
		return "", fmt.Errorf("%w: invalid position %s", ErrInvalidInput, position)
	}
	return position, nil
}
