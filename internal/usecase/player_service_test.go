package usecase

import (
	"errors"
	"testing"

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

type playerServiceFixture struct {
	svc            *PlayerService
	playerRepo     *stubPlayerRepo
	rosterRepo     *stubRosterRepo
	teamRepo       *stubTeamRepo
	projectionRepo *stubProjectionRepo
	rankingRepo    *stubRankingRepo
	statsRepo      *stubStatsRepo
	gameRepo       *stubGameRepo
	defenseRepo    *stubDefenseStatsRepo
	nflTeamRepo    *stubNFLTeamRepo
}

func newPlayerServiceFixture() *playerServiceFixture {
	f := &playerServiceFixture{
		playerRepo:     &stubPlayerRepo{availableIDs: map[string]bool{}},
		rosterRepo:     &stubRosterRepo{},
		teamRepo:       &stubTeamRepo{},
		projectionRepo: &stubProjectionRepo{},
		rankingRepo:    &stubRankingRepo{ranks: map[string]int{}},
		statsRepo:      &stubStatsRepo{},
		gameRepo:       &stubGameRepo{},
		defenseRepo:    &stubDefenseStatsRepo{},
		nflTeamRepo:    &stubNFLTeamRepo{},
	}
	f.svc = NewPlayerService(f.playerRepo, f.rosterRepo, f.teamRepo, f.projectionRepo,
		f.rankingRepo, f.statsRepo, f.gameRepo, f.defenseRepo, f.nflTeamRepo)
	return f
}

func TestPlayerService_List_NormalizesPosition(t *testing.T) {
	f := newPlayerServiceFixture()
	f.playerRepo.players = []player.Player{
		{ID: "p1", Name: "Pocket Passer", Position: player.PositionQB},
		{ID: "p2", Name: "Workhorse Back", Position: player.PositionRB},
	}

	players, err := f.svc.List(t.Context(), "qb")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(players) != 1 || players[0].ID != "p1" {
		t.Fatalf("unexpected players: %+v", players)
	}

	if _, err := f.svc.List(t.Context(), "CB"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown position, got %v", err)
	}
}

func TestPlayerService_ListAvailable_GroupsByPosition(t *testing.T) {
	f := newPlayerServiceFixture()
	f.playerRepo.players = []player.Player{
		{ID: "p1", Name: "Free RB One", Position: player.PositionRB},
		{ID: "p2", Name: "Free RB Two", Position: player.PositionRB},
		{ID: "p3", Name: "Free WR", Position: player.PositionWR},
		{ID: "p4", Name: "Rostered WR", Position: player.PositionWR},
	}
	f.playerRepo.availableIDs = map[string]bool{"p1": true, "p2": true, "p3": true}

	grouped, err := f.svc.ListAvailable(t.Context(), "")
	if err != nil {
		t.Fatalf("list available failed: %v", err)
	}

	if len(grouped["RB"]) != 2 {
		t.Fatalf("expected 2 available RBs, got %d", len(grouped["RB"]))
	}
	if len(grouped["WR"]) != 1 {
		t.Fatalf("expected 1 available WR, got %d", len(grouped["WR"]))
	}
}

func TestPlayerService_GetDetails_ResolvesFantasyTeam(t *testing.T) {
	f := newPlayerServiceFixture()
	f.playerRepo.players = []player.Player{
		{ID: "p1", Name: "Rostered Star", Position: player.PositionWR},
		{ID: "p2", Name: "Free Agent", Position: player.PositionTE},
	}
	f.teamRepo.teams = []fantasyteam.FantasyTeam{{ID: "t1", TeamName: "Owners"}}
	f.rosterRepo.entries = []roster.Entry{
		{ID: "r1", FantasyTeamID: "t1", PlayerID: "p1"},
	}

	details, err := f.svc.GetDetails(t.Context(), "p1")
	if err != nil {
		t.Fatalf("get details failed: %v", err)
	}
	if details.FantasyTeam == nil || details.FantasyTeam.ID != "t1" {
		t.Fatalf("expected fantasy team t1, got %+v", details.FantasyTeam)
	}

	details, err = f.svc.GetDetails(t.Context(), "p2")
	if err != nil {
		t.Fatalf("get details failed: %v", err)
	}
	if details.FantasyTeam != nil {
		t.Fatalf("free agent should have no fantasy team, got %+v", details.FantasyTeam)
	}

	if _, err := f.svc.GetDetails(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerService_Projections_Validation(t *testing.T) {
	f := newPlayerServiceFixture()
	f.playerRepo.players = []player.Player{{ID: "p1", Name: "Projected", Position: player.PositionQB}}
	f.projectionRepo.projections = []projection.Projection{
		{ID: "pr1", PlayerID: "p1", Week: 3, SeasonYear: 2025, ProjectedFantasyPoints: 18.5},
		{ID: "pr2", PlayerID: "p1", Week: 4, SeasonYear: 2025, ProjectedFantasyPoints: 21.0},
	}

	if _, err := f.svc.Projections(t.Context(), "p1", 25); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for week 25, got %v", err)
	}

	items, err := f.svc.Projections(t.Context(), "p1", 3)
	if err != nil {
		t.Fatalf("projections failed: %v", err)
	}
	if len(items) != 1 || items[0].ID != "pr1" {
		t.Fatalf("unexpected projections: %+v", items)
	}
}

func TestPlayerService_SeasonStats_Summarizes(t *testing.T) {
	f := newPlayerServiceFixture()
	nflKC := "nfl-kc"
	f.playerRepo.players = []player.Player{{ID: "p1", Name: "Volume Back", Position: player.PositionRB, NFLTeamID: &nflKC}}
	f.statsRepo.stats = []playerstats.GameStat{
		{ID: "g1", PlayerID: "p1", NFLGameID: "game-1", RushingYards: 110, RushingTouchdowns: 1, FantasyPoints: 17},
		{ID: "g2", PlayerID: "p1", NFLGameID: "game-2", RushingYards: 80, FantasyPoints: 8},
	}
	f.nflTeamRepo.teams = []nflteam.NFLTeam{
		{ID: "nfl-kc", Code: "KC", Name: "Chiefs"},
		{ID: "nfl-sf", Code: "SF", Name: "49ers"},
	}
	f.gameRepo.games = []game.NFLGame{
		{ID: "game-1", SeasonYear: 2025, Week: 1, HomeNFLTeamID: "nfl-kc", AwayNFLTeamID: "nfl-sf", Status: game.StatusFinal},
		{ID: "game-2", SeasonYear: 2025, Week: 2, HomeNFLTeamID: "nfl-sf", AwayNFLTeamID: "nfl-kc", Status: game.StatusFinal},
	}

	stats, err := f.svc.SeasonStats(t.Context(), "p1", 2025)
	if err != nil {
		t.Fatalf("season stats failed: %v", err)
	}

	if stats.Summary.GamesPlayed != 2 {
		t.Fatalf("unexpected games played: %d", stats.Summary.GamesPlayed)
	}
	if stats.Summary.RushingYards != 190 {
		t.Fatalf("unexpected rushing yards: %d", stats.Summary.RushingYards)
	}
	if stats.Summary.AveragePoints != 12.5 {
		t.Fatalf("unexpected average points: %.2f", stats.Summary.AveragePoints)
	}
	if stats.Games[0].Week != 1 || stats.Games[0].Opponent != "SF" {
		t.Fatalf("unexpected schedule context: %+v", stats.Games[0])
	}
	if stats.Games[1].Week != 2 || stats.Games[1].Opponent != "SF" {
		t.Fatalf("unexpected schedule context: %+v", stats.Games[1])
	}
}

func TestPlayerService_SeasonStats_DefenseUsesTeamLines(t *testing.T) {
	f := newPlayerServiceFixture()
	nflSF := "nfl-sf"
	f.playerRepo.players = []player.Player{{ID: "d1", Name: "49ers D/ST", Position: player.PositionDEF, NFLTeamID: &nflSF}}
	f.defenseRepo.stats = []teamstats.DefenseGameStat{
		{ID: "ds1", NFLTeamID: "nfl-sf", NFLGameID: "game-1", Sacks: 4, Interceptions: 2, PointsAllowed: 10, FantasyPoints: 12},
		{ID: "ds2", NFLTeamID: "nfl-sf", NFLGameID: "game-2", Sacks: 1, PointsAllowed: 28, FantasyPoints: 2},
	}
	f.nflTeamRepo.teams = []nflteam.NFLTeam{
		{ID: "nfl-sf", Code: "SF", Name: "49ers"},
		{ID: "nfl-dal", Code: "DAL", Name: "Cowboys"},
	}
	f.gameRepo.games = []game.NFLGame{
		{ID: "game-1", SeasonYear: 2025, Week: 1, HomeNFLTeamID: "nfl-sf", AwayNFLTeamID: "nfl-dal", Status: game.StatusFinal},
		{ID: "game-2", SeasonYear: 2025, Week: 2, HomeNFLTeamID: "nfl-dal", AwayNFLTeamID: "nfl-sf", Status: game.StatusFinal},
	}

	stats, err := f.svc.SeasonStats(t.Context(), "d1", 2025)
	if err != nil {
		t.Fatalf("season stats failed: %v", err)
	}

	if len(stats.Games) != 0 {
		t.Fatalf("defense players should carry no athlete lines, got %d", len(stats.Games))
	}
	if len(stats.Defense) != 2 {
		t.Fatalf("expected 2 defense lines, got %d", len(stats.Defense))
	}
	if stats.Defense[0].Week != 1 || stats.Defense[0].Opponent != "DAL" {
		t.Fatalf("unexpected defense context: %+v", stats.Defense[0])
	}
	if stats.Summary.GamesPlayed != 2 || stats.Summary.FantasyPoints != 14 {
		t.Fatalf("unexpected defense summary: %+v", stats.Summary)
	}
	if stats.Summary.AveragePoints != 7 {
		t.Fatalf("unexpected defense average: %.1f", stats.Summary.AveragePoints)
	}
}

func TestPlayerService_Rankings_WeekOutOfRange(t *testing.T) {
	f := newPlayerServiceFixture()

	if _, err := f.svc.Rankings(t.Context(), "RB", intPtr(0)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for week 0, got %v", err)
	}
}

func TestPlayerService_Compare(t *testing.T) {
	f := newPlayerServiceFixture()
	f.playerRepo.players = []player.Player{
		{ID: "p1", Name: "First WR", Position: player.PositionWR},
		{ID: "p2", Name: "Second WR", Position: player.PositionWR},
	}
	f.projectionRepo.projections = []projection.Projection{
		{ID: "pr1", PlayerID: "p1", Week: 5, SeasonYear: 2025, ProjectedFantasyPoints: 14},
	}
	f.rankingRepo.rankings = []ranking.Ranking{
		{ID: "rk1", PlayerID: "p2", Position: "WR", Rank: 12, SeasonYear: 2025},
	}

	if _, err := f.svc.Compare(t.Context(), []string{"p1", " p1 ", ""}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate ids, got %v", err)
	}
	if _, err := f.svc.Compare(t.Context(), []string{"p1", "ghost"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	out, err := f.svc.Compare(t.Context(), []string{"p1", "p2"})
	if err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 comparisons, got %d", len(out))
	}
	byID := map[string]PlayerComparison{}
	for _, c := range out {
		byID[c.Player.ID] = c
	}
	if len(byID["p1"].RecentProjections) != 1 {
		t.Fatalf("expected one projection for p1, got %d", len(byID["p1"].RecentProjections))
	}
	if len(byID["p2"].RecentRankings) != 1 {
		t.Fatalf("expected one ranking for p2, got %d", len(byID["p2"].RecentRankings))
	}
}
