package usecase

import (
	"errors"
	"testing"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
)

func newAnalyticsServiceFixture() (*AnalyticsService, *stubTeamRepo, *stubMatchupRepo, *stubPlayerRepo, *stubRosterRepo, *stubProjectionRepo) {
	teamRepo := &stubTeamRepo{}
	matchupRepo := &stubMatchupRepo{}
	playerRepo := &stubPlayerRepo{availableIDs: map[string]bool{}}
	rosterRepo := &stubRosterRepo{}
	projectionRepo := &stubProjectionRepo{}
	svc := NewAnalyticsService(teamRepo, matchupRepo, playerRepo, rosterRepo, projectionRepo, nil)
	return svc, teamRepo, matchupRepo, playerRepo, rosterRepo, projectionRepo
}

func TestAnalyticsService_League(t *testing.T) {
	svc, teamRepo, matchupRepo, playerRepo, _, _ := newAnalyticsServiceFixture()
	teamRepo.teams = []fantasyteam.FantasyTeam{
		{ID: "t1", TeamName: "Alpha", Wins: 2, PointsFor: 150, PointsAgainst: 70},
		{ID: "t2", TeamName: "Beta", Losses: 2, PointsFor: 70, PointsAgainst: 150},
		{ID: "t3", TeamName: "Gamma", Wins: 1, Losses: 1, PointsFor: 101, PointsAgainst: 99},
		{ID: "t4", TeamName: "Delta", Wins: 1, Losses: 1, PointsFor: 99, PointsAgainst: 101},
	}
	playerRepo.players = []player.Player{
		{ID: "p1", Position: player.PositionQB, IsActive: true},
		{ID: "p2", Position: player.PositionRB, IsActive: true},
		{ID: "p3", Position: player.PositionRB, IsActive: true},
		{ID: "p4", Position: player.PositionWR},
	}
	matchupRepo.matchups = []matchup.Matchup{
		{ID: "m1", Week: 1, HomeTeamID: "t1", AwayTeamID: "t2", HomeScore: 150, AwayScore: 70, IsComplete: true},
		{ID: "m2", Week: 1, HomeTeamID: "t3", AwayTeamID: "t4", HomeScore: 101, AwayScore: 99, IsComplete: true},
		{ID: "m3", Week: 2, HomeTeamID: "t1", AwayTeamID: "t3", HomeScore: 0, AwayScore: 0},
	}

	out, err := svc.League(t.Context())
	if err != nil {
		t.Fatalf("league analytics failed: %v", err)
	}

	if out.CompletedMatchups != 2 {
		t.Fatalf("expected 2 completed matchups, got %d", out.CompletedMatchups)
	}
	if out.TotalPoints != 420 {
		t.Fatalf("unexpected total points: %.1f", out.TotalPoints)
	}
	if out.AverageScore != 105 {
		t.Fatalf("unexpected average score: %.1f", out.AverageScore)
	}
	if out.HighestScore == nil || out.HighestScore.TeamID != "t1" || out.HighestScore.Score != 150 {
		t.Fatalf("unexpected highest score: %+v", out.HighestScore)
	}
	if out.LowestScore == nil || out.LowestScore.TeamID != "t2" {
		t.Fatalf("unexpected lowest score: %+v", out.LowestScore)
	}
	if out.ClosestMatchup == nil || out.ClosestMatchup.MatchupID != "m2" || out.ClosestMatchup.Margin != 2 {
		t.Fatalf("unexpected closest matchup: %+v", out.ClosestMatchup)
	}
	if out.BiggestBlowout == nil || out.BiggestBlowout.MatchupID != "m1" || out.BiggestBlowout.Margin != 80 {
		t.Fatalf("unexpected biggest blowout: %+v", out.BiggestBlowout)
	}

	if out.TotalTeams != 4 {
		t.Fatalf("expected 4 teams, got %d", out.TotalTeams)
	}
	// The inactive receiver is excluded from the pool counts.
	if out.TotalActivePlayers != 3 {
		t.Fatalf("expected 3 active players, got %d", out.TotalActivePlayers)
	}
	if out.PositionDistribution[player.PositionQB] != 1 || out.PositionDistribution[player.PositionRB] != 2 {
		t.Fatalf("unexpected position distribution: %+v", out.PositionDistribution)
	}
	if out.PositionDistribution[player.PositionWR] != 0 {
		t.Fatalf("inactive player counted in distribution: %+v", out.PositionDistribution)
	}

	if len(out.TeamMetrics) != 4 {
		t.Fatalf("expected 4 team metrics, got %d", len(out.TeamMetrics))
	}
	// Metrics order by season points scored.
	if out.TeamMetrics[0].TeamName != "Alpha" || out.TeamMetrics[3].TeamName != "Beta" {
		t.Fatalf("unexpected metric order: %+v", out.TeamMetrics)
	}
	if out.TeamMetrics[0].WinPercentage != 1 || out.TeamMetrics[0].AveragePoints != 75 {
		t.Fatalf("unexpected leader metrics: %+v", out.TeamMetrics[0])
	}
	if out.HighestScoringTeam == nil || out.HighestScoringTeam.TeamID != "t1" {
		t.Fatalf("unexpected highest scoring team: %+v", out.HighestScoringTeam)
	}
	if out.LowestScoringTeam == nil || out.LowestScoringTeam.TeamID != "t2" {
		t.Fatalf("unexpected lowest scoring team: %+v", out.LowestScoringTeam)
	}
}

func TestAnalyticsService_League_NoCompletedMatchups(t *testing.T) {
	svc, _, matchupRepo, _, _, _ := newAnalyticsServiceFixture()
	matchupRepo.matchups = []matchup.Matchup{
		{ID: "m1", Week: 1, HomeTeamID: "t1", AwayTeamID: "t2"},
	}

	out, err := svc.League(t.Context())
	if err != nil {
		t.Fatalf("league analytics failed: %v", err)
	}
	if out.CompletedMatchups != 0 || out.AverageScore != 0 || out.HighestScore != nil {
		t.Fatalf("expected empty summary, got %+v", out)
	}
}

func TestAnalyticsService_Positional(t *testing.T) {
	svc, _, _, playerRepo, rosterRepo, _ := newAnalyticsServiceFixture()
	playerRepo.players = []player.Player{
		{ID: "qb1", Position: player.PositionQB},
		{ID: "qb2", Position: player.PositionQB},
		{ID: "rb1", Position: player.PositionRB},
		{ID: "rb2", Position: player.PositionRB},
		{ID: "rb3", Position: player.PositionRB},
		{ID: "rb4", Position: player.PositionRB},
	}
	rosterRepo.entries = []roster.Entry{
		{ID: "r1", FantasyTeamID: "t1", PlayerID: "qb1"},
		{ID: "r2", FantasyTeamID: "t1", PlayerID: "qb2"},
		{ID: "r3", FantasyTeamID: "t1", PlayerID: "rb1"},
		{ID: "r4", FantasyTeamID: "t2", PlayerID: "rb2"},
	}

	out, err := svc.Positional(t.Context())
	if err != nil {
		t.Fatalf("positional analytics failed: %v", err)
	}

	if len(out) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(out))
	}
	// QB pool is fully rostered so it sorts first.
	if out[0].Position != player.PositionQB || out[0].Scarcity != "High" {
		t.Fatalf("unexpected first position: %+v", out[0])
	}
	if out[0].RosteredShare != 1 {
		t.Fatalf("unexpected QB share: %.2f", out[0].RosteredShare)
	}
	if out[1].Position != player.PositionRB || out[1].Scarcity != "Low" {
		t.Fatalf("unexpected second position: %+v", out[1])
	}
	if out[1].Rostered != 2 || out[1].TotalPlayers != 4 {
		t.Fatalf("unexpected RB counts: %+v", out[1])
	}
}

func TestAnalyticsService_OptimalLineups(t *testing.T) {
	svc, teamRepo, _, playerRepo, rosterRepo, projectionRepo := newAnalyticsServiceFixture()
	teamRepo.teams = []fantasyteam.FantasyTeam{{ID: "t1", TeamName: "Optimizers"}}

	rosterPlayers := []struct {
		id       string
		position player.Position
		points   float64
		starting bool
	}{
		{"qb1", player.PositionQB, 20, true},
		{"rb1", player.PositionRB, 15, true},
		{"rb2", player.PositionRB, 12, true},
		{"rb3", player.PositionRB, 9, false},
		{"wr1", player.PositionWR, 14, true},
		{"wr2", player.PositionWR, 11, true},
		{"wr3", player.PositionWR, 5, false},
		{"te1", player.PositionTE, 8, true},
		{"k1", player.PositionK, 7, true},
		{"def1", player.PositionDEF, 6, true},
	}
	for i, rp := range rosterPlayers {
		playerRepo.players = append(playerRepo.players, player.Player{
			ID:       rp.id,
			Name:     rp.id,
			Position: rp.position,
		})
		rosterRepo.entries = append(rosterRepo.entries, roster.Entry{
			ID:            rp.id + "-entry",
			FantasyTeamID: "t1",
			PlayerID:      rp.id,
			IsStarting:    rp.starting,
		})
		projectionRepo.projections = append(projectionRepo.projections, projection.Projection{
			ID:                     rp.id + "-proj",
			PlayerID:               rp.id,
			Week:                   4,
			SeasonYear:             2025,
			ProjectedFantasyPoints: rp.points,
			Confidence:             intPtr(5 + i%3),
		})
	}

	if _, err := svc.OptimalLineups(t.Context(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for week 0, got %v", err)
	}

	lineups, err := svc.OptimalLineups(t.Context(), 4)
	if err != nil {
		t.Fatalf("optimal lineups failed: %v", err)
	}
	if len(lineups) != 1 {
		t.Fatalf("expected 1 lineup, got %d", len(lineups))
	}

	lineup := lineups[0]
	if len(lineup.Slots) != 9 {
		t.Fatalf("expected 9 filled slots, got %d", len(lineup.Slots))
	}

	picks := map[string]LineupSlotPick{}
	for _, slot := range lineup.Slots {
		picks[slot.Slot] = slot
	}
	if picks["QB"].PlayerID != "qb1" {
		t.Fatalf("unexpected QB pick: %+v", picks["QB"])
	}
	if picks["RB1"].PlayerID != "rb1" || picks["RB2"].PlayerID != "rb2" {
		t.Fatalf("unexpected RB picks: %+v / %+v", picks["RB1"], picks["RB2"])
	}
	// The bench rb3 outprojects wr3 and te1, so it takes FLEX.
	if picks["FLEX"].PlayerID != "rb3" {
		t.Fatalf("unexpected FLEX pick: %+v", picks["FLEX"])
	}
	if picks["FLEX"].IsStarting {
		t.Fatal("flex pick should be flagged as currently benched")
	}
	if lineup.ProjectedTotal != 102 {
		t.Fatalf("unexpected projected total: %.1f", lineup.ProjectedTotal)
	}
}

func TestAnalyticsService_OptimalLineups_EmptyRoster(t *testing.T) {
	svc, teamRepo, _, _, _, _ := newAnalyticsServiceFixture()
	teamRepo.teams = []fantasyteam.FantasyTeam{{ID: "t1", TeamName: "Empty"}}

	lineups, err := svc.OptimalLineups(t.Context(), 1)
	if err != nil {
		t.Fatalf("optimal lineups failed: %v", err)
	}
	if len(lineups) != 1 || len(lineups[0].Slots) != 0 || lineups[0].ProjectedTotal != 0 {
		t.Fatalf("expected empty lineup, got %+v", lineups)
	}
}
