package usecase

import (
	"context"
	"fmt"

	"github.com/gridironlabs/fantasy-dashboard/internal/domain/fantasyteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/game"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/league"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/matchup"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/nflteam"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/player"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/playerstats"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/projection"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/ranking"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/roster"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/teamstats"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/trade"
	"github.com/gridironlabs/fantasy-dashboard/internal/domain/waiver"
)

// seqIDGenerator issues deterministic ids so tests can assert on them.
type seqIDGenerator struct {
	prefix string
	n      int
}

func (g *seqIDGenerator) NewID() (string, error) {
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n), nil
}

func newTestIDs() *seqIDGenerator {
	return &seqIDGenerator{prefix: "id"}
}

type stubLeagueRepo struct {
	cfg   league.Config
	found bool
}

func (r *stubLeagueRepo) GetActive(ctx context.Context) (league.Config, bool, error) {
	return r.cfg, r.found, nil
}

func (r *stubLeagueRepo) Replace(ctx context.Context, cfg league.Config) error {
	r.cfg = cfg
	r.found = true
	return nil
}

type stubTeamRepo struct {
	teams []fantasyteam.FantasyTeam
}

func (r *stubTeamRepo) List(ctx context.Context) ([]fantasyteam.FantasyTeam, error) {
	return append([]fantasyteam.FantasyTeam(nil), r.teams...), nil
}

func (r *stubTeamRepo) GetByID(ctx context.Context, teamID string) (fantasyteam.FantasyTeam, bool, error) {
	for _, t := range r.teams {
		if t.ID == teamID {
			return t, true, nil
		}
	}
	return fantasyteam.FantasyTeam{}, false, nil
}

func (r *stubTeamRepo) Count(ctx context.Context) (int, error) {
	return len(r.teams), nil
}

func (r *stubTeamRepo) ReplaceAll(ctx context.Context, teams []fantasyteam.FantasyTeam) error {
	r.teams = teams
	return nil
}

type stubWeeklyScoreRepo struct {
	scores []fantasyteam.WeeklyScore
}

func (r *stubWeeklyScoreRepo) ListByTeam(ctx context.Context, teamID string) ([]fantasyteam.WeeklyScore, error) {
	out := []fantasyteam.WeeklyScore{}
	for _, s := range r.scores {
		if s.FantasyTeamID == teamID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubWeeklyScoreRepo) ReplaceAll(ctx context.Context, scores []fantasyteam.WeeklyScore) error {
	r.scores = scores
	return nil
}

// stubPlayerRepo serves the full pool; availableIDs marks who counts as
// an unrostered free agent for ListAvailable.
type stubPlayerRepo struct {
	players      []player.Player
	availableIDs map[string]bool
}

func (r *stubPlayerRepo) List(ctx context.Context, position string) ([]player.Player, error) {
	out := []player.Player{}
	for _, p := range r.players {
		if position != "" && string(p.Position) != position {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPlayerRepo) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	for _, p := range r.players {
		if p.ID == playerID {
			return p, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *stubPlayerRepo) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	wanted := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = true
	}
	out := []player.Player{}
	for _, p := range r.players {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlayerRepo) ListAvailable(ctx context.Context, position string) ([]player.Player, error) {
	out := []player.Player{}
	for _, p := range r.players {
		if !r.availableIDs[p.ID] {
			continue
		}
		if position != "" && string(p.Position) != position {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubPlayerRepo) ReplaceAll(ctx context.Context, players []player.Player) error {
	r.players = players
	return nil
}

type stubRosterRepo struct {
	entries []roster.Entry
}

func (r *stubRosterRepo) ListByTeam(ctx context.Context, teamID string) ([]roster.Entry, error) {
	out := []roster.Entry{}
	for _, e := range r.entries {
		if e.FantasyTeamID == teamID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubRosterRepo) TeamIDsForPlayers(ctx context.Context, playerIDs []string) (map[string]string, error) {
	wanted := make(map[string]bool, len(playerIDs))
	for _, id := range playerIDs {
		wanted[id] = true
	}
	out := map[string]string{}
	for _, e := range r.entries {
		if wanted[e.PlayerID] {
			out[e.PlayerID] = e.FantasyTeamID
		}
	}
	return out, nil
}

func (r *stubRosterRepo) ReplaceAll(ctx context.Context, entries []roster.Entry) error {
	r.entries = entries
	return nil
}

type stubMatchupRepo struct {
	matchups []matchup.Matchup
}

func (r *stubMatchupRepo) List(ctx context.Context) ([]matchup.Matchup, error) {
	return append([]matchup.Matchup(nil), r.matchups...), nil
}

func (r *stubMatchupRepo) ListByWeek(ctx context.Context, week int) ([]matchup.Matchup, error) {
	out := []matchup.Matchup{}
	for _, m := range r.matchups {
		if m.Week == week {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMatchupRepo) ListByTeam(ctx context.Context, teamID string) ([]matchup.Matchup, error) {
	out := []matchup.Matchup{}
	for _, m := range r.matchups {
		if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *stubMatchupRepo) GetByID(ctx context.Context, matchupID string) (matchup.Matchup, bool, error) {
	for _, m := range r.matchups {
		if m.ID == matchupID {
			return m, true, nil
		}
	}
	return matchup.Matchup{}, false, nil
}

func (r *stubMatchupRepo) ReplaceAll(ctx context.Context, matchups []matchup.Matchup) error {
	r.matchups = matchups
	return nil
}

type stubProjectionRepo struct {
	projections []projection.Projection
}

func (r *stubProjectionRepo) ListByPlayer(ctx context.Context, playerID string, week int) ([]projection.Projection, error) {
	out := []projection.Projection{}
	for _, p := range r.projections {
		if p.PlayerID != playerID {
			continue
		}
		if week > 0 && p.Week != week {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *stubProjectionRepo) ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]projection.Projection, error) {
	out := []projection.Projection{}
	for _, p := range r.projections {
		if p.PlayerID == playerID {
			out = append(out, p)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubProjectionRepo) ListForWeek(ctx context.Context, week int) ([]projection.Projection, error) {
	out := []projection.Projection{}
	for _, p := range r.projections {
		if p.Week == week {
			out = append(out, p)
		}
	}
	return out, nil
}

type stubRankingRepo struct {
	rankings []ranking.Ranking
	ranks    map[string]int
}

func (r *stubRankingRepo) List(ctx context.Context, position string, week *int) ([]ranking.Ranking, error) {
	out := []ranking.Ranking{}
	for _, item := range r.rankings {
		if position != "" && item.Position != position {
			continue
		}
		if week != nil && (item.Week == nil || *item.Week != *week) {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *stubRankingRepo) ListRecentByPlayer(ctx context.Context, playerID string, limit int) ([]ranking.Ranking, error) {
	out := []ranking.Ranking{}
	for _, item := range r.rankings {
		if item.PlayerID == playerID {
			out = append(out, item)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *stubRankingRepo) LatestRanks(ctx context.Context, playerIDs []string) (map[string]int, error) {
	out := map[string]int{}
	for _, id := range playerIDs {
		if rank, ok := r.ranks[id]; ok {
			out[id] = rank
		}
	}
	return out, nil
}

type stubTradeRepo struct {
	proposals []trade.Proposal
	items     map[string][]trade.Item
	analyses  map[string]trade.Analysis
}

func newStubTradeRepo() *stubTradeRepo {
	return &stubTradeRepo{
		items:    map[string][]trade.Item{},
		analyses: map[string]trade.Analysis{},
	}
}

func (r *stubTradeRepo) ListProposals(ctx context.Context) ([]trade.Proposal, error) {
	return append([]trade.Proposal(nil), r.proposals...), nil
}

func (r *stubTradeRepo) GetProposal(ctx context.Context, proposalID string) (trade.Proposal, bool, error) {
	for _, p := range r.proposals {
		if p.ID == proposalID {
			return p, true, nil
		}
	}
	return trade.Proposal{}, false, nil
}

func (r *stubTradeRepo) CreateProposal(ctx context.Context, proposal trade.Proposal, items []trade.Item) error {
	r.proposals = append(r.proposals, proposal)
	r.items[proposal.ID] = items
	return nil
}

func (r *stubTradeRepo) ListItems(ctx context.Context, proposalID string) ([]trade.Item, error) {
	return r.items[proposalID], nil
}

func (r *stubTradeRepo) GetAnalysis(ctx context.Context, proposalID string) (trade.Analysis, bool, error) {
	analysis, ok := r.analyses[proposalID]
	return analysis, ok, nil
}

func (r *stubTradeRepo) SaveAnalysis(ctx context.Context, analysis trade.Analysis) error {
	r.analyses[analysis.TradeProposalID] = analysis
	return nil
}

type stubWaiverRepo struct {
	priorities []waiver.Priority
	recsByWeek map[int][]waiver.Recommendation
}

func newStubWaiverRepo() *stubWaiverRepo {
	return &stubWaiverRepo{recsByWeek: map[int][]waiver.Recommendation{}}
}

func (r *stubWaiverRepo) ListPriorities(ctx context.Context, seasonYear int) ([]waiver.Priority, error) {
	out := []waiver.Priority{}
	for _, p := range r.priorities {
		if p.SeasonYear == seasonYear {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubWaiverRepo) ReplacePriorities(ctx context.Context, priorities []waiver.Priority) error {
	r.priorities = priorities
	return nil
}

func (r *stubWaiverRepo) ListRecommendations(ctx context.Context, week int) ([]waiver.Recommendation, error) {
	return r.recsByWeek[week], nil
}

func (r *stubWaiverRepo) ReplaceRecommendations(ctx context.Context, week int, recommendations []waiver.Recommendation) error {
	r.recsByWeek[week] = recommendations
	return nil
}

type stubStatsRepo struct {
	stats []playerstats.GameStat
}

func (r *stubStatsRepo) ListByPlayer(ctx context.Context, playerID string, seasonYear int) ([]playerstats.GameStat, error) {
	out := []playerstats.GameStat{}
	for _, s := range r.stats {
		if s.PlayerID == playerID {
			out = append(out, s)
		}
	}
	return out, nil
}

type stubGameRepo struct {
	games []game.NFLGame
}

func (r *stubGameRepo) ListBySeason(ctx context.Context, seasonYear int) ([]game.NFLGame, error) {
	out := []game.NFLGame{}
	for _, g := range r.games {
		if g.SeasonYear == seasonYear {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGameRepo) ListByWeek(ctx context.Context, seasonYear, week int) ([]game.NFLGame, error) {
	out := []game.NFLGame{}
	for _, g := range r.games {
		if g.SeasonYear == seasonYear && g.Week == week {
			out = append(out, g)
		}
	}
	return out, nil
}

type stubNFLTeamRepo struct {
	teams []nflteam.NFLTeam
}

func (r *stubNFLTeamRepo) List(ctx context.Context) ([]nflteam.NFLTeam, error) {
	return append([]nflteam.NFLTeam(nil), r.teams...), nil
}

func (r *stubNFLTeamRepo) GetByCode(ctx context.Context, code string) (nflteam.NFLTeam, bool, error) {
	for _, t := range r.teams {
		if t.Code == code {
			return t, true, nil
		}
	}
	return nflteam.NFLTeam{}, false, nil
}

type stubDefenseStatsRepo struct {
	stats []teamstats.DefenseGameStat
}

func (r *stubDefenseStatsRepo) ListByTeam(ctx context.Context, nflTeamID string, seasonYear int) ([]teamstats.DefenseGameStat, error) {
	out := []teamstats.DefenseGameStat{}
	for _, s := range r.stats {
		if s.NFLTeamID == nflTeamID {
			out = append(out, s)
		}
	}
	return out, nil
}

// stubProvider plays the external platform for sync tests.
type stubProvider struct {
	bundle         ExternalLeagueBundle
	matchupsByWeek map[int][]ExternalMatchup
	weekErrs       map[int]error
	fetchErr       error
	accessErr      error
	fetchCalls     int
}

func (p *stubProvider) FetchLeague(ctx context.Context) (ExternalLeagueBundle, error) {
	p.fetchCalls++
	if p.fetchErr != nil {
		return ExternalLeagueBundle{}, p.fetchErr
	}
	return p.bundle, nil
}

func (p *stubProvider) FetchMatchupsByWeek(ctx context.Context, week int) ([]ExternalMatchup, error) {
	if err := p.weekErrs[week]; err != nil {
		return nil, err
	}
	return p.matchupsByWeek[week], nil
}

func (p *stubProvider) ValidateAccess(ctx context.Context) error {
	return p.accessErr
}

func intPtr(v int) *int {
	return &v
}

func weekScore(teamID string, week int, total float64) fantasyteam.WeeklyScore {
	return fantasyteam.WeeklyScore{
		ID:            fmt.Sprintf("ws-%s-%d", teamID, week),
		FantasyTeamID: teamID,
		Week:          week,
		TotalScore:    total,
	}
}
