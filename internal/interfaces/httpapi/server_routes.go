package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /{$}", handler.Dashboard)
	mux.Handle("GET /static/", staticHandler())
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/league", handler.GetLeague)

	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/standings", handler.GetStandings)
	mux.HandleFunc("GET /v1/teams/rosters", handler.ListTeamRosters)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/roster", handler.GetTeamRoster)
	mux.HandleFunc("GET /v1/teams/{teamID}/schedule", handler.GetTeamSchedule)
	mux.HandleFunc("GET /v1/teams/{teamID}/stats", handler.GetTeamStats)

	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/available", handler.ListAvailablePlayers)
	mux.HandleFunc("GET /v1/players/rankings", handler.GetPlayerRankings)
	mux.HandleFunc("POST /v1/players/compare", handler.ComparePlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/projections", handler.GetPlayerProjections)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)

	mux.HandleFunc("GET /v1/matchups", handler.ListMatchups)
	mux.HandleFunc("GET /v1/matchups/week/{week}", handler.ListMatchupsByWeek)
	mux.HandleFunc("GET /v1/matchups/{matchupID}", handler.GetMatchup)

	mux.HandleFunc("GET /v1/trades/proposals", handler.ListTradeProposals)
	mux.HandleFunc("POST /v1/trades/proposals", handler.CreateTradeProposal)
	mux.HandleFunc("POST /v1/trades/analyze", handler.AnalyzeTrade)

	mux.HandleFunc("GET /v1/waivers/priority", handler.GetWaiverPriority)
	mux.HandleFunc("GET /v1/waivers/recommendations", handler.GetWaiverRecommendations)

	mux.HandleFunc("GET /v1/analytics/league", handler.GetLeagueAnalytics)
	mux.HandleFunc("GET /v1/analytics/positional", handler.GetPositionalAnalytics)
	mux.HandleFunc("GET /v1/analytics/optimal-lineups", handler.GetOptimalLineups)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunLeagueSyncJob)))
}
