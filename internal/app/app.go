package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/gridironlabs/fantasy-dashboard/external/espn"
	"github.com/gridironlabs/fantasy-dashboard/internal/config"
	"github.com/gridironlabs/fantasy-dashboard/internal/infrastructure/repository/postgres"
	"github.com/gridironlabs/fantasy-dashboard/internal/interfaces/httpapi"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/cache"
	idgen "github.com/gridironlabs/fantasy-dashboard/internal/platform/id"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/logging"
	"github.com/gridironlabs/fantasy-dashboard/internal/platform/resilience"
	"github.com/gridironlabs/fantasy-dashboard/internal/usecase"
)

// Application bundles the HTTP server with the resources it owns.
type Application struct {
	Server *http.Server
	Sync   *usecase.SyncService

	db     *sqlx.DB
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Application, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := openDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()
	if err := postgres.BootstrapSeed(ctx, db, ids); err != nil {
		db.Close()
		return nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	leagueRepo := postgres.NewLeagueRepository(db)
	teamRepo := postgres.NewFantasyTeamRepository(db)
	weeklyScoreRepo := postgres.NewWeeklyScoreRepository(db)
	nflTeamRepo := postgres.NewNFLTeamRepository(db)
	playerRepo := postgres.NewPlayerRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)
	matchupRepo := postgres.NewMatchupRepository(db)
	projectionRepo := postgres.NewProjectionRepository(db)
	rankingRepo := postgres.NewRankingRepository(db)
	statsRepo := postgres.NewPlayerStatsRepository(db)
	gameRepo := postgres.NewGameRepository(db)
	teamStatsRepo := postgres.NewTeamStatsRepository(db)
	tradeRepo := postgres.NewTradeRepository(db)
	waiverRepo := postgres.NewWaiverRepository(db)

	var store *cache.Store
	if cfg.CacheEnabled {
		store = cache.NewStore(cfg.CacheTTL)
	}

	var provider usecase.LeagueProvider
	if cfg.ESPNSyncEnabled {
		provider = espn.NewClient(espn.ClientConfig{
			BaseURL:    cfg.ESPNBaseURL,
			LeagueID:   cfg.ESPNLeagueID,
			SeasonYear: cfg.ESPNSeasonYear,
			ESPNS2:     cfg.ESPNS2,
			SWID:       cfg.ESPNSWID,
			Timeout:    cfg.ESPNTimeout,
			MaxRetries: cfg.ESPNMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.ESPNCircuitEnabled,
				FailureThreshold: cfg.ESPNCircuitFailureCount,
				OpenTimeout:      cfg.ESPNCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.ESPNCircuitHalfOpenMaxReq,
			},
		})
	}

	nflTeamIDs := func(ctx context.Context) (map[string]string, error) {
		teams, err := nflTeamRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		byCode := make(map[string]string, len(teams))
		for _, t := range teams {
			byCode[t.Code] = t.ID
		}
		return byCode, nil
	}

	leagueSvc := usecase.NewLeagueService(leagueRepo)
	teamSvc := usecase.NewTeamService(teamRepo, weeklyScoreRepo, rosterRepo, playerRepo, matchupRepo, store)
	playerSvc := usecase.NewPlayerService(playerRepo, rosterRepo, teamRepo, projectionRepo, rankingRepo, statsRepo, gameRepo, teamStatsRepo, nflTeamRepo)
	matchupSvc := usecase.NewMatchupService(matchupRepo, teamRepo, teamSvc)
	tradeSvc := usecase.NewTradeService(tradeRepo, teamRepo, rosterRepo, playerRepo, rankingRepo, ids)
	waiverSvc := usecase.NewWaiverService(waiverRepo, teamRepo, playerRepo, projectionRepo, rankingRepo, leagueRepo, ids, logger)
	analyticsSvc := usecase.NewAnalyticsService(teamRepo, matchupRepo, playerRepo, rosterRepo, projectionRepo, store)
	syncSvc := usecase.NewSyncService(
		usecase.SyncConfig{
			Enabled:    cfg.ESPNSyncEnabled,
			SeasonYear: cfg.ESPNSeasonYear,
			MaxWorkers: cfg.SyncMaxWorkers,
		},
		provider,
		leagueRepo,
		teamRepo,
		weeklyScoreRepo,
		playerRepo,
		rosterRepo,
		matchupRepo,
		nflTeamIDs,
		ids,
		logger,
	)

	handler := httpapi.NewHandler(leagueSvc, teamSvc, playerSvc, matchupSvc, tradeSvc, waiverSvc, analyticsSvc, syncSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Application{
		Server: server,
		Sync:   syncSvc,
		db:     db,
		logger: logger,
	}, nil
}

func (a *Application) Close() error {
	if a == nil || a.db == nil {
		return nil
	}
	return a.db.Close()
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
