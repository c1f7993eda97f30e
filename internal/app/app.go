package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/diamond-stats/external/sportradar"
	"github.com/riskibarqy/diamond-stats/internal/config"
	"github.com/riskibarqy/diamond-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/diamond-stats/internal/platform/cache"
	"github.com/riskibarqy/diamond-stats/internal/platform/id"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/riskibarqy/diamond-stats/internal/platform/resilience"
	"github.com/riskibarqy/diamond-stats/internal/usecase"
)

// App owns the HTTP server and everything that must be released when it
// stops: the background board loop and the cache backend.
type App struct {
	Server *http.Server

	board  *usecase.LeaderBoard
	store  cache.Store
	logger *logging.Logger
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	client := sportradar.NewClient(sportradar.ClientConfig{
		Transport:    newUpstreamTransport(cfg.Sportradar),
		BaseURL:      cfg.Sportradar.BaseURL,
		AccessLevel:  cfg.Sportradar.AccessLevel,
		Language:     cfg.Sportradar.Language,
		APIKey:       cfg.Sportradar.APIKey,
		Timeout:      cfg.Sportradar.Timeout,
		MaxRetries:   cfg.Sportradar.MaxRetries,
		RetryBackoff: cfg.Sportradar.RetryBackoff,
		Logger:       logger.With("component", "sportradar"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.Sportradar.CircuitEnabled,
			FailureThreshold: cfg.Sportradar.CircuitFailureCount,
			OpenTimeout:      cfg.Sportradar.CircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.Sportradar.CircuitHalfOpenMaxReq,
		},
	})

	store, err := newCacheStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	ids := id.NewUUIDGenerator()
	leaderSvc := usecase.NewLeaderService(client, cfg.Leaders.TopN, logger)
	homeSvc := usecase.NewHomeService(leaderSvc, logger)
	teamSvc := usecase.NewTeamService(client, store, logger)
	playerSvc := usecase.NewPlayerService(client, logger)
	scoreboardSvc := usecase.NewScoreboardService(client)

	var board *usecase.LeaderBoard
	if cfg.Leaders.BoardEnabled {
		board, err = newBoard(ctx, cfg.Leaders, leaderSvc, ids, logger)
		if err != nil {
			_ = store.Close()
			return nil, err
		}
	}

	handler := httpapi.NewHandler(leaderSvc, homeSvc, teamSvc, playerSvc, scoreboardSvc, board, client, ids, logger)
	router := httpapi.NewRouter(handler, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	return &App{
		Server: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		board:  board,
		store:  store,
		logger: logger,
	}, nil
}

// Shutdown drains in-flight requests first, then stops the board and
// closes the cache backend.
func (a *App) Shutdown(ctx context.Context) error {
	var errs []error
	if err := a.Server.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if a.board != nil {
		a.board.Close()
	}
	if err := a.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close cache store: %w", err))
	}
	return errors.Join(errs...)
}

func newUpstreamTransport(cfg config.SportradarConfig) sportradar.Transport {
	if cfg.Transport == config.TransportFastHTTP {
		return sportradar.NewFastHTTPTransport(cfg.Timeout)
	}
	return sportradar.NewNetHTTPTransport(nil, cfg.Timeout)
}

func newCacheStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (cache.Store, error) {
	switch {
	case !cfg.CacheEnabled:
		logger.Info("cache disabled", "reason", "CACHE_ENABLED=false")
		return cache.NopStore{}, nil
	case cfg.CacheRedisURL != "":
		store, err := cache.NewRedisStore(ctx, cfg.CacheRedisURL, cfg.CacheKeyPrefix, cfg.CacheTTL)
		if err != nil {
			return nil, fmt.Errorf("connect redis cache: %w", err)
		}
		logger.Info("cache enabled", "backend", "redis", "ttl", cfg.CacheTTL.String())
		return store, nil
	default:
		logger.Info("cache enabled", "backend", "memory", "ttl", cfg.CacheTTL.String())
		return cache.NewMemoryStore(cfg.CacheTTL), nil
	}
}

// newBoard selects the configured default leaderboard so the first GET
// /v1/board has something loading, then starts the periodic refresh.
func newBoard(ctx context.Context, cfg config.LeadersConfig, leaderSvc *usecase.LeaderService, ids id.Generator, logger *logging.Logger) (*usecase.LeaderBoard, error) {
	board, err := usecase.NewLeaderBoard(leaderSvc, ids, usecase.LeaderBoardConfig{
		Workers:        cfg.BoardWorkers,
		RefreshTimeout: cfg.BoardRefreshTimeout,
	}, logger.With("component", "leader_board"))
	if err != nil {
		return nil, err
	}

	if _, err := board.Select(ctx, usecase.BoardSelection{
		Season: cfg.DefaultSeason,
		Phase:  cfg.DefaultPhase,
		Stat:   cfg.DefaultStat,
		Limit:  cfg.TopN,
	}); err != nil {
		board.Close()
		return nil, fmt.Errorf("select default board: %w", err)
	}
	board.Start(cfg.BoardRefreshInterval)

	return board, nil
}
