package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/riskibarqy/matchday-api/external/apifootball"
	"github.com/riskibarqy/matchday-api/internal/config"
	"github.com/riskibarqy/matchday-api/internal/domain/league"
	cacherepo "github.com/riskibarqy/matchday-api/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/matchday-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/matchday-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday-api/internal/platform/cache"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
	"github.com/riskibarqy/matchday-api/internal/platform/resilience"
	"github.com/riskibarqy/matchday-api/internal/usecase"
)

const cacheKeyPrefix = "matchday:"

// Services holds the use cases shared by the HTTP server and the CLI.
type Services struct {
	Leagues            *usecase.LeagueService
	Fixtures           *usecase.FixtureResolver
	Teams              *usecase.TeamService
	TeamStats          *usecase.TeamStatsService
	UpstreamConfigured bool

	closers []func() error
}

// NewServices wires repositories, the upstream client and the use cases.
// Without upstream credentials the provider stays nil and every use case
// serves demo data.
func NewServices(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Services, error) {
	if logger == nil {
		logger = logging.Default()
	}

	leagues, err := loadLeagues(cfg)
	if err != nil {
		return nil, err
	}
	leagueRepo := memory.NewLeagueRepository(leagues)

	svc := &Services{UpstreamConfigured: cfg.UpstreamConfigured()}

	var provider usecase.FootballProvider
	if svc.UpstreamConfigured {
		client := apifootball.NewClient(apifootball.ClientConfig{
			Host:              cfg.APIFootballHost,
			APIKey:            cfg.APIFootballKey,
			Timeout:           cfg.APIFootballTimeout,
			MaxRetries:        cfg.APIFootballMaxRetries,
			RequestsPerMinute: cfg.APIFootballRPM,
			Logger:            logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.APIFootballCircuitEnabled,
				FailureThreshold: cfg.APIFootballCircuitFailureCount,
				OpenTimeout:      cfg.APIFootballCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.APIFootballCircuitHalfOpenMaxReq,
			},
		})
		provider = client

		if cfg.CacheEnabled {
			store, closeFn := newCacheStore(ctx, cfg, logger)
			if closeFn != nil {
				svc.closers = append(svc.closers, closeFn)
			}
			provider = cacherepo.NewFootballProvider(client, store)
		}
	} else {
		logger.Warn("api-football credentials missing, serving demo data",
			"key_set", cfg.APIFootballKey != "",
			"host_set", cfg.APIFootballHost != "",
		)
	}

	generator := usecase.NewFallbackGenerator(nil, cfg.FallbackMaxFixtures)

	svc.Leagues = usecase.NewLeagueService(leagueRepo)
	svc.Fixtures = usecase.NewFixtureResolver(leagueRepo, provider, generator, usecase.FixtureResolverConfig{
		TargetCount:    cfg.FixtureTargetCount,
		MaxResults:     cfg.FixtureMaxResults,
		WorkerPoolSize: cfg.WorkerPoolSize,
	}, logger)
	svc.Teams = usecase.NewTeamService(leagueRepo, provider, cfg.WorkerPoolSize, logger)
	svc.TeamStats = usecase.NewTeamStatsService(leagueRepo, provider, generator, logger)

	return svc, nil
}

// Close releases backends opened by NewServices.
func (s *Services) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	for _, fn := range s.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func NewHTTPServer(cfg config.Config, svc *Services, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if svc == nil {
		return nil, fmt.Errorf("services cannot be nil")
	}

	handler := httpapi.NewHandler(
		svc.Leagues,
		svc.Fixtures,
		svc.Teams,
		svc.TeamStats,
		svc.UpstreamConfigured,
		logger,
	)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

func loadLeagues(cfg config.Config) ([]league.League, error) {
	leagues := memory.SeedLeagues()
	if cfg.LeagueConfigFile != "" {
		merged, err := memory.LoadLeagueFile(cfg.LeagueConfigFile, leagues)
		if err != nil {
			return nil, fmt.Errorf("load league config: %w", err)
		}
		leagues = merged
	}
	return memory.ApplySeasons(leagues, cfg.LeagueSeasonByKey), nil
}

// newCacheStore prefers Redis when configured and falls back to the
// in-process backend when Redis is unreachable at startup.
func newCacheStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (*cache.Store, func() error) {
	if cfg.RedisURL == "" {
		return cache.NewStore(cache.NewMemory(), cfg.CacheTTL, cacheKeyPrefix), nil
	}

	backend, err := cache.NewRedis(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "error", err)
		return cache.NewStore(cache.NewMemory(), cfg.CacheTTL, cacheKeyPrefix), nil
	}
	logger.Info("redis cache enabled", "ttl", cfg.CacheTTL)
	return cache.NewStore(backend, cfg.CacheTTL, cacheKeyPrefix), backend.Close
}
