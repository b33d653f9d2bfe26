// Command matchday-api serves the football proxy API and offers one-shot
// lookups against the same use cases.
//
// Usage:
//
//	matchday-api                       # same as serve
//	matchday-api serve
//	matchday-api matches --league superliga --days 14
//	matchday-api teams --league premier --search united
//	matchday-api team-stats --team "Brondby" --league superliga
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"github.com/riskibarqy/matchday-api/internal/app"
	"github.com/riskibarqy/matchday-api/internal/config"
	"github.com/riskibarqy/matchday-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/matchday-api/internal/observability"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
	"github.com/riskibarqy/matchday-api/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "matchday-api",
		Short:         "Football fixtures, teams and team statistics proxy",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.AddCommand(serveCmd())
	root.AddCommand(matchesCmd())
	root.AddCommand(teamsCmd())
	root.AddCommand(teamStatsCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTelemetry, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return fmt.Errorf("init uptrace: %w", err)
	}
	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Warn("pyroscope start failed", "error", err)
	}
	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		return fmt.Errorf("start pprof: %w", err)
	}

	svc, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("build services: %w", err)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.Warn("close services", "error", err)
		}
	}()

	srv, err := app.NewHTTPServer(cfg, svc, logger)
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server starting",
			"addr", cfg.HTTPAddr,
			"env", cfg.AppEnv,
			"upstream_configured", svc.UpstreamConfigured,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := observability.StopPprofServer(pprofSrv, logger, shutdownTimeout); err != nil {
		logger.Warn("pprof shutdown failed", "error", err)
	}
	if err := stopProfiler(); err != nil {
		logger.Warn("pyroscope stop failed", "error", err)
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		logger.Warn("uptrace shutdown failed", "error", err)
	}

	logger.Info("http server stopped")
	return nil
}

func matchesCmd() *cobra.Command {
	var (
		leagueKey string
		days      int
	)
	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Print upcoming matches for a league, or all leagues",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context, svc *app.Services) (any, error) {
				var (
					result usecase.MatchesResult
					err    error
				)
				if leagueKey == "" || leagueKey == usecase.AllLeaguesKey {
					result, err = svc.Fixtures.ResolveAll(ctx, days)
				} else {
					result, err = svc.Fixtures.Resolve(ctx, leagueKey, days)
				}
				if err != nil {
					return nil, err
				}
				return httpapi.MatchesPayload(result), nil
			})
		},
	}
	cmd.Flags().StringVar(&leagueKey, "league", "", "League key, empty or \"all\" for every league")
	cmd.Flags().IntVar(&days, "days", usecase.DefaultWindowDays, "Look-ahead window in days")
	return cmd
}

func teamsCmd() *cobra.Command {
	var (
		leagueKey string
		search    string
		teamID    int64
	)
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Print a league roster or a single team",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context, svc *app.Services) (any, error) {
				if teamID > 0 {
					detail, err := svc.Teams.Get(ctx, teamID)
					if err != nil {
						return nil, err
					}
					return httpapi.TeamDetailPayload(detail), nil
				}
				result, err := svc.Teams.List(ctx, usecase.TeamsQuery{LeagueKey: leagueKey, Search: search})
				if err != nil {
					return nil, err
				}
				return httpapi.TeamsPayload(result), nil
			})
		},
	}
	cmd.Flags().StringVar(&leagueKey, "league", "", "League key, empty for every league")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive team name filter")
	cmd.Flags().Int64Var(&teamID, "team-id", 0, "Look up one team by id")
	return cmd
}

func teamStatsCmd() *cobra.Command {
	var query usecase.TeamStatsQuery
	cmd := &cobra.Command{
		Use:   "team-stats",
		Short: "Print season statistics and recent form for a team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if query.TeamName == "" && query.TeamID == 0 {
				return errors.New("either --team or --team-id is required")
			}
			return runLookup(cmd.Context(), cmd.OutOrStdout(), func(ctx context.Context, svc *app.Services) (any, error) {
				result, err := svc.TeamStats.Lookup(ctx, query)
				if err != nil {
					return nil, err
				}
				return httpapi.TeamStatsPayload(result), nil
			})
		},
	}
	cmd.Flags().StringVar(&query.TeamName, "team", "", "Team name to search for")
	cmd.Flags().Int64Var(&query.TeamID, "team-id", 0, "Team id")
	cmd.Flags().StringVar(&query.LeagueKey, "league", "", "League key used for the season lookup")
	return cmd
}

// runLookup builds the services with a console logger on stderr and prints
// the lookup payload as indented JSON to out.
func runLookup(ctx context.Context, out io.Writer, fn func(context.Context, *app.Services) (any, error)) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewConsole(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	svc, err := app.NewServices(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = svc.Close() }()

	result, err := fn(ctx, svc)
	if err != nil {
		return err
	}

	raw, err := jsoniter.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}
