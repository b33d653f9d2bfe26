package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/matchday-api/internal/config"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

func demoConfig() config.Config {
	return config.Config{
		AppEnv:              config.EnvDev,
		HTTPAddr:            ":0",
		ReadTimeout:         time.Second,
		WriteTimeout:        time.Second,
		CORSAllowedOrigins:  []string{"*"},
		FixtureTargetCount:  5,
		FixtureMaxResults:   10,
		FallbackMaxFixtures: 8,
		WorkerPoolSize:      2,
		CacheEnabled:        true,
		CacheTTL:            time.Minute,
	}
}

func TestNewHTTPServer_ServesDemoWithoutCredentials(t *testing.T) {
	cfg := demoConfig()
	svc, err := NewServices(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()
	require.False(t, svc.UpstreamConfigured)

	srv, err := NewHTTPServer(cfg, svc, logging.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/matches?league=premier&days=7", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Debug   struct {
			Status string `json:"status"`
		} `json:"debug"`
	}
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Equal(t, "demo", body.Debug.Status)
	require.Positive(t, body.Count)
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := demoConfig()
	cfg.HTTPAddr = ""

	svc, err := NewServices(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)

	_, err = NewHTTPServer(cfg, svc, logging.NewNop())
	require.Error(t, err)

	_, err = NewHTTPServer(demoConfig(), nil, logging.NewNop())
	require.Error(t, err)
}

func TestLoadLeagues_FileAndSeasonOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leagues.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"key":"eredivisie","id":88,"country":"Netherlands","name":"Eredivisie","season":2025}]`), 0o600))

	cfg := demoConfig()
	cfg.LeagueConfigFile = path
	cfg.LeagueSeasonByKey = map[string]int64{"premier": 2026}

	leagues, err := loadLeagues(cfg)
	require.NoError(t, err)

	seasons := map[string]int{}
	for _, l := range leagues {
		seasons[l.Key] = l.Season
	}
	require.Equal(t, 2025, seasons["eredivisie"])
	require.Equal(t, 2026, seasons["premier"])
}

func TestLoadLeagues_MissingFile(t *testing.T) {
	cfg := demoConfig()
	cfg.LeagueConfigFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewServices(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewCacheStore_FallsBackToMemory(t *testing.T) {
	cfg := demoConfig()
	cfg.RedisURL = "redis://127.0.0.1:1/0"

	store, closeFn := newCacheStore(context.Background(), cfg, logging.NewNop())
	require.NotNil(t, store)
	require.Nil(t, closeFn)
}
