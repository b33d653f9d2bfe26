package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/matchday-api/internal/config"
	"github.com/riskibarqy/matchday-api/internal/platform/logging"
)

func TestInitPyroscope_Disabled(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, logging.NewNop())
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop pyroscope: %v", err)
	}
}

func TestPyroscopeConfig_Tags(t *testing.T) {
	cfg := config.Config{
		AppEnv:           config.EnvProd,
		ServiceName:      "matchday-api",
		PyroscopeAppName: "matchday-api",
		APIFootballKey:   "key",
		APIFootballHost:  "v3.football.api-sports.io",
	}
	got := pyroscopeConfig(cfg)
	if got.Tags["upstream"] != "live" || got.Tags["env"] != config.EnvProd {
		t.Fatalf("unexpected tags %v", got.Tags)
	}
	if upstreamTag(config.Config{}) != "demo" {
		t.Fatal("missing credentials should tag demo")
	}
}

func TestStartPprofServer(t *testing.T) {
	srv, err := StartPprofServer(config.Config{PprofEnabled: false}, logging.NewNop())
	if err != nil || srv != nil {
		t.Fatalf("disabled pprof should not start: srv=%v err=%v", srv, err)
	}

	_, err = StartPprofServer(config.Config{PprofEnabled: true, PprofAddr: ":8080", HTTPAddr: ":8080"}, logging.NewNop())
	if err == nil {
		t.Fatal("expected error when pprof shares the api address")
	}

	if err := StopPprofServer(nil, logging.NewNop(), time.Second); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
