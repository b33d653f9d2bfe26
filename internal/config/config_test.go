package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("API_FOOTBALL_KEY", "")
	t.Setenv("API_FOOTBALL_HOST", "")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("FIXTURE_TARGET_COUNT", "")
	t.Setenv("FIXTURE_MAX_RESULTS", "")
	t.Setenv("FALLBACK_MAX_FIXTURES", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("APP_WRITE_TIMEOUT", "")
	t.Setenv("API_FOOTBALL_MAX_RETRIES", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UpstreamConfigured() {
		t.Fatalf("expected upstream to be unconfigured without credentials")
	}
	if cfg.FixtureTargetCount != 5 || cfg.FixtureMaxResults != 10 || cfg.FallbackMaxFixtures != 8 {
		t.Fatalf("unexpected resolver defaults: %+v", cfg)
	}
	if cfg.APIFootballMaxRetries != 0 {
		t.Fatalf("expected no retries by default, got %d", cfg.APIFootballMaxRetries)
	}
	if cfg.CacheTTL != time.Hour {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if cfg.WriteTimeout != 30*time.Second {
		t.Fatalf("unexpected WriteTimeout: %s", cfg.WriteTimeout)
	}
}

func TestLoad_UpstreamCredentials(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("API_FOOTBALL_KEY", "secret")
	t.Setenv("API_FOOTBALL_HOST", "https://v3.football.api-sports.io/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.UpstreamConfigured() {
		t.Fatalf("expected upstream configured")
	}
	if cfg.APIFootballHost != "v3.football.api-sports.io" {
		t.Fatalf("unexpected host: %q", cfg.APIFootballHost)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_RejectsInvalidResolverLimits(t *testing.T) {
	tests := map[string]string{
		"FIXTURE_TARGET_COUNT":  "0",
		"FIXTURE_MAX_RESULTS":   "abc",
		"FALLBACK_MAX_FIXTURES": "-1",
		"WORKER_POOL_SIZE":      "0",
		"LEAGUE_SEASON_MAP":     "premier=2025",
		"API_FOOTBALL_RPM":      "-5",
		"CACHE_TTL":             "0s",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(key, value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%q", key, value)
			}
		})
	}
}

func TestParseIDMap(t *testing.T) {
	got, err := parseIDMap(" Premier:2025, superliga : 2024 ,")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got["premier"] != 2025 || got["superliga"] != 2024 || len(got) != 2 {
		t.Fatalf("unexpected map: %v", got)
	}

	if _, err := parseIDMap("premier:0"); err == nil {
		t.Fatalf("expected error for non-positive season")
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	raw := `x-other=1, uptrace-dsn="https://token@api.uptrace.dev/1"`
	if got := parseUptraceDSNFromOTLPHeaders(raw); got != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected dsn: %q", got)
	}
	if got := parseUptraceDSNFromOTLPHeaders(""); got != "" {
		t.Fatalf("expected empty dsn, got %q", got)
	}
}
