package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func TestIsQuietRequestLog(t *testing.T) {
	if !isQuietRequestLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check request log to be skipped")
	}
	if isQuietRequestLog("http request", []any{"path", "/api/matches"}) {
		t.Fatalf("did not expect api request log to be skipped")
	}
	if isQuietRequestLog("serving synthetic fixtures", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request event to be skipped")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"league", "superliga", "attempts", 6, "error", errors.New("upstream status 503"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "league" || attrs[0].Value.AsString() != "superliga" {
		t.Fatalf("unexpected league attribute")
	}
	if attrs[1].Key != "attempts" || attrs[1].Value.AsInt64() != 6 {
		t.Fatalf("unexpected attempts attribute")
	}
	if attrs[2].Value.AsString() != "upstream status 503" {
		t.Fatalf("unexpected error attribute")
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestLogValue(t *testing.T) {
	type status string

	if v := logValue(status("fallback"), 0); v.AsString() != "fallback" {
		t.Fatalf("named string should map to string, got %v", v)
	}
	if v := logValue(1500*time.Millisecond, 0); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value %v", v)
	}
	if v := logValue([]int{2025, 2026}, 0); v.Kind() != otellog.KindSlice || len(v.AsSlice()) != 2 {
		t.Fatalf("expected slice value, got %s", v.Kind())
	}
	var missing *int
	if v := logValue(missing, 0); v.Kind() != otellog.KindEmpty {
		t.Fatalf("nil pointer should be empty, got %s", v.Kind())
	}
}
