package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		args []any
		want bool
	}{
		{"health check", "http request", []any{"method", "GET", "path", "/healthz"}, true},
		{"docs", "http request", []any{"path", "/docs/"}, true},
		{"api route", "http request", []any{"path", "/v1/seasons/2025/leaders/home_runs"}, false},
		{"other event", "board refresh failed", []any{"path", "/healthz"}, false},
		{"non string path", "http request", []any{"path", 42}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldSkipUptraceLog(tc.msg, tc.args); got != tc.want {
				t.Fatalf("shouldSkipUptraceLog(%q, %v) = %v, want %v", tc.msg, tc.args, got, tc.want)
			}
		})
	}
}

func TestBuildOTelLogAttributes(t *testing.T) {
	attrs := buildOTelLogAttributes([]any{"stat", "home_runs", "season", 2025, "payload"})
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "stat" || attrs[0].Value.AsString() != "home_runs" {
		t.Fatalf("unexpected stat attribute")
	}
	if attrs[1].Key != "season" || attrs[1].Value.AsInt64() != 2025 {
		t.Fatalf("unexpected season attribute")
	}
	if attrs[2].Key != "payload" || attrs[2].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected payload attribute")
	}
}

func TestToOTelLogValue_Scalars(t *testing.T) {
	if v := toOTelLogValue(uint16(7), 0); v.Kind() != otellog.KindInt64 || v.AsInt64() != 7 {
		t.Fatalf("unexpected uint16 value: %v", v)
	}
	if v := toOTelLogValue(float32(0.5), 0); v.Kind() != otellog.KindFloat64 {
		t.Fatalf("unexpected float32 kind: %s", v.Kind())
	}
	if v := toOTelLogValue(errors.New("boom"), 0); v.AsString() != "boom" {
		t.Fatalf("unexpected error value: %v", v)
	}
	if v := toOTelLogValue(1500*time.Millisecond, 0); v.AsString() != "1.5s" {
		t.Fatalf("unexpected duration value: %v", v)
	}
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"homeRuns":  60,
		"qualified": true,
	}, 0)
	if v.Kind() != otellog.KindMap {
		t.Fatalf("expected map value, got %s", v.Kind())
	}
	if items := v.AsMap(); len(items) != 2 {
		t.Fatalf("expected 2 map items, got %d", len(items))
	}
}
