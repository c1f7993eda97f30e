package logging

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_WritesStructuredFields(t *testing.T) {
	core, logs := observer.New(LevelDebug)
	logger := FromZap(zap.New(core)).With("component", "leaders")

	logger.WarnContext(context.Background(), "upstream failed", "status", 503, "error", errors.New("boom"))

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["component"] != "leaders" {
		t.Fatalf("expected component field, got %v", fields)
	}
	if fields["status"] != int64(503) {
		t.Fatalf("expected status field, got %v", fields["status"])
	}
	if fields["error"] != "boom" {
		t.Fatalf("expected error field, got %v", fields["error"])
	}
}

func TestLogger_MirrorReceivesInheritedFields(t *testing.T) {
	core, _ := observer.New(LevelInfo)
	logger := FromZap(zap.New(core)).With("service", "diamond-stats")

	var gotMsg string
	var gotArgs []any
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		gotMsg = msg
		gotArgs = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("filtered out")
	if gotMsg != "" {
		t.Fatalf("expected debug record to be filtered, got %q", gotMsg)
	}

	logger.Info("board refreshed", "generation", 3)
	if gotMsg != "board refreshed" {
		t.Fatalf("unexpected mirrored message %q", gotMsg)
	}
	if len(gotArgs) != 4 || gotArgs[0] != "service" || gotArgs[2] != "generation" {
		t.Fatalf("unexpected mirrored args %v", gotArgs)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	if level, err := ParseLevel("WARN"); err != nil || level != LevelWarn {
		t.Fatalf("unexpected parse result level=%v err=%v", level, err)
	}
	if level, err := ParseLevel(""); err != nil || level != LevelInfo {
		t.Fatalf("expected info default, got level=%v err=%v", level, err)
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unsupported level")
	}
}
