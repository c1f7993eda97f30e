package cache

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"
)

func TestNewRedisStore_RejectsBadURL(t *testing.T) {
	t.Parallel()

	if _, err := NewRedisStore(context.Background(), "http://not-redis", "ds:", time.Minute); err == nil {
		t.Fatalf("expected parse error for non-redis scheme")
	}
}

func TestRedisStore_RoundTrip(t *testing.T) {
	rawURL := strings.TrimSpace(os.Getenv("CACHE_REDIS_TEST_URL"))
	if rawURL == "" {
		t.Skip("CACHE_REDIS_TEST_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	store, err := NewRedisStore(ctx, rawURL, "diamond-stats-test:", time.Minute)
	if err != nil {
		t.Fatalf("connect redis: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if err := store.Set(ctx, "teams:list", []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := store.Get(ctx, "teams:list")
	if err != nil || !ok || string(got) != "[]" {
		t.Fatalf("unexpected get result=%q ok=%v err=%v", got, ok, err)
	}
	if err := store.DeletePrefix(ctx, "teams:"); err != nil {
		t.Fatalf("delete prefix: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "teams:list"); ok {
		t.Fatalf("expected key to be deleted")
	}
}
