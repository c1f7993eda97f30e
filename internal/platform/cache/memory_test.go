package cache

import (
	"context"
	"testing"
	"time"
)

func TestMemoryStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Minute)
	now := time.Date(2026, 3, 27, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	if err := store.Set(ctx, "teams:list", []byte(`[1]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got, ok, _ := store.Get(ctx, "teams:list"); !ok || string(got) != "[1]" {
		t.Fatalf("expected hit, got=%q ok=%v", got, ok)
	}

	now = now.Add(2 * time.Minute)
	if _, ok, _ := store.Get(ctx, "teams:list"); ok {
		t.Fatalf("expected entry to expire")
	}
	if store.Len() != 0 {
		t.Fatalf("expected expired entry to be evicted, len=%d", store.Len())
	}
}

func TestMemoryStore_SetCopiesValue(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(0)
	ctx := context.Background()
	value := []byte("abc")
	_ = store.Set(ctx, "k", value)
	value[0] = 'z'

	got, _, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Fatalf("stored value was mutated: %q", got)
	}
}

func TestMemoryStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(0)
	ctx := context.Background()
	_ = store.Set(ctx, "teams:list", []byte("1"))
	_ = store.Set(ctx, "teams:profile:nyy", []byte("2"))
	_ = store.Set(ctx, "players:1", []byte("3"))

	_ = store.DeletePrefix(ctx, "teams:")
	if store.Len() != 1 {
		t.Fatalf("expected only players key to remain, len=%d", store.Len())
	}
	if _, ok, _ := store.Get(ctx, "players:1"); !ok {
		t.Fatalf("expected players key to survive")
	}
}
