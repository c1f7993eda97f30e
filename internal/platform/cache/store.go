// Package cache holds reference data that changes rarely, such as the team
// list. Values are stored as encoded bytes so the in-memory and Redis
// backends are interchangeable.
package cache

import (
	"context"
	"strings"
	"time"
)

type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
	Close() error
}

// NopStore never holds anything. Used when caching is disabled.
type NopStore struct{}

func (NopStore) Get(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (NopStore) Set(context.Context, string, []byte) error         { return nil }
func (NopStore) Delete(context.Context, string) error              { return nil }
func (NopStore) DeletePrefix(context.Context, string) error        { return nil }
func (NopStore) Close() error                                      { return nil }

func hasPrefix(key, prefix string) bool {
	return prefix != "" && strings.HasPrefix(key, prefix)
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}
