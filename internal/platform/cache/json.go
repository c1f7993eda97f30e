package cache

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/riskibarqy/diamond-stats/internal/platform/resilience"
)

// JSON stores values of T in a Store. Backend failures are logged and
// treated as misses so a broken cache never fails a request.
type JSON[T any] struct {
	store  Store
	logger *logging.Logger
	flight resilience.SingleFlight
}

func NewJSON[T any](store Store, logger *logging.Logger) *JSON[T] {
	if store == nil {
		store = NopStore{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &JSON[T]{store: store, logger: logger}
}

func (c *JSON[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "cache get failed", "key", key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}

	var out T
	if err := sonic.Unmarshal(raw, &out); err != nil {
		c.logger.WarnContext(ctx, "cache entry undecodable, dropping", "key", key, "error", err)
		_ = c.store.Delete(ctx, key)
		return zero, false
	}
	return out, true
}

func (c *JSON[T]) Set(ctx context.Context, key string, value T) {
	raw, err := sonic.Marshal(value)
	if err != nil {
		c.logger.WarnContext(ctx, "cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.store.Set(ctx, key, raw); err != nil {
		c.logger.WarnContext(ctx, "cache set failed", "key", key, "error", err)
	}
}

func (c *JSON[T]) Invalidate(ctx context.Context, prefix string) {
	if err := c.store.DeletePrefix(ctx, prefix); err != nil {
		c.logger.WarnContext(ctx, "cache invalidate failed", "prefix", prefix, "error", err)
	}
}

// GetOrLoad returns the cached value for key or runs loader once across
// concurrent callers and stores its result. Loader errors are not cached.
// The shared load ignores any one caller's cancellation, so loader must
// bound its own runtime.
func (c *JSON[T]) GetOrLoad(ctx context.Context, key string, loader func(context.Context) (T, error)) (T, error) {
	var zero T
	if loader == nil {
		return zero, fmt.Errorf("loader is required")
	}
	if key == "" {
		return loader(ctx)
	}
	if value, ok := c.Get(ctx, key); ok {
		return value, nil
	}

	out, err, _ := c.flight.DoContext(ctx, key, func(loadCtx context.Context) (any, error) {
		if cached, ok := c.Get(loadCtx, key); ok {
			return cached, nil
		}
		loaded, loadErr := loader(loadCtx)
		if loadErr != nil {
			return nil, loadErr
		}
		c.Set(loadCtx, key, loaded)
		return loaded, nil
	})
	if err != nil {
		return zero, err
	}
	value, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("unexpected cached value type %T", out)
	}
	return value, nil
}
