package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type team struct {
	ID   string `json:"id"`
	Abbr string `json:"abbr"`
}

type failingStore struct {
	NopStore
}

func (failingStore) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("connection refused")
}

func (failingStore) Set(context.Context, string, []byte) error {
	return errors.New("connection refused")
}

func TestJSON_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	c := NewJSON[[]team](NewMemoryStore(time.Minute), nil)
	var calls atomic.Int32

	loader := func(context.Context) ([]team, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []team{{ID: "1", Abbr: "NYY"}}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err := c.GetOrLoad(context.Background(), "teams:list", loader)
			if err != nil {
				errCh <- err
				return
			}
			if len(got) != 1 || got[0].Abbr != "NYY" {
				errCh <- errors.New("unexpected loaded value")
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load())
}

func TestJSON_GetOrLoad_CancelledCallerDoesNotFailJoiner(t *testing.T) {
	t.Parallel()

	c := NewJSON[[]team](NewMemoryStore(time.Minute), nil)
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) ([]team, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []team{{ID: "147", Abbr: "NYY"}}, nil
	}

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := c.GetOrLoad(ctxA, "teams:list", loader)
		errA <- err
	}()
	<-started

	type result struct {
		got []team
		err error
	}
	resB := make(chan result, 1)
	go func() {
		got, err := c.GetOrLoad(context.Background(), "teams:list", loader)
		resB <- result{got, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	res := <-resB
	require.NoError(t, res.err)
	require.Len(t, res.got, 1)
	assert.Equal(t, "NYY", res.got[0].Abbr)

	cached, ok := c.Get(context.Background(), "teams:list")
	require.True(t, ok)
	assert.Equal(t, "147", cached[0].ID)
}

func TestJSON_GetOrLoad_ReadsBackEncodedValue(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(time.Minute)
	c := NewJSON[[]team](store, nil)
	var calls atomic.Int32
	loader := func(context.Context) ([]team, error) {
		calls.Add(1)
		return []team{{ID: "7", Abbr: "LAD"}}, nil
	}

	_, err := c.GetOrLoad(context.Background(), "teams:list", loader)
	require.NoError(t, err)
	got, err := c.GetOrLoad(context.Background(), "teams:list", loader)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, []team{{ID: "7", Abbr: "LAD"}}, got)

	raw, ok, _ := store.Get(context.Background(), "teams:list")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":"7","abbr":"LAD"}]`, string(raw))
}

func TestJSON_LoaderErrorIsNotCached(t *testing.T) {
	t.Parallel()

	c := NewJSON[[]team](NewMemoryStore(time.Minute), nil)
	boom := errors.New("upstream down")

	_, err := c.GetOrLoad(context.Background(), "teams:list", func(context.Context) ([]team, error) {
		return nil, boom
	})
	require.ErrorIs(t, err, boom)

	got, err := c.GetOrLoad(context.Background(), "teams:list", func(context.Context) ([]team, error) {
		return []team{{ID: "1"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestJSON_BackendFailureFallsBackToLoader(t *testing.T) {
	t.Parallel()

	c := NewJSON[[]team](failingStore{}, nil)
	got, err := c.GetOrLoad(context.Background(), "teams:list", func(context.Context) ([]team, error) {
		return []team{{ID: "1"}}, nil
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestJSON_UndecodableEntryIsDropped(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(0)
	_ = store.Set(context.Background(), "teams:list", []byte("{not json"))
	c := NewJSON[[]team](store, nil)

	_, ok := c.Get(context.Background(), "teams:list")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
