package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/config"
	"github.com/riskibarqy/diamond-stats/internal/platform/cache"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(upstreamURL string) config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		Sportradar: config.SportradarConfig{
			BaseURL:             upstreamURL,
			APIKey:              "test-key",
			Transport:           config.TransportNetHTTP,
			Timeout:             time.Second,
			CircuitEnabled:      true,
			CircuitFailureCount: 5,
			CircuitOpenTimeout:  time.Second,
		},
		Leaders: config.LeadersConfig{
			DefaultSeason:       2025,
			DefaultPhase:        "REG",
			DefaultStat:         "home_runs",
			TopN:                10,
			BoardEnabled:        true,
			BoardWorkers:        1,
			BoardRefreshTimeout: time.Second,
		},
	}
}

func TestNew_ServesHealthAndSelectsDefaultBoard(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer upstream.Close()

	a, err := New(context.Background(), testConfig(upstream.URL), logging.NewNop())
	require.NoError(t, err)
	require.NotNil(t, a.board)

	snapshot := a.board.Snapshot()
	assert.Equal(t, 2025, snapshot.Selection.Season)
	assert.Equal(t, "home_runs", snapshot.Selection.Stat)

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, a.Shutdown(ctx))
}

func TestNew_BoardDisabled(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.Leaders.BoardEnabled = false

	a, err := New(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.Nil(t, a.board)

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/board", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	t.Parallel()

	cfg := testConfig("http://127.0.0.1:1")
	cfg.HTTPAddr = ""

	_, err := New(context.Background(), cfg, logging.NewNop())
	require.Error(t, err)
}

func TestNewCacheStore(t *testing.T) {
	t.Parallel()

	cfg := testConfig("")

	cfg.CacheEnabled = false
	store, err := newCacheStore(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, cache.NopStore{}, store)

	cfg.CacheEnabled = true
	store, err = newCacheStore(context.Background(), cfg, logging.NewNop())
	require.NoError(t, err)
	assert.IsType(t, &cache.MemoryStore{}, store)

	cfg.CacheRedisURL = "not a url"
	_, err = newCacheStore(context.Background(), cfg, logging.NewNop())
	assert.Error(t, err)
}
