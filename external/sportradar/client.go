// Package sportradar fetches MLB v8 feeds and decodes them into loose
// documents.
package sportradar

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/diamond-stats/internal/domain/document"
	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
	"github.com/riskibarqy/diamond-stats/internal/platform/resilience"
	"github.com/riskibarqy/diamond-stats/internal/usecase"
)

const (
	defaultBaseURL     = "https://api.sportradar.com"
	defaultAccessLevel = "trial"
	defaultLanguage    = "en"
	defaultTimeout     = 20 * time.Second
	apiVersion         = "v8"
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errSportradarTransient = crerr.New("sportradar transient failure")

type ClientConfig struct {
	Transport      Transport
	HTTPClient     *http.Client
	BaseURL        string
	AccessLevel    string
	Language       string
	APIKey         string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

type Client struct {
	transport      Transport
	baseURL        string
	apiKey         string
	timeout        time.Duration
	maxRetries     int
	retryBackoff   time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
	missingKeyOnce sync.Once
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	transport := cfg.Transport
	if transport == nil {
		transport = NewNetHTTPTransport(cfg.HTTPClient, timeout)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	accessLevel := firstNonEmpty(strings.Trim(strings.TrimSpace(cfg.AccessLevel), "/"), defaultAccessLevel)
	language := firstNonEmpty(strings.Trim(strings.TrimSpace(cfg.Language), "/"), defaultLanguage)

	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = time.Second
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)
	breaker := resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq)
	breaker.OnStateChange(func(from, to resilience.CircuitState) {
		logger.Warn("sportradar circuit breaker state changed", "from", from, "to", to)
	})

	return &Client{
		transport:      transport,
		baseURL:        fmt.Sprintf("%s/mlb/%s/%s/%s", baseURL, accessLevel, apiVersion, language),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		maxRetries:     max(cfg.MaxRetries, 0),
		retryBackoff:   retryBackoff,
		logger:         logger,
		breaker:        breaker,
		circuitEnabled: breakerCfg.Enabled,
	}
}

// CircuitCounts exposes breaker state for health output.
func (c *Client) CircuitCounts() resilience.Counts {
	return c.breaker.Counts()
}

func (c *Client) SeasonLeaders(ctx context.Context, season int, phase string) (document.Doc, error) {
	phase, err := normalizeSeason(season, phase)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, fmt.Sprintf("seasons/%d/%s/leaders/statistics.json", season, phase))
}

func (c *Client) Teams(ctx context.Context) (document.Doc, error) {
	return c.doJSON(ctx, "league/teams.json")
}

func (c *Client) TeamProfile(ctx context.Context, teamID string) (document.Doc, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}
	return c.doJSON(ctx, "teams/"+url.PathEscape(teamID)+"/profile.json")
}

func (c *Client) PlayerProfile(ctx context.Context, playerID string) (document.Doc, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", usecase.ErrInvalidInput)
	}
	return c.doJSON(ctx, "players/"+url.PathEscape(playerID)+"/profile.json")
}

func (c *Client) DailySchedule(ctx context.Context, date time.Time) (document.Doc, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: schedule date is required", usecase.ErrInvalidInput)
	}
	return c.doJSON(ctx, fmt.Sprintf("games/%04d/%02d/%02d/schedule.json", date.Year(), int(date.Month()), date.Day()))
}

func (c *Client) Standings(ctx context.Context, season int, phase string) (document.Doc, error) {
	phase, err := normalizeSeason(season, phase)
	if err != nil {
		return nil, err
	}
	return c.doJSON(ctx, fmt.Sprintf("seasons/%d/%s/standings.json", season, phase))
}

func (c *Client) doJSON(ctx context.Context, path string) (document.Doc, error) {
	if c.apiKey == "" {
		c.missingKeyOnce.Do(func() {
			c.logger.WarnContext(ctx, "sportradar api key is not configured, requests will likely be rejected")
		})
	}
	values := url.Values{}
	values.Set("api_key", c.apiKey)
	fullURL := c.baseURL + "/" + path + "?" + values.Encode()

	// One breaker admission and one recorded outcome per upstream call,
	// however many callers share it.
	out, err, _ := c.flight.DoContext(ctx, path, func(flightCtx context.Context) (any, error) {
		flightCtx, cancel := context.WithTimeout(flightCtx, c.flightBudget())
		defer cancel()

		if c.circuitEnabled {
			if err := c.breaker.Allow(); err != nil {
				c.logger.WarnContext(flightCtx, "sportradar circuit breaker rejected request", "state", c.breaker.State(), "path", path)
				return nil, fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
			}
		}

		raw, reqErr := c.executeRequest(flightCtx, fullURL)
		if c.circuitEnabled {
			if isCircuitFailure(reqErr) || stderrors.Is(reqErr, context.DeadlineExceeded) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		if isCircuitFailure(err) {
			return nil, fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}
	return decodeDocument(raw)
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	header := map[string]string{"accept": "application/json"}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		status, raw, err := c.transport.Get(ctx, fullURL, header)
		switch {
		case err != nil:
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = fmt.Errorf("%w: send request: %s", errSportradarTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		case status >= 200 && status < 300:
			return raw, nil
		case status == http.StatusNotFound:
			return nil, fmt.Errorf("%w: provider status=%d url=%s", usecase.ErrNotFound, status, redactAPIURL(fullURL))
		case isRetryableStatus(status):
			lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSportradarTransient, status, abbreviateBody(raw, c.apiKey))
		default:
			lastErr = fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(raw, c.apiKey))
			c.logger.WarnContext(ctx, "sportradar request rejected", "url", redactAPIURL(fullURL), "status", status)
			return nil, lastErr
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.retryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sportradar request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

// flightBudget bounds a shared upstream call: every attempt at the transport
// timeout plus the linear backoff between attempts.
func (c *Client) flightBudget() time.Duration {
	attempts := time.Duration(c.maxRetries + 1)
	backoff := time.Duration(c.maxRetries*(c.maxRetries+1)/2) * c.retryBackoff
	return attempts*c.timeout + backoff
}

// decodeDocument treats any non-object JSON body as an empty document.
func decodeDocument(raw []byte) (document.Doc, error) {
	var decoded any
	if err := sonic.Unmarshal(raw, &decoded); err != nil {
		return nil, crerr.Wrap(err, "decode provider payload")
	}
	doc, ok := document.AsObject(decoded)
	if !ok {
		return document.Doc{}, nil
	}
	return doc, nil
}

func normalizeSeason(season int, phase string) (string, error) {
	if season <= 0 {
		return "", fmt.Errorf("%w: season must be greater than zero", usecase.ErrInvalidInput)
	}
	phase = strings.ToUpper(strings.TrimSpace(phase))
	if phase == "" {
		phase = "REG"
	}
	return phase, nil
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	return apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return apiKeyParamRegex.ReplaceAllString(rawURL, "api_key=REDACTED")
	}
	query := parsed.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte, apiKey string) string {
	text := sanitizeSensitiveText(string(body), apiKey)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func isCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSportradarTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
