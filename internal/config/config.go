package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/diamond-stats/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	TransportNetHTTP  = "nethttp"
	TransportFastHTTP = "fasthttp"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
	SwaggerEnabled     bool
	LogLevel           logging.Level

	CacheEnabled   bool
	CacheTTL       time.Duration
	CacheRedisURL  string
	CacheKeyPrefix string

	PprofEnabled bool
	PprofAddr    string

	UptraceEnabled     bool
	UptraceDSN         string
	UptraceLogsEnabled bool

	BetterStackEnabled  bool
	BetterStackEndpoint string
	BetterStackToken    string
	BetterStackTimeout  time.Duration
	BetterStackMinLevel logging.Level

	PyroscopeEnabled           bool
	PyroscopeServerAddress     string
	PyroscopeAppName           string
	PyroscopeAuthToken         string
	PyroscopeBasicAuthUser     string
	PyroscopeBasicAuthPassword string
	PyroscopeUploadRate        time.Duration

	Sportradar SportradarConfig
	Leaders    LeadersConfig
}

type SportradarConfig struct {
	BaseURL               string
	AccessLevel           string
	Language              string
	APIKey                string
	Transport             string
	Timeout               time.Duration
	MaxRetries            int
	RetryBackoff          time.Duration
	CircuitEnabled        bool
	CircuitFailureCount   int
	CircuitOpenTimeout    time.Duration
	CircuitHalfOpenMaxReq int
}

// LeadersConfig drives the shared leader board that is selected at startup.
type LeadersConfig struct {
	DefaultSeason        int
	DefaultPhase         string
	DefaultStat          string
	TopN                 int
	BoardEnabled         bool
	BoardWorkers         int
	BoardRefreshInterval time.Duration
	BoardRefreshTimeout  time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	swaggerDefault := "true"
	if appEnv == EnvProd {
		swaggerDefault = "false"
	}

	cfg := Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("APP_SERVICE_NAME", "diamond-stats-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		CacheRedisURL:      strings.TrimSpace(getEnv("CACHE_REDIS_URL", "")),
		CacheKeyPrefix:     strings.TrimSpace(getEnv("CACHE_KEY_PREFIX", "diamond-stats:")),
		PprofAddr:          strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
		BetterStackToken:   strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),

		PyroscopeServerAddress:     strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", "")),
		PyroscopeAuthToken:         strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:     strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword: strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	level, err := logging.ParseLevel(getEnv("APP_LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	p := parser{}
	cfg.SwaggerEnabled = p.boolean("SWAGGER_ENABLED", swaggerDefault)
	cfg.ReadTimeout = p.positiveDuration("APP_READ_TIMEOUT", "10s")
	cfg.WriteTimeout = p.positiveDuration("APP_WRITE_TIMEOUT", "30s")
	cfg.ShutdownTimeout = p.positiveDuration("APP_SHUTDOWN_TIMEOUT", "10s")
	cfg.CacheEnabled = p.boolean("CACHE_ENABLED", "true")
	cfg.CacheTTL = p.positiveDuration("CACHE_TTL", "6h")
	cfg.PprofEnabled = p.boolean("PPROF_ENABLED", "false")
	cfg.UptraceEnabled = p.boolean("UPTRACE_ENABLED", "false")
	cfg.UptraceLogsEnabled = p.boolean("UPTRACE_LOGS_ENABLED", "true")
	cfg.BetterStackEnabled = p.boolean("BETTERSTACK_ENABLED", "false")
	cfg.BetterStackTimeout = p.positiveDuration("BETTERSTACK_TIMEOUT", "3s")
	cfg.PyroscopeEnabled = p.boolean("PYROSCOPE_ENABLED", "false")
	cfg.PyroscopeUploadRate = p.positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if p.err != nil {
		return Config{}, p.err
	}

	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	cfg.UptraceDSN = strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	cfg.BetterStackEndpoint = strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if cfg.BetterStackEnabled && cfg.BetterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	cfg.BetterStackMinLevel, err = logging.ParseLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_MIN_LEVEL: %w", err)
	}

	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	cfg.Sportradar, err = loadSportradar(appEnv)
	if err != nil {
		return Config{}, err
	}
	cfg.Leaders, err = loadLeaders()
	if err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadSportradar(appEnv string) (SportradarConfig, error) {
	p := parser{}
	out := SportradarConfig{
		BaseURL:               strings.TrimSpace(getEnv("SPORTRADAR_BASE_URL", "https://api.sportradar.com")),
		AccessLevel:           strings.TrimSpace(getEnv("SPORTRADAR_ACCESS_LEVEL", "trial")),
		Language:              strings.TrimSpace(getEnv("SPORTRADAR_LANGUAGE", "en")),
		APIKey:                strings.TrimSpace(getEnv("SPORTRADAR_API_KEY", "")),
		Transport:             strings.ToLower(strings.TrimSpace(getEnv("SPORTRADAR_TRANSPORT", TransportNetHTTP))),
		Timeout:               p.positiveDuration("SPORTRADAR_TIMEOUT", "20s"),
		MaxRetries:            p.integer("SPORTRADAR_MAX_RETRIES", 0),
		RetryBackoff:          p.positiveDuration("SPORTRADAR_RETRY_BACKOFF", "1s"),
		CircuitEnabled:        p.boolean("SPORTRADAR_CIRCUIT_ENABLED", "true"),
		CircuitFailureCount:   p.integer("SPORTRADAR_CIRCUIT_FAILURE_COUNT", 5),
		CircuitOpenTimeout:    p.positiveDuration("SPORTRADAR_CIRCUIT_OPEN_TIMEOUT", "30s"),
		CircuitHalfOpenMaxReq: p.integer("SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ", 1),
	}
	if p.err != nil {
		return SportradarConfig{}, p.err
	}

	switch {
	case out.Transport != TransportNetHTTP && out.Transport != TransportFastHTTP:
		return SportradarConfig{}, fmt.Errorf("invalid SPORTRADAR_TRANSPORT %q: valid values are %s, %s", out.Transport, TransportNetHTTP, TransportFastHTTP)
	case out.MaxRetries < 0:
		return SportradarConfig{}, fmt.Errorf("SPORTRADAR_MAX_RETRIES must be >= 0")
	case out.CircuitFailureCount < 1:
		return SportradarConfig{}, fmt.Errorf("SPORTRADAR_CIRCUIT_FAILURE_COUNT must be >= 1")
	case out.CircuitHalfOpenMaxReq < 1:
		return SportradarConfig{}, fmt.Errorf("SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	case out.APIKey == "" && appEnv == EnvProd:
		return SportradarConfig{}, fmt.Errorf("SPORTRADAR_API_KEY is required when APP_ENV=%s", EnvProd)
	}
	return out, nil
}

func loadLeaders() (LeadersConfig, error) {
	p := parser{}
	out := LeadersConfig{
		DefaultSeason:        p.integer("LEADERS_DEFAULT_SEASON", 2025),
		DefaultPhase:         strings.ToUpper(strings.TrimSpace(getEnv("LEADERS_DEFAULT_PHASE", "REG"))),
		DefaultStat:          strings.ToLower(strings.TrimSpace(getEnv("LEADERS_DEFAULT_STAT", "home_runs"))),
		TopN:                 p.integer("LEADERS_TOP_N", 10),
		BoardEnabled:         p.boolean("BOARD_ENABLED", "true"),
		BoardWorkers:         p.integer("BOARD_WORKERS", 2),
		BoardRefreshInterval: p.duration("BOARD_REFRESH_INTERVAL", "5m"),
		BoardRefreshTimeout:  p.positiveDuration("BOARD_REFRESH_TIMEOUT", "30s"),
	}
	if p.err != nil {
		return LeadersConfig{}, p.err
	}

	switch {
	case out.DefaultSeason < 1876 || out.DefaultSeason > 2100:
		return LeadersConfig{}, fmt.Errorf("LEADERS_DEFAULT_SEASON must be a year between 1876 and 2100")
	case out.DefaultPhase != "PRE" && out.DefaultPhase != "REG" && out.DefaultPhase != "PST":
		return LeadersConfig{}, fmt.Errorf("invalid LEADERS_DEFAULT_PHASE %q: valid values are PRE, REG, PST", out.DefaultPhase)
	case out.DefaultStat == "":
		return LeadersConfig{}, fmt.Errorf("LEADERS_DEFAULT_STAT cannot be empty")
	case out.TopN < 1 || out.TopN > 100:
		return LeadersConfig{}, fmt.Errorf("LEADERS_TOP_N must be between 1 and 100")
	case out.BoardWorkers < 1:
		return LeadersConfig{}, fmt.Errorf("BOARD_WORKERS must be >= 1")
	case out.BoardRefreshInterval < 0:
		return LeadersConfig{}, fmt.Errorf("BOARD_REFRESH_INTERVAL must be >= 0")
	}
	return out, nil
}

// parser records the first parse failure so a block of settings can be
// read without an error check after every line.
type parser struct {
	err error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("parse %s: %w", key, err)
	}
}

func (p *parser) boolean(key, fallback string) bool {
	v, err := strconv.ParseBool(getEnv(key, fallback))
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) integer(key string, fallback int) int {
	v, err := getEnvAsInt(key, fallback)
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) duration(key, fallback string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		p.fail(key, err)
	}
	return v
}

func (p *parser) positiveDuration(key, fallback string) time.Duration {
	v := p.duration(key, fallback)
	if v <= 0 && p.err == nil {
		p.err = fmt.Errorf("%s must be > 0", key)
	}
	return v
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	return strconv.Atoi(value)
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	for _, item := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(item), "=")
		if !ok {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(key), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(value), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
