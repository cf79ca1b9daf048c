package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/2beens/gymplan/internal/gymplan/periodization"

	"github.com/BurntSushi/toml"
	"github.com/sethvargo/go-envconfig"
)

var ErrEnvNotConfigured = errors.New("environment not configured")

type Config struct {
	Environment string `toml:"-"`

	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	AllowedOrigins []string `toml:"allowed_origins"`

	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`

	// storage
	PostgresHost   string `toml:"postgres_host"`
	PostgresPort   string `toml:"postgres_port"`
	PostgresDBName string `toml:"postgres_db_name"`
	PostgresUser   string `toml:"postgres_user"`
	RedisHost      string `toml:"redis_host"`
	RedisPort      string `toml:"redis_port"`

	// metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`

	// engine
	AnalysisCacheTTL        Duration `toml:"analysis_cache_ttl"`
	AnalysisRefreshInterval Duration `toml:"analysis_refresh_interval"`
	ProgramCacheSizeMB      int      `toml:"program_cache_size_mb"`
	RateLimitAllowedPerMin  int      `toml:"rate_limit_allowed_per_min"`

	// Periodization entries replace the built-in catalog entries of the same type.
	Periodization []periodization.Config `toml:"periodization"`

	Secrets Secrets `toml:"-"`
}

// Secrets are never stored in the config file, only read from the environment.
type Secrets struct {
	RedisPassword    string `env:"GYMPLAN_REDIS_PASS"`
	PostgresPassword string `env:"GYMPLAN_POSTGRES_PASS"`
	APISecret        string `env:"GYMPLAN_API_SECRET"`
	SentryDSN        string `env:"SENTRY_DSN"`
	HoneycombEnabled bool   `env:"HONEYCOMB_ENABLED, default=false"`
	HoneycombAPIKey  string `env:"HONEYCOMB_API_KEY"`
}

// Duration is a time.Duration readable from TOML strings like "5m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvNotConfigured, env)
	}
	return cfg, nil
}

// Load reads the TOML file at path, picks the env section, applies the defaults
// and reads the secrets from the environment.
func Load(env, path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	return Parse(context.Background(), env, string(content), envconfig.OsLookuper())
}

// Parse is Load without the file system, secrets are looked up with lookuper.
func Parse(ctx context.Context, env, content string, lookuper envconfig.Lookuper) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(content, &t); err != nil {
		return nil, fmt.Errorf("decode toml config: %w", err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.Environment = strings.ToLower(env)
	cfg.applyDefaults()

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg.Secrets,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("process env secrets: %w", err)
	}

	for _, p := range cfg.Periodization {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("periodization override: %w", err)
		}
	}

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.PostgresUser == "" {
		c.PostgresUser = "postgres"
	}
	if c.PrometheusMetricsHost == "" {
		c.PrometheusMetricsHost = "localhost"
	}
	if c.PrometheusMetricsPort == "" {
		c.PrometheusMetricsPort = "2112"
	}
	if c.AnalysisCacheTTL.Duration == 0 {
		c.AnalysisCacheTTL.Duration = 10 * time.Minute
	}
	if c.AnalysisRefreshInterval.Duration == 0 {
		c.AnalysisRefreshInterval.Duration = time.Minute
	}
	if c.ProgramCacheSizeMB == 0 {
		c.ProgramCacheSizeMB = 64
	}
	if c.RateLimitAllowedPerMin == 0 {
		c.RateLimitAllowedPerMin = 120
	}
}
