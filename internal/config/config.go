// Package config loads the article API configuration.
//
// Values are resolved in three layers: built-in defaults, an optional YAML
// file named by CONFIG_FILE, and environment variables (which may come from a
// .env file). Later layers win.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/subosito/gotenv"
	"gopkg.in/yaml.v3"

	hhttp "article-api/internal/handler/http"
	"article-api/internal/infra/db"
	artUC "article-api/internal/usecase/article"
	pkgcfg "article-api/pkg/config"
)

// Config is the resolved service configuration.
type Config struct {
	HTTPAddr        string        `yaml:"http_addr"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	UpdateMode      string        `yaml:"update_mode"`
	SwaggerEnabled  bool          `yaml:"swagger_enabled"`
	TracingEnabled  bool          `yaml:"tracing_enabled"`
	StatsSchedule   string        `yaml:"stats_schedule"`

	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// DatabaseConfig selects the driver and sizes the pool.
type DatabaseConfig struct {
	Driver                string `yaml:"driver"`
	URL                   string `yaml:"url"`
	CircuitBreakerEnabled bool   `yaml:"circuit_breaker_enabled"`

	Pool db.ConnectionConfig `yaml:",inline"`
}

// LogConfig controls the root logger.
type LogConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// RateLimitConfig configures the per-IP limiter. RPS 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
	// TrustedProxies are IPs or CIDRs allowed to name the client through
	// X-Forwarded-For or X-Real-IP. Empty keys every request by its peer.
	TrustedProxies []string `yaml:"trusted_proxies"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		HTTPAddr:        "127.0.0.1:9090",
		ShutdownTimeout: 10 * time.Second,
		UpdateMode:      string(artUC.UpdateModeOverwrite),
		StatsSchedule:   "@every 1m",
		Database: DatabaseConfig{
			Pool: db.DefaultConnectionConfig(),
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		RateLimit: RateLimitConfig{Burst: 20},
	}
}

// Load resolves the configuration and validates it.
func Load() (*Config, error) {
	if err := loadDotEnv(pkgcfg.GetEnvString("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	cfg := Default()
	if path := pkgcfg.GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = db.InferDriver(cfg.Database.URL)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadDotEnv reads KEY=VALUE pairs without overriding variables already set.
// A missing file is not an error.
func loadDotEnv(path string) error {
	if err := gotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	// #nosec G304 -- path comes from the operator's CONFIG_FILE
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HTTPAddr = pkgcfg.GetEnvString("HTTP_ADDR", c.HTTPAddr)
	c.ShutdownTimeout = pkgcfg.GetEnvDuration("SHUTDOWN_TIMEOUT", c.ShutdownTimeout)
	c.UpdateMode = pkgcfg.GetEnvString("UPDATE_MODE", c.UpdateMode)
	c.SwaggerEnabled = pkgcfg.GetEnvBool("SWAGGER_ENABLED", c.SwaggerEnabled)
	c.TracingEnabled = pkgcfg.GetEnvBool("TRACING_ENABLED", c.TracingEnabled)
	c.StatsSchedule = pkgcfg.GetEnvString("STATS_SCHEDULE", c.StatsSchedule)

	d := &c.Database
	d.Driver = strings.ToLower(pkgcfg.GetEnvString("DB_DRIVER", d.Driver))
	d.URL = pkgcfg.GetEnvString("DATABASE_URL", d.URL)
	d.CircuitBreakerEnabled = pkgcfg.GetEnvBool("DB_CIRCUIT_BREAKER_ENABLED", d.CircuitBreakerEnabled)
	d.Pool.MaxOpenConns = pkgcfg.GetEnvInt("DB_MAX_OPEN_CONNS", d.Pool.MaxOpenConns)
	d.Pool.MaxIdleConns = pkgcfg.GetEnvInt("DB_MAX_IDLE_CONNS", d.Pool.MaxIdleConns)
	d.Pool.ConnMaxLifetime = pkgcfg.GetEnvDuration("DB_CONN_MAX_LIFETIME", d.Pool.ConnMaxLifetime)
	d.Pool.ConnMaxIdleTime = pkgcfg.GetEnvDuration("DB_CONN_MAX_IDLE_TIME", d.Pool.ConnMaxIdleTime)

	l := &c.Log
	l.Level = pkgcfg.GetEnvString("LOG_LEVEL", l.Level)
	l.Format = pkgcfg.GetEnvString("LOG_FORMAT", l.Format)
	l.File = pkgcfg.GetEnvString("LOG_FILE", l.File)
	l.MaxSizeMB = pkgcfg.GetEnvInt("LOG_MAX_SIZE_MB", l.MaxSizeMB)
	l.MaxBackups = pkgcfg.GetEnvInt("LOG_MAX_BACKUPS", l.MaxBackups)
	l.MaxAgeDays = pkgcfg.GetEnvInt("LOG_MAX_AGE_DAYS", l.MaxAgeDays)

	c.RateLimit.RPS = pkgcfg.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = pkgcfg.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	if v := pkgcfg.GetEnvString("RATE_LIMIT_TRUSTED_PROXIES", ""); v != "" {
		c.RateLimit.TrustedProxies = strings.Split(v, ",")
	}
}

// Validate reports the first configuration problem that would prevent startup.
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return errors.New("DATABASE_URL not set")
	}
	switch c.Database.Driver {
	case db.DriverMySQL, db.DriverPostgres:
	default:
		return fmt.Errorf("DB_DRIVER: unsupported driver %q", c.Database.Driver)
	}
	if _, err := artUC.ParseUpdateMode(c.UpdateMode); err != nil {
		return fmt.Errorf("UPDATE_MODE: %w", err)
	}
	if c.HTTPAddr == "" {
		return errors.New("HTTP_ADDR must not be empty")
	}
	if err := pkgcfg.InRange("SHUTDOWN_TIMEOUT", c.ShutdownTimeout, time.Second, 5*time.Minute); err != nil {
		return err
	}
	if err := pkgcfg.AtLeast("RATE_LIMIT_RPS", c.RateLimit.RPS, 0); err != nil {
		return err
	}
	if c.RateLimit.RPS > 0 {
		if err := pkgcfg.AtLeast("RATE_LIMIT_BURST", c.RateLimit.Burst, 1); err != nil {
			return err
		}
	}
	if _, err := hhttp.ParseProxyList(c.RateLimit.TrustedProxies); err != nil {
		return fmt.Errorf("RATE_LIMIT_TRUSTED_PROXIES: %w", err)
	}
	if c.StatsSchedule != "" {
		if _, err := cron.ParseStandard(c.StatsSchedule); err != nil {
			return fmt.Errorf("STATS_SCHEDULE: %w", err)
		}
	}
	return nil
}
