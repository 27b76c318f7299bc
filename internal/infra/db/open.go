package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"

	"article-api/internal/resilience/retry"
)

// Supported values of DB_DRIVER.
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// pingTimeout bounds a single startup ping attempt.
const pingTimeout = 5 * time.Second

// ConnectionConfig holds database connection pool configuration.
type ConnectionConfig struct {
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// DefaultConnectionConfig returns the default connection pool configuration.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxOpenConns:    25,
		MaxIdleConns:    10,
		ConnMaxLifetime: 1 * time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

// InferDriver guesses the driver from a DSN; anything that is not a
// postgres URL is treated as MySQL.
func InferDriver(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DriverPostgres
	}
	return DriverMySQL
}

// Open creates the shared connection pool, applies pool settings, and pings
// the database. Connection-level ping failures are retried with backoff so the
// service can start next to a database that is still booting.
func Open(ctx context.Context, driver, dsn string, pool ConnectionConfig) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("open database: DATABASE_URL not set")
	}

	driverName, normalized, err := prepare(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db, err := sql.Open(driverName, normalized)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	Configure(db, pool)

	if err := Ping(ctx, db, retry.DBStartupConfig()); err != nil {
		_ = db.Close()
		return nil, err
	}

	slog.Info("database connection established successfully", slog.String("driver", driver))
	return db, nil
}

// Configure applies pool limits to db. Non-positive values keep the defaults.
func Configure(db *sql.DB, cfg ConnectionConfig) {
	def := DefaultConnectionConfig()
	if cfg.MaxOpenConns <= 0 {
		cfg.MaxOpenConns = def.MaxOpenConns
	}
	if cfg.MaxIdleConns <= 0 {
		cfg.MaxIdleConns = def.MaxIdleConns
	}
	if cfg.ConnMaxLifetime <= 0 {
		cfg.ConnMaxLifetime = def.ConnMaxLifetime
	}
	if cfg.ConnMaxIdleTime <= 0 {
		cfg.ConnMaxIdleTime = def.ConnMaxIdleTime
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	slog.Info("database connection pool configured",
		slog.Int("max_open_conns", cfg.MaxOpenConns),
		slog.Int("max_idle_conns", cfg.MaxIdleConns),
		slog.Duration("conn_max_lifetime", cfg.ConnMaxLifetime),
		slog.Duration("conn_max_idle_time", cfg.ConnMaxIdleTime))
}

// Ping verifies connectivity, retrying connection-level failures per cfg.
func Ping(ctx context.Context, db *sql.DB, cfg retry.Config) error {
	err := retry.Do(ctx, cfg, "ping", func(ctx context.Context) error {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

// prepare maps a driver name to its database/sql name and normalizes the DSN.
func prepare(driver, dsn string) (driverName, normalized string, err error) {
	switch driver {
	case "", DriverMySQL:
		normalized, err = MySQLDSN(dsn)
		return "mysql", normalized, err
	case DriverPostgres:
		return "pgx", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported driver %q", driver)
	}
}

// MySQLDSN converts a mysql:// URL or a native DSN into a native DSN with
// parseTime enabled, so DATETIME columns scan into time.Time.
func MySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mysql://") {
		native, err := mysqlURLToDSN(dsn)
		if err != nil {
			return "", err
		}
		dsn = native
	}

	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func mysqlURLToDSN(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse mysql url: %w", err)
	}

	host := u.Host
	if host == "" {
		host = "127.0.0.1"
	}
	if _, _, err := net.SplitHostPort(host); err != nil {
		host = net.JoinHostPort(host, "3306")
	}

	var userinfo string
	if u.User != nil {
		userinfo = u.User.Username()
		if pass, ok := u.User.Password(); ok {
			userinfo += ":" + pass
		}
		userinfo += "@"
	}

	dsn := fmt.Sprintf("%stcp(%s)/%s", userinfo, host, strings.TrimPrefix(u.Path, "/"))
	if u.RawQuery != "" {
		dsn += "?" + u.RawQuery
	}
	return dsn, nil
}
