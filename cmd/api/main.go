package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"article-api/internal/config"
	mysqlRepo "article-api/internal/infra/adapter/persistence/mysql"
	pgRepo "article-api/internal/infra/adapter/persistence/postgres"
	"article-api/internal/infra/db"
	"article-api/internal/infra/worker"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/metrics"
	"article-api/internal/observability/slo"
	"article-api/internal/observability/tracing"
	"article-api/internal/repository"
	"article-api/internal/resilience/circuitbreaker"
	artUC "article-api/internal/usecase/article"
	pkgcfg "article-api/pkg/config"

	hhttp "article-api/internal/handler/http"
	harticle "article-api/internal/handler/http/article"
	"article-api/internal/handler/http/requestid"
	"article-api/internal/handler/http/respond"

	_ "article-api/docs" // swagger docs
)

// @title           Article API
// @version         1.0
// @description     記事 (Article) リソースの CRUD を提供する REST API

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      127.0.0.1:9090
// @BasePath  /

// rateLimitCleanupInterval is how often idle per-IP buckets are dropped.
const rateLimitCleanupInterval = 5 * time.Minute

func main() {
	if err := run(); err != nil {
		slog.Error("article-api exited with error", slog.String("error", respond.SanitizeError(err)))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, closer := logging.Setup(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	defer func() { _ = closer.Close() }()

	version := getVersion()

	shutdownTracing := tracing.Init(cfg.TracingEnabled, version)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			logger.Warn("tracer shutdown failed", slog.Any("error", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.Database.Driver, cfg.Database.URL, cfg.Database.Pool)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	repo, breaker := newRepository(cfg, database)
	mode, err := artUC.ParseUpdateMode(cfg.UpdateMode)
	if err != nil {
		return err
	}
	svc := artUC.Service{Repo: repo, Mode: mode}

	var limiter *hhttp.IPRateLimiter
	if cfg.RateLimit.RPS > 0 {
		proxies, err := hhttp.ParseProxyList(cfg.RateLimit.TrustedProxies)
		if err != nil {
			return err
		}
		limiter = hhttp.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).TrustProxies(proxies)
		logger.Info("rate limiting enabled",
			slog.Float64("rps", cfg.RateLimit.RPS),
			slog.Int("burst", cfg.RateLimit.Burst),
			slog.Int("trusted_proxies", len(proxies)))
	}

	mux := setupRoutes(cfg, database, svc, breaker, version)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           applyMiddleware(mux, limiter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	statsJob := &worker.StatsJob{
		Articles: repo,
		Pool:     database,
		SLO:      slo.NewTracker(metrics.HTTPRequestsTotal, metrics.HTTPRequestDuration),
		Logger:   logger,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("version", version),
			slog.String("driver", cfg.Database.Driver),
			slog.String("update_mode", string(mode)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", cfg.HTTPAddr, err)
		}
		return nil
	})

	g.Go(func() error {
		if cfg.StatsSchedule == "" {
			return nil
		}
		return worker.Start(gctx, cfg.StatsSchedule, statsJob)
	})

	if limiter != nil {
		g.Go(func() error {
			limiter.StartCleanup(gctx, rateLimitCleanupInterval)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// newRepository selects the dialect adapter and optionally wraps it in a circuit breaker.
func newRepository(cfg *config.Config, database *sql.DB) (repository.ArticleRepository, *circuitbreaker.CircuitBreaker) {
	var repo repository.ArticleRepository
	switch cfg.Database.Driver {
	case db.DriverPostgres:
		repo = pgRepo.NewArticleRepo(database)
	default:
		repo = mysqlRepo.NewArticleRepo(database)
	}

	if !cfg.Database.CircuitBreakerEnabled {
		return repo, nil
	}
	wrapped := circuitbreaker.NewArticleRepo(repo, circuitbreaker.DBConfig())
	return wrapped, wrapped.Breaker()
}

// setupRoutes registers the article API and the operational endpoints.
func setupRoutes(cfg *config.Config, database *sql.DB, svc artUC.Service, breaker *circuitbreaker.CircuitBreaker, version string) *http.ServeMux {
	mux := http.NewServeMux()
	harticle.Register(mux, svc)

	checks := []hhttp.Checker{hhttp.DBCheck{DB: database}}
	if breaker != nil {
		checks = append(checks, hhttp.BreakerCheck{Breaker: breaker})
	}
	mux.Handle("GET /health", &hhttp.HealthHandler{Version: version, Checks: checks})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{DB: database})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	if cfg.SwaggerEnabled {
		mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
	}
	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order (outer to inner): Request ID → Tracing → Recovery → Logging → IP Rate Limit → Body Limit → Metrics
func applyMiddleware(handler http.Handler, limiter *hhttp.IPRateLimiter) http.Handler {
	var rateLimit hhttp.Middleware
	if limiter != nil {
		rateLimit = limiter.Middleware()
	}

	return hhttp.Chain(handler,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Recover(),
		hhttp.Logging(),
		rateLimit,
		hhttp.LimitRequestBody(hhttp.DefaultMaxBodyBytes),
		hhttp.MetricsMiddleware,
	)
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	return pkgcfg.GetEnvString("VERSION", "dev")
}
