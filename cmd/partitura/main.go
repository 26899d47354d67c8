package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/partitura-app/partitura/internal/config"
	"github.com/partitura-app/partitura/internal/db"
	logpkg "github.com/partitura-app/partitura/internal/logger"
	"github.com/partitura-app/partitura/internal/metrics"
	"github.com/partitura-app/partitura/internal/repository/suggestcache"
	termrepo "github.com/partitura-app/partitura/internal/repository/term"
	workrepo "github.com/partitura-app/partitura/internal/repository/work"
	chiTransport "github.com/partitura-app/partitura/internal/transport/chi"
	cataloguc "github.com/partitura-app/partitura/internal/usecase/catalog"
	healthuc "github.com/partitura-app/partitura/internal/usecase/health"
	searchuc "github.com/partitura-app/partitura/internal/usecase/search"
	suggestuc "github.com/partitura-app/partitura/internal/usecase/suggest"
	"github.com/partitura-app/partitura/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting partitura API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_path", cfg.Database.Path),
	)

	store, err := db.Open(db.Config{
		Path:          cfg.Database.Path,
		BusyTimeoutMS: cfg.Database.BusyTimeoutMS,
	})
	if err != nil {
		logger.Fatal("Failed to open database", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register search metrics explicitly (no init())
	metrics.RegisterSearchMetrics()

	// Optional suggestion cache
	var cache *suggestcache.Cache
	if len(cfg.Suggest.CacheAddrs) > 0 {
		cache, err = suggestcache.New(suggestcache.Config{
			Addrs:    cfg.Suggest.CacheAddrs,
			Password: cfg.Suggest.CachePassword,
			TTL:      time.Duration(cfg.Suggest.CacheTTLSec) * time.Second,
		}, metrics.SuggestionCacheTotal, logger)
		if err != nil {
			logger.Fatal("Failed to create suggestion cache", zap.Error(err))
		}
		defer cache.Close()
		logger.Info("Suggestion cache enabled", zap.Strings("addrs", cfg.Suggest.CacheAddrs))
	}

	// Create repositories
	works := workrepo.New(store)
	terms := termrepo.New(store)

	// Create use case services
	searchSvc := searchuc.New(works, terms, searchuc.Defaults{
		WorksMinSimilarity: cfg.Search.WorksMinSimilarity,
		TermsMinSimilarity: cfg.Search.TermsMinSimilarity,
	})

	// Pass nil interface (not typed nil pointer!) if the cache is not
	// configured. Go gotcha: (*suggestcache.Cache)(nil) wrapped in
	// suggestuc.Cache != nil.
	var suggestCache suggestuc.Cache
	if cache != nil {
		suggestCache = cache
	}
	suggestSvc := suggestuc.New(works, suggestCache, cfg.Suggest.DefaultLimit)

	catalogSvc := cataloguc.New(works, terms)

	var cachePinger healthuc.CachePinger
	if cache != nil {
		cachePinger = cache
	}
	healthSvc := healthuc.New(store, cachePinger)

	// Create chi server
	server := chiTransport.NewServer(searchSvc, suggestSvc, catalogSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chiMiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
