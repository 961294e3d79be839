// ABOUTME: Main entry point for the Quizzer API server
// ABOUTME: Wires config, cache, storage, model capabilities and the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quizzer-app-api/api"
	"quizzer-app-api/api/handlers"
	"quizzer-app-api/api/middleware"
	"quizzer-app-api/core/crossword"
	"quizzer-app-api/core/generate"
	"quizzer-app-api/core/history"
	"quizzer-app-api/core/interfaces"
	"quizzer-app-api/core/registry"
	"quizzer-app-api/core/tabextract"
	"quizzer-app-api/infrastructure/cache/memory"
	"quizzer-app-api/infrastructure/cache/redis"
	"quizzer-app-api/infrastructure/detect/lingua"
	"quizzer-app-api/infrastructure/http/standard"
	logruslogger "quizzer-app-api/infrastructure/logger/logrus"
	"quizzer-app-api/infrastructure/models/runtime"
	"quizzer-app-api/infrastructure/storage/sqlite"
	"quizzer-app-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogrusLogger(cfg.Server.LogLevel)

	cache := buildCache(cfg, logger)
	httpClient := standard.NewStandardHTTPClient(30 * time.Second)
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	store, err := sqlite.NewStore(cfg.Storage.SQLitePath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}
	defer store.Close()

	reg := registry.New(logger)
	runtimeClient := runtime.NewClient(httpClient, logger, cfg.Models.RuntimeURL)
	caps := runtime.NewCapabilities(runtimeClient, lingua.NewCapability())

	acquirer := tabextract.NewHTTPAcquirer(httpClient, logger)
	extractor := tabextract.NewService(deps, reg, caps, acquirer, cfg.Models.TargetLanguage)
	generator := generate.NewService(deps, reg, caps, store, crossword.Layout)
	answers := history.NewService(store, logger, cfg.Storage.HistoryLimit)

	limiter := middleware.NewRateLimiter(10, 20, logger)
	server := api.NewServer(cfg.Server.Port, logger, api.Handlers{
		Tab:      handlers.NewTabHandler(extractor, logger),
		Generate: handlers.NewGenerateHandler(generator, logger),
		History:  handlers.NewHistoryHandler(answers, logger),
	}, limiter)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("Server failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	case sig := <-quit:
		logger.Info("Shutdown signal received", map[string]interface{}{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	logger.Info("Server stopped", nil)
}

// buildCache selects the cache backend, falling back to memory when
// Redis is unreachable.
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	if cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache
		}
		logger.Warn("Redis unavailable, falling back to memory cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return memory.NewMemoryCache()
}
