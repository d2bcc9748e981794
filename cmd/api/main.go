// ABOUTME: Main entry point for the topic image cache API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"topicpics-api/api"
	"topicpics-api/api/handlers"
	"topicpics-api/core/domain"
	"topicpics-api/core/ingest"
	"topicpics-api/core/interfaces"
	"topicpics-api/core/sampler"
	"topicpics-api/core/source"
	"topicpics-api/infrastructure/cache/memory"
	"topicpics-api/infrastructure/cache/redis"
	stdhttp "topicpics-api/infrastructure/http/standard"
	logruslogger "topicpics-api/infrastructure/logger/logrus"
	"topicpics-api/infrastructure/store/sqlite"
	"topicpics-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Log.Level)
	logger.Info("Starting topicpics API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"store_path": cfg.Store.Path,
	})

	// Cache backend for existence memos
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(cfg.Cache.ExistsTTL, 10*time.Minute)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(cfg.Cache.ExistsTTL, 10*time.Minute)
		logger.Info("Using memory cache", nil)
	}

	store, err := sqlite.NewStore(cfg.Store.Path)
	if err != nil {
		log.Fatalf("Failed to open post store: %v", err)
	}
	defer store.Close()

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.Source.FetchTimeout,
		cfg.Source.RequestsPerSecond,
		cfg.Source.UserAgent,
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	adapter := source.NewAdapter(deps, cfg.Source.BaseURL)

	coordinator := ingest.NewCoordinator(deps, adapter, store, ingest.Options{
		AllowedHosts: domain.HostAllowList(cfg.Source.AllowedHosts),
		FetchLimit:   cfg.Source.Limit,
		FetchTimeout: cfg.Source.FetchTimeout,
	})

	samplerService := sampler.NewService(deps, adapter, store, coordinator, sampler.Config{
		ExistsTTL:         cfg.Cache.ExistsTTL,
		NegativeExistsTTL: cfg.Cache.NegativeExistsTTL,
		IngestTimeout:     cfg.Source.IngestTimeout,
	})

	router := api.NewRouter(api.APIConfig{
		Logger:     logger,
		RateLimit:  cfg.Server.RateLimit,
		RateWindow: cfg.Server.RateWindow,
	})

	topicHandler := handlers.NewTopicHandler(samplerService)
	topicHandler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server exited", nil)
}
