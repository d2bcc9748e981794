// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as persistence, caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - store/sqlite: SQLite-backed post store, the system of record
// - cache/memory: In-memory cache for upstream existence memos
// - cache/redis: Redis-based cache for deployments with several instances
// - http/standard: Standard library HTTP client with retries and pacing
// - logger/logrus: Structured JSON logger
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Production-ready: Include retries, timeouts, and error handling
//
// # Post Store
//
//	store, err := sqlite.NewStore("posts.db")
//	if err != nil {
//	    // Handle error
//	}
//	defer store.Close()
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache(12*time.Hour, 10*time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// # HTTP Client
//
// The HTTP client retries transient failures and paces outbound requests:
//
//	client := standard.NewStandardHTTPClient(15*time.Second, 5, "topicpics-api/1.0")
//	resp, err := client.Get(ctx, "https://www.reddit.com/r/aww/hot.json")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Ingestion completed", map[string]interface{}{
//	    "topic":    "aww",
//	    "inserted": 42,
//	})
package infrastructure
