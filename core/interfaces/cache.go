// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
// The sampler uses it to memoize upstream topic-existence checks so repeated
// requests do not re-probe the source.
//
// Example usage:
//
//	// Remember that a topic exists upstream
//	err := cache.Set(ctx, "topic:exists:aww", []byte("1"), 12*time.Hour)
//
//	// Check the memo
//	data, err := cache.Get(ctx, "topic:exists:aww")
//	if err != nil {
//		// miss: probe the source
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns the cached data as []byte or an error on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
