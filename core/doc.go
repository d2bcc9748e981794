// Package core contains the business logic for the topic image cache.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Post, RawPost, Category, filters)
// - source: Adapter for the external ranked-listing API
// - ingest: Fetch-merge-filter-dedup-persist passes over a topic
// - sampler: The public query service, with per-topic ingest coalescing
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, store, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "topicpics-api/core/ingest"
//	    "topicpics-api/core/interfaces"
//	    "topicpics-api/core/sampler"
//	    "topicpics-api/core/source"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	adapter := source.NewAdapter(deps, "https://www.reddit.com")
//	coordinator := ingest.NewCoordinator(deps, adapter, myStore, ingest.Options{})
//	service := sampler.NewService(deps, adapter, myStore, coordinator, sampler.Config{})
//
//	post, err := service.GetRandom(ctx, "aww", sampler.Options{})
package core
