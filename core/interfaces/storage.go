// ABOUTME: Storage interface for the persistent post cache
// ABOUTME: Defines batched existence checks, idempotent inserts, and random sampling

package interfaces

import (
	"context"

	"topicpics-api/core/domain"
)

// PostStore defines the interface for the persistent, append-only post cache.
// All state is scoped per topic; rows are never updated or deleted here.
type PostStore interface {
	// FilterUnknown returns the subset of urls that have no row for the
	// topic yet. One batched round-trip, not one query per candidate.
	FilterUnknown(ctx context.Context, topic string, urls []string) (map[string]struct{}, error)

	// InsertMany persists the posts and returns how many rows were actually
	// written. Inserting an already-present (topic, url) pair is a no-op,
	// not an error.
	InsertMany(ctx context.Context, posts []domain.Post) (int, error)

	// SampleRandom returns up to n posts matching the filter, selected
	// uniformly at random over the currently matching rows. An empty result
	// is not an error.
	SampleRandom(ctx context.Context, topic string, filter domain.SampleFilter, n int) ([]domain.Post, error)

	// Count returns the number of rows stored for the topic
	Count(ctx context.Context, topic string) (int, error)
}
