// ABOUTME: Source interface for the external ranked-listing API
// ABOUTME: Defines the existence probe and per-category listing fetch contract

package interfaces

import (
	"context"

	"topicpics-api/core/domain"
)

// Source defines the interface for the external ranked-listing API.
// Implementations are stateless reads; they never retry and never mutate.
type Source interface {
	// Exists probes whether the topic exists upstream. Returns nil when it
	// does, an UpstreamNotFoundError when it does not, and an
	// UpstreamUnavailableError on transient failure.
	Exists(ctx context.Context, topic string) error

	// FetchCategory fetches one ranking view of the topic, up to limit
	// entries, in the source's own order. Each call fails independently;
	// the caller decides how failures combine.
	FetchCategory(ctx context.Context, topic string, cat domain.Category, limit int) ([]domain.RawPost, error)
}
