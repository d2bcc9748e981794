// ABOUTME: Ingestion coordinator fans out across all ranking views of a topic
// ABOUTME: Merges, filters, dedupes, and bulk-persists new posts in one pass

package ingest

import (
	"context"
	"sync"
	"time"

	"topicpics-api/core/domain"
	coreerrors "topicpics-api/core/errors"
	"topicpics-api/core/interfaces"
)

// Coordinator runs fetch-merge-filter-dedup-persist passes over a topic
type Coordinator struct {
	deps         interfaces.Dependencies
	source       interfaces.Source
	store        interfaces.PostStore
	allowedHosts domain.HostAllowList
	fetchLimit   int
	fetchTimeout time.Duration
}

// Options configures a Coordinator
type Options struct {
	// AllowedHosts is the direct-content host allow-list; only posts whose
	// URL lands on one of these hosts are persisted
	AllowedHosts domain.HostAllowList

	// FetchLimit is the per-category listing page size
	FetchLimit int

	// FetchTimeout bounds each category fetch; a timed-out category is a
	// failed category, not a failed ingest
	FetchTimeout time.Duration
}

// NewCoordinator creates an ingestion coordinator
func NewCoordinator(deps interfaces.Dependencies, src interfaces.Source, store interfaces.PostStore, opts Options) *Coordinator {
	if opts.FetchLimit <= 0 {
		opts.FetchLimit = 100
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 15 * time.Second
	}
	return &Coordinator{
		deps:         deps,
		source:       src,
		store:        store,
		allowedHosts: opts.AllowedHosts,
		fetchLimit:   opts.FetchLimit,
		fetchTimeout: opts.FetchTimeout,
	}
}

// categoryResult is one category fetch outcome; posts is nil when the fetch
// failed
type categoryResult struct {
	category domain.Category
	posts    []domain.RawPost
	err      error
}

// Ingest fetches every ranking view of the topic concurrently, waits for all
// of them to settle, and persists the posts that are new, non-self, and
// hosted on an allow-listed domain. Individual category failures degrade the
// candidate set; only a store write failure fails the call.
func (c *Coordinator) Ingest(ctx context.Context, topic string) (domain.IngestResult, error) {
	categories := domain.AllCategories()
	resultsChan := make(chan categoryResult, len(categories))

	var wg sync.WaitGroup
	for _, cat := range categories {
		wg.Add(1)
		go func(cat domain.Category) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
			defer cancel()

			posts, err := c.source.FetchCategory(fetchCtx, topic, cat, c.fetchLimit)
			resultsChan <- categoryResult{category: cat, posts: posts, err: err}
		}(cat)
	}

	// Barrier: every category settles before the merge
	wg.Wait()
	close(resultsChan)

	var failed []domain.Category
	var candidates []domain.RawPost
	for result := range resultsChan {
		if result.err != nil {
			failed = append(failed, result.category)
			if c.deps.Logger != nil {
				c.deps.Logger.Warn("Category fetch failed", map[string]interface{}{
					"topic":    topic,
					"category": result.category.String(),
					"error":    result.err.Error(),
				})
			}
			continue
		}
		candidates = append(candidates, result.posts...)
	}

	fresh := c.selectNew(candidates)

	inserted, err := c.persist(ctx, topic, fresh)
	if err != nil {
		return domain.IngestResult{FailedCategories: failed}, err
	}

	if c.deps.Logger != nil {
		c.deps.Logger.Info("Ingestion completed", map[string]interface{}{
			"topic":             topic,
			"candidates":        len(candidates),
			"inserted":          len(inserted),
			"failed_categories": len(failed),
		})
	}

	return domain.IngestResult{
		Inserted:         inserted,
		InsertedCount:    len(inserted),
		FailedCategories: failed,
	}, nil
}

// selectNew dedupes candidates by URL (first occurrence wins) and drops self
// posts and posts hosted off the allow-list
func (c *Coordinator) selectNew(candidates []domain.RawPost) []domain.RawPost {
	seen := make(map[string]struct{}, len(candidates))
	fresh := make([]domain.RawPost, 0, len(candidates))

	for _, raw := range candidates {
		if raw.IsSelf || raw.URL == "" {
			continue
		}
		if !c.allowedHosts.Allows(raw.URL) {
			continue
		}
		if _, dup := seen[raw.URL]; dup {
			continue
		}
		seen[raw.URL] = struct{}{}
		fresh = append(fresh, raw)
	}

	return fresh
}

// persist drops candidates already stored for the topic and bulk-inserts the
// remainder. The prior-state check is one batched query.
func (c *Coordinator) persist(ctx context.Context, topic string, fresh []domain.RawPost) ([]domain.Post, error) {
	if len(fresh) == 0 {
		return nil, nil
	}

	urls := make([]string, len(fresh))
	for i, raw := range fresh {
		urls[i] = raw.URL
	}

	unknown, err := c.store.FilterUnknown(ctx, topic, urls)
	if err != nil {
		return nil, coreerrors.WrapError(err, "check stored urls")
	}

	posts := make([]domain.Post, 0, len(unknown))
	for _, raw := range fresh {
		if _, ok := unknown[raw.URL]; !ok {
			continue
		}
		posts = append(posts, domain.Post{
			Topic:      topic,
			Title:      raw.Title,
			URL:        raw.URL,
			Permalink:  raw.Permalink,
			Restricted: raw.Restricted,
		})
	}

	if len(posts) == 0 {
		return nil, nil
	}

	if _, err := c.store.InsertMany(ctx, posts); err != nil {
		return nil, &coreerrors.StoreWriteError{Err: err}
	}

	return posts, nil
}
