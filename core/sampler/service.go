// ABOUTME: Sampler service is the public entry point for random item queries
// ABOUTME: Decides per call whether to ingest first and coalesces racing ingests

package sampler

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"

	"topicpics-api/core/domain"
	coreerrors "topicpics-api/core/errors"
	"topicpics-api/core/interfaces"
)

// Ingester runs one ingestion pass over a topic
type Ingester interface {
	Ingest(ctx context.Context, topic string) (domain.IngestResult, error)
}

// Options controls one GetRandom call
type Options struct {
	// IncludeRestricted selects restricted-only sampling when true and
	// safe-only sampling when false; there is no "either" mode
	IncludeRestricted bool

	// ForceRefresh runs an ingestion pass even when the topic is already
	// populated
	ForceRefresh bool
}

// Config holds the sampler's tunables
type Config struct {
	// ExistsTTL is how long a positive upstream-existence memo lives
	ExistsTTL time.Duration

	// NegativeExistsTTL is how long a 404 memo lives; kept short so a
	// newly created topic becomes reachable quickly
	NegativeExistsTTL time.Duration

	// IngestTimeout bounds a shared ingestion pass. The pass runs detached
	// from any single caller's context so an abandoning waiter cannot
	// cancel it for the others.
	IngestTimeout time.Duration
}

// Service answers random-item queries over the post store
type Service struct {
	deps     interfaces.Dependencies
	source   interfaces.Source
	store    interfaces.PostStore
	ingester Ingester
	cfg      Config
	flight   singleflight.Group
}

// NewService creates a sampler service
func NewService(deps interfaces.Dependencies, src interfaces.Source, store interfaces.PostStore, ing Ingester, cfg Config) *Service {
	if cfg.ExistsTTL <= 0 {
		cfg.ExistsTTL = 12 * time.Hour
	}
	if cfg.NegativeExistsTTL <= 0 {
		cfg.NegativeExistsTTL = 5 * time.Minute
	}
	if cfg.IngestTimeout <= 0 {
		cfg.IngestTimeout = 60 * time.Second
	}
	return &Service{
		deps:     deps,
		source:   src,
		store:    store,
		ingester: ing,
		cfg:      cfg,
	}
}

// GetRandom returns one stored post for the topic, chosen uniformly at
// random among the rows matching the restricted filter. A topic with no
// stored rows is ingested synchronously first; ForceRefresh ingests again on
// a populated topic. Zero matching rows yields ErrNoMatch, never a second
// automatic ingestion.
func (s *Service) GetRandom(ctx context.Context, topic string, opts Options) (*domain.Post, error) {
	topic = domain.NormalizeTopic(topic)
	if topic == "" {
		return nil, &coreerrors.UpstreamNotFoundError{Topic: topic}
	}

	if err := s.ensureExists(ctx, topic); err != nil {
		return nil, err
	}

	count, err := s.store.Count(ctx, topic)
	if err != nil {
		return nil, coreerrors.WrapError(err, "count stored posts")
	}

	if count == 0 || opts.ForceRefresh {
		if _, err := s.ingestShared(ctx, topic); err != nil {
			return nil, err
		}
	}

	return s.sample(ctx, topic, opts)
}

// Refresh runs a forced ingestion pass for the topic and reports what it
// inserted. Shares in-flight work with any concurrent callers.
func (s *Service) Refresh(ctx context.Context, topic string) (domain.IngestResult, error) {
	topic = domain.NormalizeTopic(topic)
	if topic == "" {
		return domain.IngestResult{}, &coreerrors.UpstreamNotFoundError{Topic: topic}
	}

	if err := s.ensureExists(ctx, topic); err != nil {
		return domain.IngestResult{}, err
	}

	return s.ingestShared(ctx, topic)
}

// Count reports how many posts are stored for the topic
func (s *Service) Count(ctx context.Context, topic string) (int, error) {
	return s.store.Count(ctx, domain.NormalizeTopic(topic))
}

// ensureExists gates every call on the topic existing upstream. Outcomes are
// memoized in the cache so repeated calls do not re-probe the source.
func (s *Service) ensureExists(ctx context.Context, topic string) error {
	key := "topic:exists:" + topic

	if s.deps.Cache != nil {
		if memo, err := s.deps.Cache.Get(ctx, key); err == nil && len(memo) > 0 {
			if memo[0] == '1' {
				return nil
			}
			return &coreerrors.UpstreamNotFoundError{Topic: topic}
		}
	}

	err := s.source.Exists(ctx, topic)
	switch {
	case err == nil:
		s.memoize(ctx, key, "1", s.cfg.ExistsTTL)
		return nil
	case coreerrors.IsUpstreamNotFound(err):
		s.memoize(ctx, key, "0", s.cfg.NegativeExistsTTL)
		return err
	default:
		// Transient failure: no memo, the next call probes again
		return err
	}
}

// memoize best-effort writes an existence memo; cache errors are ignored
func (s *Service) memoize(ctx context.Context, key, value string, ttl time.Duration) {
	if s.deps.Cache == nil {
		return
	}
	_ = s.deps.Cache.Set(ctx, key, []byte(value), ttl)
}

// ingestShared coalesces concurrent ingestion requests for one topic into a
// single in-flight pass whose result every waiter shares. The pass itself
// runs on a detached context with its own deadline: a waiter that gives up
// only stops waiting, the warm-up still completes for the next caller.
func (s *Service) ingestShared(ctx context.Context, topic string) (domain.IngestResult, error) {
	ch := s.flight.DoChan(topic, func() (interface{}, error) {
		ingestCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.IngestTimeout)
		defer cancel()
		return s.ingester.Ingest(ingestCtx, topic)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return domain.IngestResult{}, res.Err
		}
		return res.Val.(domain.IngestResult), nil
	case <-ctx.Done():
		return domain.IngestResult{}, ctx.Err()
	}
}

// sample draws one row under the strict either/or restricted filter
func (s *Service) sample(ctx context.Context, topic string, opts Options) (*domain.Post, error) {
	filter := domain.SampleFilter{Restricted: opts.IncludeRestricted}

	posts, err := s.store.SampleRandom(ctx, topic, filter, 1)
	if err != nil {
		return nil, coreerrors.WrapError(err, "sample stored posts")
	}
	if len(posts) == 0 {
		return nil, coreerrors.ErrNoMatch
	}

	return &posts[0], nil
}
