package sampler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"topicpics-api/core/domain"
)

// mockSource is a mock implementation of the Source interface
type mockSource struct {
	existsFunc func(ctx context.Context, topic string) error

	existsCalls int32
}

func (m *mockSource) Exists(ctx context.Context, topic string) error {
	atomic.AddInt32(&m.existsCalls, 1)
	if m.existsFunc != nil {
		return m.existsFunc(ctx, topic)
	}
	return nil
}

func (m *mockSource) FetchCategory(ctx context.Context, topic string, cat domain.Category, limit int) ([]domain.RawPost, error) {
	return nil, nil
}

// mockStore is a mock implementation of the PostStore interface
type mockStore struct {
	mu    sync.Mutex
	posts map[string][]domain.Post

	countFunc  func(ctx context.Context, topic string) (int, error)
	sampleFunc func(ctx context.Context, topic string, filter domain.SampleFilter, n int) ([]domain.Post, error)
}

func newMockStore() *mockStore {
	return &mockStore{posts: make(map[string][]domain.Post)}
}

func (m *mockStore) add(topic string, posts ...domain.Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[topic] = append(m.posts[topic], posts...)
}

func (m *mockStore) FilterUnknown(ctx context.Context, topic string, urls []string) (map[string]struct{}, error) {
	unknown := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		unknown[u] = struct{}{}
	}
	return unknown, nil
}

func (m *mockStore) InsertMany(ctx context.Context, posts []domain.Post) (int, error) {
	for _, p := range posts {
		m.add(p.Topic, p)
	}
	return len(posts), nil
}

func (m *mockStore) SampleRandom(ctx context.Context, topic string, filter domain.SampleFilter, n int) ([]domain.Post, error) {
	if m.sampleFunc != nil {
		return m.sampleFunc(ctx, topic, filter, n)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	var matching []domain.Post
	for _, p := range m.posts[topic] {
		if filter.Matches(p) {
			matching = append(matching, p)
		}
	}
	if len(matching) > n {
		matching = matching[:n]
	}
	return matching, nil
}

func (m *mockStore) Count(ctx context.Context, topic string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, topic)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts[topic]), nil
}

// mockIngester is a mock implementation of the Ingester interface
type mockIngester struct {
	ingestFunc func(ctx context.Context, topic string) (domain.IngestResult, error)

	calls int32
}

func (m *mockIngester) Ingest(ctx context.Context, topic string) (domain.IngestResult, error) {
	atomic.AddInt32(&m.calls, 1)
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, topic)
	}
	return domain.IngestResult{}, nil
}

func (m *mockIngester) callCount() int {
	return int(atomic.LoadInt32(&m.calls))
}

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	mu      sync.Mutex
	entries map[string][]byte

	setCalls []string
}

func newMockCache() *mockCache {
	return &mockCache{entries: make(map[string][]byte)}
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.entries[key]; ok {
		return v, nil
	}
	return nil, errCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	m.setCalls = append(m.setCalls, key)
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

var errCacheMiss = errMiss{}

type errMiss struct{}

func (errMiss) Error() string { return "key not found" }
