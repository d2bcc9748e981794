package handlers

import (
	"context"
	"sync"

	"topicpics-api/core/domain"
)

// mockSource is a mock implementation of the Source interface
type mockSource struct {
	existsFunc func(ctx context.Context, topic string) error
}

func (m *mockSource) Exists(ctx context.Context, topic string) error {
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
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.posts[topic]), nil
}

// mockIngester is a mock implementation of the sampler.Ingester interface
type mockIngester struct {
	ingestFunc func(ctx context.Context, topic string) (domain.IngestResult, error)
}

func (m *mockIngester) Ingest(ctx context.Context, topic string) (domain.IngestResult, error) {
	if m.ingestFunc != nil {
		return m.ingestFunc(ctx, topic)
	}
	return domain.IngestResult{}, nil
}
