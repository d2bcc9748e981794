package ingest

import (
	"context"
	"sync"

	"topicpics-api/core/domain"
)

// mockSource is a mock implementation of the Source interface
type mockSource struct {
	existsFunc func(ctx context.Context, topic string) error
	fetchFunc  func(ctx context.Context, topic string, cat domain.Category, limit int) ([]domain.RawPost, error)

	mu         sync.Mutex
	fetchCalls []domain.Category
}

func (m *mockSource) Exists(ctx context.Context, topic string) error {
	if m.existsFunc != nil {
		return m.existsFunc(ctx, topic)
	}
	return nil
}

func (m *mockSource) FetchCategory(ctx context.Context, topic string, cat domain.Category, limit int) ([]domain.RawPost, error) {
	m.mu.Lock()
	m.fetchCalls = append(m.fetchCalls, cat)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, topic, cat, limit)
	}
	return nil, nil
}

func (m *mockSource) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fetchCalls)
}

// mockStore is a mock implementation of the PostStore interface
type mockStore struct {
	filterUnknownFunc func(ctx context.Context, topic string, urls []string) (map[string]struct{}, error)
	insertManyFunc    func(ctx context.Context, posts []domain.Post) (int, error)
	sampleFunc        func(ctx context.Context, topic string, filter domain.SampleFilter, n int) ([]domain.Post, error)
	countFunc         func(ctx context.Context, topic string) (int, error)

	mu       sync.Mutex
	inserted []domain.Post
}

func (m *mockStore) FilterUnknown(ctx context.Context, topic string, urls []string) (map[string]struct{}, error) {
	if m.filterUnknownFunc != nil {
		return m.filterUnknownFunc(ctx, topic, urls)
	}
	// Default: everything is unknown
	unknown := make(map[string]struct{}, len(urls))
	for _, u := range urls {
		unknown[u] = struct{}{}
	}
	return unknown, nil
}

func (m *mockStore) InsertMany(ctx context.Context, posts []domain.Post) (int, error) {
	m.mu.Lock()
	m.inserted = append(m.inserted, posts...)
	m.mu.Unlock()

	if m.insertManyFunc != nil {
		return m.insertManyFunc(ctx, posts)
	}
	return len(posts), nil
}

func (m *mockStore) SampleRandom(ctx context.Context, topic string, filter domain.SampleFilter, n int) ([]domain.Post, error) {
	if m.sampleFunc != nil {
		return m.sampleFunc(ctx, topic, filter, n)
	}
	return nil, nil
}

func (m *mockStore) Count(ctx context.Context, topic string) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx, topic)
	}
	return 0, nil
}

func (m *mockStore) insertedPosts() []domain.Post {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Post, len(m.inserted))
	copy(out, m.inserted)
	return out
}
