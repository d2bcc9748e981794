// ABOUTME: SQLite-backed post store, the system of record for ingested posts
// ABOUTME: Provides batched unknown-URL checks, idempotent bulk inserts, and random sampling

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"topicpics-api/core/domain"
)

// Store implements the PostStore interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (or creates) the post database at filePath.
// ":memory:" is accepted for tests.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "posts.db"
	}

	// A plain ":memory:" DSN gives each pooled connection its own empty
	// database, so the schema disappears whenever the pool opens a second
	// connection. Rewrite to the shared-cache form and serialize on one
	// connection so every query sees the same database.
	memory := strings.Contains(filePath, ":memory:")
	if memory && !strings.Contains(filePath, "cache=shared") {
		filePath = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if memory {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the posts table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS posts (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			topic TEXT NOT NULL,
			title TEXT NOT NULL,
			url TEXT NOT NULL,
			restricted INTEGER NOT NULL DEFAULT 0,
			permalink TEXT NOT NULL DEFAULT '',
			UNIQUE(topic, url)
		);
		CREATE INDEX IF NOT EXISTS idx_posts_topic ON posts(topic);
	`

	_, err := s.db.Exec(query)
	return err
}

// FilterUnknown returns the subset of urls with no row for the topic yet,
// in a single batched query.
func (s *Store) FilterUnknown(ctx context.Context, topic string, urls []string) (map[string]struct{}, error) {
	unknown := make(map[string]struct{}, len(urls))
	if len(urls) == 0 {
		return unknown, nil
	}
	for _, u := range urls {
		unknown[u] = struct{}{}
	}

	placeholders := strings.Repeat("?,", len(urls))
	placeholders = placeholders[:len(placeholders)-1]

	args := make([]interface{}, 0, len(urls)+1)
	args = append(args, topic)
	for _, u := range urls {
		args = append(args, u)
	}

	query := fmt.Sprintf("SELECT url FROM posts WHERE topic = ? AND url IN (%s)", placeholders)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to check known urls: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var known string
		if err := rows.Scan(&known); err != nil {
			return nil, fmt.Errorf("failed to scan known url: %w", err)
		}
		delete(unknown, known)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read known urls: %w", err)
	}

	return unknown, nil
}

// InsertMany persists the posts in one transaction. An already-present
// (topic, url) pair is skipped silently, keeping the call idempotent.
func (s *Store) InsertMany(ctx context.Context, posts []domain.Post) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO posts (topic, title, url, restricted, permalink)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, p := range posts {
		res, err := stmt.ExecContext(ctx, p.Topic, p.Title, p.URL, boolToInt(p.Restricted), p.Permalink)
		if err != nil {
			return 0, fmt.Errorf("failed to insert post: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit inserts: %w", err)
	}

	return inserted, nil
}

// SampleRandom returns up to n posts matching the filter, selected uniformly
// at random over the rows matching at query time.
func (s *Store) SampleRandom(ctx context.Context, topic string, filter domain.SampleFilter, n int) ([]domain.Post, error) {
	if n <= 0 {
		n = 1
	}

	query := `
		SELECT id, topic, title, url, restricted, permalink
		FROM posts
		WHERE topic = ? AND restricted = ?
		ORDER BY RANDOM()
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, topic, boolToInt(filter.Restricted), n)
	if err != nil {
		return nil, fmt.Errorf("failed to sample posts: %w", err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		var restricted int
		if err := rows.Scan(&p.ID, &p.Topic, &p.Title, &p.URL, &restricted, &p.Permalink); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.Restricted = restricted != 0
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sampled posts: %w", err)
	}

	return posts, nil
}

// Count returns the number of rows stored for the topic
func (s *Store) Count(ctx context.Context, topic string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE topic = ?", topic).Scan(&count)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
