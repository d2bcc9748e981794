// ABOUTME: Post domain models for raw listing entries and persisted cache items
// ABOUTME: Provides the ingest filter rules for self posts and content hosts

package domain

import (
	"net/url"
	"strings"
	"time"
)

// NormalizeTopic canonicalizes a topic name: stored rows, cache keys, and
// API responses all use the folded form
func NormalizeTopic(topic string) string {
	return strings.ToLower(strings.TrimSpace(topic))
}

// RawPost is a single entry from a listing fetch. It is transient: only
// entries that pass the ingest filters are converted to Posts.
type RawPost struct {
	// ID is the source's identifier for the entry
	ID string

	// Topic is the listing the entry came from
	Topic string

	// Title is the entry's headline
	Title string

	// URL is the content link the entry points at
	URL string

	// Permalink is the source-side discussion page
	Permalink string

	// IsSelf marks text-only posts with no external content
	IsSelf bool

	// Restricted marks over-18 / sensitive content
	Restricted bool

	// CreatedAt is the entry's submission time
	CreatedAt time.Time
}

// Post is a persisted cache item. Rows are append-only and immutable; the
// store assigns ID on insert.
type Post struct {
	ID         int64  `json:"-"`
	Topic      string `json:"topic"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	Permalink  string `json:"permalink"`
	Restricted bool   `json:"restricted"`
}

// SampleFilter selects which posts a sample may return. Exactly one of the
// two modes applies per call: restricted-only or safe-only.
type SampleFilter struct {
	Restricted bool
}

// Matches reports whether the post satisfies the filter
func (f SampleFilter) Matches(p Post) bool {
	return p.Restricted == f.Restricted
}

// HostAllowList is the set of domains known to serve content directly
type HostAllowList []string

// Allows reports whether the raw URL points at an allow-listed host.
// Subdomain matches count: "imgur.com" allows "i.imgur.com".
func (a HostAllowList) Allows(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return false
	}
	host := strings.ToLower(u.Hostname())
	for _, allowed := range a {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}

// IngestResult summarizes one ingestion pass over a topic
type IngestResult struct {
	// Inserted holds the posts newly written by this pass
	Inserted []Post

	// InsertedCount is len(Inserted), kept explicit for callers that only
	// report the number
	InsertedCount int

	// FailedCategories lists ranking views whose fetch failed; their
	// absence from the candidate set is diagnostic, not fatal
	FailedCategories []Category
}
