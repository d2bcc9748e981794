// ABOUTME: Source adapter talks to the external ranked-listing API
// ABOUTME: Provides the topic existence probe and per-category listing fetches

package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"topicpics-api/core/domain"
	coreerrors "topicpics-api/core/errors"
	"topicpics-api/core/interfaces"
)

// DefaultLimit is the listing page size requested when the caller passes 0
const DefaultLimit = 100

// Adapter implements interfaces.Source over the listing API's JSON endpoints.
// It holds no state beyond its configuration.
type Adapter struct {
	deps    interfaces.Dependencies
	baseURL string
}

// NewAdapter creates a source adapter rooted at baseURL,
// e.g. "https://www.reddit.com"
func NewAdapter(deps interfaces.Dependencies, baseURL string) *Adapter {
	return &Adapter{
		deps:    deps,
		baseURL: baseURL,
	}
}

// listingEnvelope is the wire shape of a listing response
type listingEnvelope struct {
	Data struct {
		Children []struct {
			Data listingEntry `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// listingEntry is the wire shape of one listing child
type listingEntry struct {
	ID         string  `json:"id"`
	Subreddit  string  `json:"subreddit"`
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Permalink  string  `json:"permalink"`
	IsSelf     bool    `json:"is_self"`
	Over18     bool    `json:"over_18"`
	CreatedUTC float64 `json:"created_utc"`
}

// Exists probes the topic's about endpoint. A 404 (or the source's redirect
// to search, surfaced as 404 on the JSON endpoint) means the topic does not
// exist; transport errors and 5xx responses are transient.
func (a *Adapter) Exists(ctx context.Context, topic string) error {
	probeURL := fmt.Sprintf("%s/r/%s/about.json", a.baseURL, url.PathEscape(topic))

	resp, err := a.deps.HTTPClient.Get(ctx, probeURL)
	if err != nil {
		return &coreerrors.UpstreamUnavailableError{Op: "existence check", Err: err}
	}
	defer resp.Body().Close()

	switch {
	case resp.StatusCode() == 200:
		return nil
	case resp.StatusCode() == 404 || resp.StatusCode() == 403:
		return &coreerrors.UpstreamNotFoundError{Topic: topic}
	default:
		return &coreerrors.UpstreamUnavailableError{
			Op:  "existence check",
			Err: fmt.Errorf("status %d", resp.StatusCode()),
		}
	}
}

// FetchCategory fetches one ranking view of the topic. The returned slice
// preserves the source's own order for that view.
func (a *Adapter) FetchCategory(ctx context.Context, topic string, cat domain.Category, limit int) ([]domain.RawPost, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	listingURL := a.listingURL(topic, cat, limit)

	resp, err := a.deps.HTTPClient.Get(ctx, listingURL)
	if err != nil {
		return nil, &coreerrors.FetchError{Category: cat, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.FetchError{
			Category: cat,
			Err:      fmt.Errorf("status %d", resp.StatusCode()),
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &coreerrors.FetchError{Category: cat, Err: err}
	}

	posts, err := parseListing(body, topic)
	if err != nil {
		return nil, &coreerrors.FetchError{Category: cat, Err: err}
	}

	return posts, nil
}

// listingURL builds the endpoint URL for one category
func (a *Adapter) listingURL(topic string, cat domain.Category, limit int) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	if cat.Kind == domain.Top {
		q.Set("t", string(cat.Span))
	}
	return fmt.Sprintf("%s/r/%s/%s.json?%s", a.baseURL, url.PathEscape(topic), cat.Path(), q.Encode())
}

// parseListing decodes a listing envelope into raw posts
func parseListing(body []byte, topic string) ([]domain.RawPost, error) {
	if len(body) == 0 {
		return nil, errors.New("empty listing body")
	}

	var envelope listingEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode listing: %w", err)
	}

	posts := make([]domain.RawPost, 0, len(envelope.Data.Children))
	for _, child := range envelope.Data.Children {
		entry := child.Data
		posts = append(posts, domain.RawPost{
			ID:         entry.ID,
			Topic:      topic,
			Title:      entry.Title,
			URL:        entry.URL,
			Permalink:  entry.Permalink,
			IsSelf:     entry.IsSelf,
			Restricted: entry.Over18,
			CreatedAt:  time.Unix(int64(entry.CreatedUTC), 0).UTC(),
		})
	}

	return posts, nil
}
