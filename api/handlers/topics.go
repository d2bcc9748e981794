// ABOUTME: Topic handlers expose random sampling, forced refresh, and stats
// ABOUTME: Thin HTTP layer over the sampler service

package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"topicpics-api/core/domain"
	"topicpics-api/core/sampler"
)

// TopicHandler serves the topic cache endpoints
type TopicHandler struct {
	sampler *sampler.Service
}

// NewTopicHandler creates a topic handler
func NewTopicHandler(s *sampler.Service) *TopicHandler {
	return &TopicHandler{sampler: s}
}

// RegisterRoutes mounts the topic routes on the router
func (h *TopicHandler) RegisterRoutes(r chi.Router) {
	r.Get("/topics/{topic}/random", h.GetRandom)
	r.Post("/topics/{topic}/refresh", h.Refresh)
	r.Get("/topics/{topic}/stats", h.Stats)
}

// GetRandom handles GET /topics/{topic}/random?nsfw=&force=
func (h *TopicHandler) GetRandom(w http.ResponseWriter, r *http.Request) {
	topic := chi.URLParam(r, "topic")

	opts := sampler.Options{
		IncludeRestricted: boolQuery(r, "nsfw"),
		ForceRefresh:      boolQuery(r, "force"),
	}

	post, err := h.sampler.GetRandom(r.Context(), topic, opts)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, post)
}

// refreshResponse summarizes a forced ingestion pass
type refreshResponse struct {
	Topic            string   `json:"topic"`
	InsertedCount    int      `json:"inserted_count"`
	FailedCategories []string `json:"failed_categories,omitempty"`
}

// Refresh handles POST /topics/{topic}/refresh
func (h *TopicHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	// Echo the canonical form the sampler and store use, not the caller's
	// raw casing
	topic := domain.NormalizeTopic(chi.URLParam(r, "topic"))

	result, err := h.sampler.Refresh(r.Context(), topic)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := refreshResponse{
		Topic:         topic,
		InsertedCount: result.InsertedCount,
	}
	for _, cat := range result.FailedCategories {
		resp.FailedCategories = append(resp.FailedCategories, cat.String())
	}

	writeJSON(w, http.StatusOK, resp)
}

// statsResponse reports the stored row count for a topic
type statsResponse struct {
	Topic string `json:"topic"`
	Count int    `json:"count"`
}

// Stats handles GET /topics/{topic}/stats
func (h *TopicHandler) Stats(w http.ResponseWriter, r *http.Request) {
	topic := domain.NormalizeTopic(chi.URLParam(r, "topic"))

	count, err := h.sampler.Count(r.Context(), topic)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{Topic: topic, Count: count})
}

// boolQuery parses a boolean query flag; absent or malformed means false
func boolQuery(r *http.Request, name string) bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return false
	}
	return v
}
