// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"encoding/json"
	"net/http"

	coreerrors "topicpics-api/core/errors"
)

// errorBody is the JSON shape of every error response
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a domain error to its HTTP response
func writeError(w http.ResponseWriter, err error) {
	switch {
	case coreerrors.IsNoMatch(err):
		// A normal outcome: nothing stored satisfies the filter
		writeJSON(w, http.StatusNotFound, errorBody{
			Code:    "no_match",
			Message: "no stored item matches the requested filter",
		})
	case coreerrors.IsUpstreamNotFound(err):
		writeJSON(w, http.StatusNotFound, errorBody{
			Code:    "topic_not_found",
			Message: err.Error(),
		})
	case coreerrors.IsUpstreamUnavailable(err):
		writeJSON(w, http.StatusServiceUnavailable, errorBody{
			Code:    "upstream_unavailable",
			Message: err.Error(),
		})
	case coreerrors.IsStoreWrite(err):
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    "store_write_failed",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusInternalServerError, errorBody{
			Code:    "internal",
			Message: "internal server error",
		})
	}
}
