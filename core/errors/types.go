// ABOUTME: Custom error types for the ingestion and sampling logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"

	"topicpics-api/core/domain"
)

// UpstreamNotFoundError means the topic does not exist at the source.
// Nothing has been written to the store when this is returned.
type UpstreamNotFoundError struct {
	Topic string
}

// Error implements the error interface
func (e *UpstreamNotFoundError) Error() string {
	return fmt.Sprintf("topic not found upstream: %s", e.Topic)
}

// UpstreamUnavailableError is a transient failure talking to the source,
// such as a network error or rate limit on the existence check.
type UpstreamUnavailableError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable during %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying cause
func (e *UpstreamUnavailableError) Unwrap() error {
	return e.Err
}

// FetchError is the failure of one category fetch. It never aborts sibling
// fetches in the same ingestion pass.
type FetchError struct {
	Category domain.Category
	Err      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s failed: %v", e.Category, e.Err)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Err
}

// StoreWriteError means the persistence layer rejected a bulk insert. It is
// fatal for the ingest call that hit it and is never retried automatically.
type StoreWriteError struct {
	Err error
}

// Error implements the error interface
func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("store write failed: %v", e.Err)
}

// Unwrap returns the underlying cause
func (e *StoreWriteError) Unwrap() error {
	return e.Err
}

// ErrNoMatch means no stored item satisfies the requested filter. A normal
// outcome, not a failure.
var ErrNoMatch = errors.New("no matching item")

// IsUpstreamNotFound checks if an error is an UpstreamNotFoundError
func IsUpstreamNotFound(err error) bool {
	var nf *UpstreamNotFoundError
	return errors.As(err, &nf)
}

// IsUpstreamUnavailable checks if an error is an UpstreamUnavailableError
func IsUpstreamUnavailable(err error) bool {
	var ua *UpstreamUnavailableError
	return errors.As(err, &ua)
}

// IsStoreWrite checks if an error is a StoreWriteError
func IsStoreWrite(err error) bool {
	var sw *StoreWriteError
	return errors.As(err, &sw)
}

// IsNoMatch checks if an error is ErrNoMatch
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
