package engine

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidURL means the supplied URL does not resolve to a video id.
var ErrInvalidURL = errors.New("no video id in url")

// ErrVideoNotFound means the metadata endpoint returned zero items for the id.
var ErrVideoNotFound = errors.New("video not found")

// APIError is a non-transient, non-2xx response from the Data API.
// Never retried; the status code is surfaced to the caller.
type APIError struct {
	Status int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube API status %d %s", e.Status, http.StatusText(e.Status))
}

// RetriesExhaustedError means every backoff attempt ended on a transient status.
// Kept distinct from APIError so callers can tell repeated quota errors (403/429)
// apart from a single hard failure.
type RetriesExhaustedError struct {
	LastStatus int
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("retries exhausted, last status %d %s", e.LastStatus, http.StatusText(e.LastStatus))
}

// IsQuotaExhausted reports whether err looks like daily API quota exhaustion:
// retries ran out on 403 or 429. Callers map this to a "come back tomorrow" message.
func IsQuotaExhausted(err error) bool {
	var re *RetriesExhaustedError
	if errors.As(err, &re) {
		return re.LastStatus == http.StatusForbidden || re.LastStatus == http.StatusTooManyRequests
	}
	return false
}
