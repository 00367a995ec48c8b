package crossref

import (
	"errors"
	"fmt"
)

// Failure kinds surfaced by the fetcher. Callers match with errors.Is; the
// resolver propagates these unchanged.
var (
	// ErrNotFound indicates an unknown or withdrawn DOI (HTTP 4xx).
	ErrNotFound = errors.New("DOI not found")

	// ErrServiceUnavailable indicates a transient service failure (HTTP 5xx
	// or a transport error). Retried with backoff until attempts run out.
	ErrServiceUnavailable = errors.New("metadata service unavailable")

	// ErrLookupTimeout indicates the lookup exceeded its deadline.
	ErrLookupTimeout = errors.New("DOI lookup timed out")

	// ErrMalformedMetadata indicates a response that could not be parsed or
	// is missing required fields (title, author or editor, year).
	ErrMalformedMetadata = errors.New("malformed metadata")
)

// APIError carries the HTTP detail behind a lookup failure.
type APIError struct {
	StatusCode int
	DOI        string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("crossref: status %d for %s: %s", e.StatusCode, e.DOI, e.Message)
	}
	return fmt.Sprintf("crossref: status %d for %s", e.StatusCode, e.DOI)
}

// IsNotFound reports whether err indicates an unknown DOI.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsUnavailable reports whether err indicates a transient service failure.
func IsUnavailable(err error) bool { return errors.Is(err, ErrServiceUnavailable) }

// IsTimeout reports whether err indicates an exceeded lookup deadline.
func IsTimeout(err error) bool { return errors.Is(err, ErrLookupTimeout) }

// IsMalformed reports whether err indicates unusable metadata.
func IsMalformed(err error) bool { return errors.Is(err, ErrMalformedMetadata) }
