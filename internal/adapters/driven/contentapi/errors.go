package contentapi

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// APIError is any non-2xx response from the management API.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

// RateLimitError indicates the API rejected a request with 429.
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
