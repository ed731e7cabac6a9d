package contentapi

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle in requests per second.
	// The management API allows a low-single-digit request rate; staying
	// under it avoids most 429 responses up front.
	ProactiveRate = 3

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"

	// DefaultRetryAfter is assumed when a 429 carries no Retry-After.
	DefaultRetryAfter = time.Second
)

// RateLimiter combines a proactive token bucket with reactive handling of
// Retry-After responses. Every request waits on it before being sent.
type RateLimiter struct {
	mu         sync.Mutex
	bucket     *rate.Limiter
	retryAfter time.Duration
	blockUntil time.Time
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket:     rate.NewLimiter(rate.Limit(ProactiveRate), 1),
		retryAfter: DefaultRetryAfter,
	}
}

// Wait blocks until it is safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	until := r.blockUntil
	r.mu.Unlock()

	if time.Now().Before(until) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(until)):
		}
	}
	return nil
}

// UpdateFromResponse records server back-pressure from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if header := resp.Header.Get(HeaderRetryAfter); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil && seconds > 0 {
			r.retryAfter = time.Duration(seconds) * time.Second
		}
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		r.blockUntil = time.Now().Add(r.retryAfter)
	}
}

// RetryAfter returns the wait the server last asked for.
func (r *RateLimiter) RetryAfter() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.retryAfter
}
