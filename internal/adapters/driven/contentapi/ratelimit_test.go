package contentapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_WaitWithoutBackpressure(t *testing.T) {
	limiter := NewRateLimiter()

	err := limiter.Wait(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, DefaultRetryAfter, limiter.RetryAfter())
}

func TestRateLimiter_UpdateFromResponse_RetryAfterHeader(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "5")
	limiter.UpdateFromResponse(resp)

	assert.Equal(t, 5*time.Second, limiter.RetryAfter())
}

func TestRateLimiter_UpdateFromResponse_InvalidHeaderIgnored(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{StatusCode: http.StatusOK, Header: http.Header{}}
	resp.Header.Set(HeaderRetryAfter, "soon")
	limiter.UpdateFromResponse(resp)

	assert.Equal(t, DefaultRetryAfter, limiter.RetryAfter())
}

func TestRateLimiter_TooManyRequestsBlocks(t *testing.T) {
	limiter := NewRateLimiter()

	resp := &http.Response{StatusCode: http.StatusTooManyRequests, Header: http.Header{}}
	limiter.UpdateFromResponse(resp)

	limiter.mu.Lock()
	until := limiter.blockUntil
	limiter.mu.Unlock()
	assert.True(t, until.After(time.Now()))
}

func TestRateLimiter_WaitHonoursCancellationWhileBlocked(t *testing.T) {
	limiter := NewRateLimiter()
	limiter.mu.Lock()
	limiter.blockUntil = time.Now().Add(time.Minute)
	limiter.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRateLimiter_NilResponseIgnored(t *testing.T) {
	limiter := NewRateLimiter()

	limiter.UpdateFromResponse(nil)

	assert.Equal(t, DefaultRetryAfter, limiter.RetryAfter())
}
