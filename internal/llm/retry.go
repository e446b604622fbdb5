package llm

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/studyway/studyway/internal/common"
)

// retrier re-issues upstream calls that failed transiently. Permanent
// failures (auth, bad request) are returned immediately.
type retrier struct {
	maxAttempts int
	baseBackoff time.Duration
}

func (r retrier) do(ctx context.Context, fn func() error) error {
	attempts := r.maxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	backoff := r.baseBackoff
	if backoff <= 0 {
		backoff = 500 * time.Millisecond
	}
	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !Retryable(err) || attempt == attempts {
			return err
		}
		delay := jitter(backoff << (attempt - 1))
		common.Logger().Warn("llm: transient upstream failure, retrying",
			"attempt", attempt, "delay", delay, "error", err)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

// Retryable reports whether an upstream error is worth retrying: rate
// limits, server errors, and transport-level failures. Other 4xx responses
// (auth, malformed request) never retry.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	status := StatusCode(err)
	if status == 0 {
		// Network error or timeout rather than an API response.
		return true
	}
	return status == http.StatusTooManyRequests || status >= 500
}

func jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	// Uniform jitter in [d/2, d).
	half := int64(d / 2)
	if half <= 0 {
		return d
	}
	return time.Duration(half + rand.Int63n(half))
}
