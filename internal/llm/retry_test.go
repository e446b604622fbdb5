package llm

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	openai "github.com/openai/openai-go/v2"

	"github.com/studyway/studyway/internal/config"
)

func emptyKeyConfig(key string) config.Config {
	return config.Config{OpenAIAPIKey: key, OpenAIModel: "gpt-4o-mini"}
}

func apiError(status int) error {
	return &openai.Error{StatusCode: status}
}

func TestRetryableClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"network", errors.New("connection reset"), true},
		{"rate limited", apiError(http.StatusTooManyRequests), true},
		{"server error", apiError(http.StatusInternalServerError), true},
		{"bad gateway", apiError(http.StatusBadGateway), true},
		{"bad request", apiError(http.StatusBadRequest), false},
		{"unauthorized", apiError(http.StatusUnauthorized), false},
		{"not found", apiError(http.StatusNotFound), false},
	}
	for _, tc := range cases {
		if got := Retryable(tc.err); got != tc.want {
			t.Fatalf("%s: Retryable = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestRetrierRecoversFromTransientFailures(t *testing.T) {
	r := retrier{maxAttempts: 3, baseBackoff: time.Millisecond}
	calls := 0
	err := r.do(context.Background(), func() error {
		calls++
		if calls < 3 {
			return apiError(http.StatusServiceUnavailable)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetrierStopsAtMaxAttempts(t *testing.T) {
	r := retrier{maxAttempts: 3, baseBackoff: time.Millisecond}
	calls := 0
	err := r.do(context.Background(), func() error {
		calls++
		return apiError(http.StatusInternalServerError)
	})
	if err == nil {
		t.Fatalf("expected final error")
	}
	if calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", calls)
	}
}

func TestRetrierDoesNotRetryPermanentFailures(t *testing.T) {
	r := retrier{maxAttempts: 3, baseBackoff: time.Millisecond}
	calls := 0
	err := r.do(context.Background(), func() error {
		calls++
		return apiError(http.StatusUnauthorized)
	})
	if err == nil {
		t.Fatalf("expected error to surface")
	}
	if calls != 1 {
		t.Fatalf("permanent failure must not retry, got %d attempts", calls)
	}
}

func TestRetrierHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := retrier{maxAttempts: 3, baseBackoff: time.Hour}
	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- r.do(ctx, func() error {
			calls++
			return apiError(http.StatusInternalServerError)
		})
	}()
	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("retrier did not observe cancellation")
	}
}

func TestJitterStaysWithinBounds(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		d := jitter(base)
		if d < base/2 || d >= base {
			t.Fatalf("jitter %v out of [%v, %v)", d, base/2, base)
		}
	}
	if jitter(0) != 0 {
		t.Fatalf("zero duration must stay zero")
	}
}

func TestNewProviderRequiresKey(t *testing.T) {
	if _, err := NewProvider(emptyKeyConfig("")); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
	if _, err := NewProvider(emptyKeyConfig("your_openai_api_key_here")); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("placeholder key must count as unconfigured, got %v", err)
	}
	provider, err := NewProvider(emptyKeyConfig("sk-test"))
	if err != nil {
		t.Fatalf("real key rejected: %v", err)
	}
	if provider.Name() != "openai" {
		t.Fatalf("unexpected provider name %q", provider.Name())
	}
}
