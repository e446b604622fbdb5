package advisor

import (
	"fmt"
	"net/http"
)

// ValidationError marks caller-correctable input problems. It is raised
// before any identifier assignment or network I/O.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError marks a missing submission or program index.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// ParseError marks upstream output that is not valid structured data. The
// wrapped parser error stays server-side; callers see a generic message.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse model response: %v", e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// InvalidResponseError marks structurally valid JSON that is missing the
// required top-level shape. Distinct from ParseError so the caller can show
// a more specific message.
type InvalidResponseError struct {
	Message string
}

func (e *InvalidResponseError) Error() string { return e.Message }

// UpstreamError marks a failed LLM or search API call after retries.
type UpstreamError struct {
	Status int
	Err    error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("upstream call failed: %v", e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) RateLimited() bool { return e.Status == http.StatusTooManyRequests }

func (e *UpstreamError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// UserMessage maps the failure onto a message safe to show the caller,
// distinguishing rate limits and auth failures from generic breakage.
func (e *UpstreamError) UserMessage() string {
	switch {
	case e.RateLimited():
		return "The AI service is rate limited right now. Please try again in a moment."
	case e.Unauthorized():
		return "The AI service rejected the configured API key. Please verify OPENAI_API_KEY."
	default:
		return "The AI service is temporarily unavailable. Please try again."
	}
}
