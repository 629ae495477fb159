package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Stop reasons, normalised across providers.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Truncated reports whether the reply was cut off by the token budget.
// A truncated mission is still returned; callers decide what to do.
func (r *Response) Truncated() bool { return r.StopReason == StopMaxTokens }

// reply is an SDK answer reduced to what every provider reports.
type reply struct {
	provider  string
	model     string
	texts     []string
	truncated bool
	usage     Usage
}

// response keeps the first non-empty text block verbatim.
func (r reply) response() (*Response, error) {
	for _, text := range r.texts {
		if text == "" {
			continue
		}
		stop := StopEnd
		if r.truncated {
			stop = StopMaxTokens
		}
		usage := r.usage
		if usage.TotalTokens == 0 {
			usage.TotalTokens = usage.InputTokens + usage.OutputTokens
		}
		return &Response{Text: text, Usage: usage, Model: r.model, StopReason: stop}, nil
	}
	return nil, &ErrInvalidResponse{Err: fmt.Errorf("no text content in %s response", r.provider)}
}

// classifyFailure turns an SDK error into one of the package error types.
// status is the HTTP status the SDK saw, or 0 when the call never got one.
func classifyFailure(err error, status int, header http.Header) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return &ErrProviderUnavailable{Err: err}
	}
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{Err: err, RetryAfter: retryAfter(header)}
	}
	return &ErrProviderUnavailable{Err: err}
}

// retryAfter reads a Retry-After header given in seconds.
func retryAfter(h http.Header) time.Duration {
	if h == nil {
		return 0
	}
	secs, err := strconv.Atoi(h.Get("Retry-After"))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
