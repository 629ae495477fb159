package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestReplyResponse(t *testing.T) {
	tests := []struct {
		name      string
		r         reply
		wantText  string
		wantStop  string
		wantTotal int
		wantErr   bool
	}{
		{
			name:      "first non-empty block",
			r:         reply{provider: "x", texts: []string{"", "# 미션", "more"}, usage: Usage{InputTokens: 3, OutputTokens: 4}},
			wantText:  "# 미션",
			wantStop:  StopEnd,
			wantTotal: 7,
		},
		{
			name:      "truncated",
			r:         reply{provider: "x", texts: []string{"cut"}, truncated: true, usage: Usage{TotalTokens: 9}},
			wantText:  "cut",
			wantStop:  StopMaxTokens,
			wantTotal: 9,
		},
		{
			name:    "no text",
			r:       reply{provider: "x", texts: []string{"", ""}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tt.r.response()
			if tt.wantErr {
				var inv *ErrInvalidResponse
				if !errors.As(err, &inv) {
					t.Fatalf("expected ErrInvalidResponse, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if resp.Text != tt.wantText || resp.StopReason != tt.wantStop || resp.Usage.TotalTokens != tt.wantTotal {
				t.Fatalf("got %+v", resp)
			}
		})
	}
}

func TestClassifyFailure(t *testing.T) {
	base := errors.New("boom")

	h := http.Header{}
	h.Set("Retry-After", "30")
	var rl *ErrRateLimit
	if err := classifyFailure(base, http.StatusTooManyRequests, h); !errors.As(err, &rl) {
		t.Fatalf("expected ErrRateLimit, got %T", err)
	}
	if rl.RetryAfter != 30*time.Second {
		t.Fatalf("RetryAfter = %s", rl.RetryAfter)
	}

	var pu *ErrProviderUnavailable
	if err := classifyFailure(base, http.StatusInternalServerError, nil); !errors.As(err, &pu) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", err)
	}

	timeout := fmt.Errorf("post: %w", context.DeadlineExceeded)
	err := classifyFailure(timeout, 0, nil)
	if !errors.As(err, &pu) || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("timeout should stay unwrappable, got %v", err)
	}
}

func TestRateLimitMessage(t *testing.T) {
	e := &ErrRateLimit{Err: errors.New("429")}
	if got := e.Error(); got != "rate limited: 429" {
		t.Fatalf("Error() = %q", got)
	}
	e.RetryAfter = time.Minute
	if got := e.Error(); got != "rate limited, try again in 1m0s: 429" {
		t.Fatalf("Error() = %q", got)
	}
}
