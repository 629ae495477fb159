package store

import (
	"context"
	"time"
)

// QueryOpts filters audit log queries. Zero values match everything.
type QueryOpts struct {
	Limit   int
	Purpose string
	ChildID string
}

// LLMRequestEventData is one provider call as the audit log records it.
type LLMRequestEventData struct {
	RequestID    string
	Provider     string
	Model        string
	Purpose      string
	ChildID      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	StopReason   string
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored LLMRequestEventData.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// Grouping selects the column usage totals are grouped by.
type Grouping string

const (
	ByPurpose Grouping = "purpose"
	ByModel   Grouping = "model"
	ByChild   Grouping = "child_id"
)

// Usage totals the calls sharing one Key under a Grouping.
type Usage struct {
	Key          string
	Calls        int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// Tokens is the input plus output token count.
func (u Usage) Tokens() int { return u.InputTokens + u.OutputTokens }

// EventRepo is the write side of the audit log.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
}
