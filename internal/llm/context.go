package llm

import "context"

type contextKey string

const (
	purposeKey   contextKey = "llm_purpose"
	requestIDKey contextKey = "llm_request_id"
	childKey     contextKey = "llm_child"
)

// Purpose labels recorded in the audit log.
const (
	PurposeMission = "mission"
	PurposeReport  = "report"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}

// WithRequestID attaches a request id so audit events can be correlated
// with the HTTP request or CLI invocation that caused them.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFrom returns the request id, or "" if none was attached.
func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithChild tags the call with the child it is made for.
func WithChild(ctx context.Context, childID string) context.Context {
	return context.WithValue(ctx, childKey, childID)
}

// ChildFrom returns the tagged child id, or "".
func ChildFrom(ctx context.Context) string {
	if v, ok := ctx.Value(childKey).(string); ok {
		return v
	}
	return ""
}
