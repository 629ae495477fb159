package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const llmEventsTable = "llm_request_events"

var llmEventColumns = []string{
	"id", "timestamp", "request_id", "provider", "model", "purpose", "child_id",
	"input_tokens", "output_tokens", "latency_ms", "stop_reason", "success",
	"error_message", "request_body", "response_body",
}

// LLMEventLog implements EventRepo and the read queries behind `leo llm`.
type LLMEventLog struct {
	db  *sql.DB
	now func() time.Time
}

func (r *LLMEventLog) builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

func (r *LLMEventLog) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	now := time.Now
	if r.now != nil {
		now = r.now
	}

	query, args := r.builder().
		Insert(llmEventsTable).
		Columns(
			"timestamp", "request_id", "provider", "model", "purpose", "child_id",
			"input_tokens", "output_tokens", "latency_ms", "stop_reason", "success",
			"error_message", "request_body", "response_body",
		).
		Values(
			now().UnixMilli(), data.RequestID, data.Provider, data.Model, data.Purpose, data.ChildID,
			data.InputTokens, data.OutputTokens, data.LatencyMs, data.StopReason, data.Success,
			data.ErrorMessage, data.RequestBody, data.ResponseBody,
		).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns events newest first.
func (r *LLMEventLog) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	sel := r.builder().
		Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		OrderBy(entsql.Desc("id"))
	var preds []*entsql.Predicate
	if opts.Purpose != "" {
		preds = append(preds, entsql.EQ("purpose", opts.Purpose))
	}
	if opts.ChildID != "" {
		preds = append(preds, entsql.EQ("child_id", opts.ChildID))
	}
	if len(preds) > 0 {
		sel.Where(entsql.And(preds...))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var out []LLMRequestEvent
	for rows.Next() {
		e, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// GetLLMEvent returns a single event, or nil if id does not exist.
func (r *LLMEventLog) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	query, args := r.builder().
		Select(llmEventColumns...).
		From(entsql.Table(llmEventsTable)).
		Where(entsql.EQ("id", id)).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get LLM event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	e, err := scanLLMEvent(rows)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// UsageBy totals calls per distinct value of the grouping column.
func (r *LLMEventLog) UsageBy(ctx context.Context, g Grouping) ([]Usage, error) {
	switch g {
	case ByPurpose, ByModel, ByChild:
	default:
		return nil, fmt.Errorf("unknown usage grouping %q", g)
	}
	col := string(g)

	query, args := r.builder().
		Select(
			col,
			entsql.As(entsql.Count("*"), "calls"),
			entsql.As("SUM(1 - success)", "failures"),
			entsql.As(entsql.Sum("input_tokens"), "input_tokens"),
			entsql.As(entsql.Sum("output_tokens"), "output_tokens"),
			entsql.As(entsql.Avg("latency_ms"), "avg_latency"),
		).
		From(entsql.Table(llmEventsTable)).
		GroupBy(col).
		OrderBy(col).
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query usage by %s: %w", g, err)
	}
	defer rows.Close()

	var out []Usage
	for rows.Next() {
		var u Usage
		var avg sql.NullFloat64
		if err := rows.Scan(&u.Key, &u.Calls, &u.Failures, &u.InputTokens, &u.OutputTokens, &avg); err != nil {
			return nil, fmt.Errorf("scan usage: %w", err)
		}
		u.AvgLatencyMs = int64(avg.Float64)
		out = append(out, u)
	}
	return out, rows.Err()
}

func scanLLMEvent(rows *sql.Rows) (LLMRequestEvent, error) {
	var e LLMRequestEvent
	var ts int64
	err := rows.Scan(
		&e.ID, &ts, &e.RequestID, &e.Provider, &e.Model, &e.Purpose, &e.ChildID,
		&e.InputTokens, &e.OutputTokens, &e.LatencyMs, &e.StopReason, &e.Success,
		&e.ErrorMessage, &e.RequestBody, &e.ResponseBody,
	)
	if err != nil {
		return e, fmt.Errorf("scan LLM event: %w", err)
	}
	e.Timestamp = time.UnixMilli(ts)
	return e, nil
}
