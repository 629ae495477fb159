package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "leo.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "leo.db")
	if err := EnsureDir(path); err != nil {
		t.Fatalf("ensure dir: %v", err)
	}
	for i := 0; i < 2; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("open #%d: %v", i, err)
		}
		s.Close()
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("PRAGMA journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Errorf("journal_mode = %q, want wal", mode)
	}

	var sync string
	if err := s.DB().QueryRow("PRAGMA synchronous").Scan(&sync); err != nil {
		t.Fatalf("PRAGMA synchronous: %v", err)
	}
	if sync != "1" { // NORMAL = 1
		t.Errorf("synchronous = %q, want 1", sync)
	}
}

func appendEvent(t *testing.T, log *LLMEventLog, data LLMRequestEventData) {
	t.Helper()
	if err := log.AppendLLMRequest(context.Background(), data); err != nil {
		t.Fatalf("append: %v", err)
	}
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	log := s.Events()
	fixed := time.Date(2026, 10, 13, 9, 0, 0, 0, time.UTC)
	log.now = func() time.Time { return fixed }

	appendEvent(t, log, LLMRequestEventData{
		RequestID: "r1", Provider: "anthropic", Model: "claude-opus-4-6", Purpose: "mission", ChildID: "minjun",
		InputTokens: 100, OutputTokens: 900, LatencyMs: 1200, StopReason: "end_turn", Success: true,
		RequestBody: "[system]\n...", ResponseBody: "# 미션",
	})
	appendEvent(t, log, LLMRequestEventData{
		RequestID: "r2", Provider: "anthropic", Model: "claude-opus-4-6", Purpose: "report", ChildID: "seoa",
		Success: false, ErrorMessage: "LLM provider unavailable",
	})

	events, err := log.QueryLLMEvents(context.Background(), QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	// Newest first.
	if events[0].RequestID != "r2" || events[1].RequestID != "r1" {
		t.Fatalf("unexpected order: %q, %q", events[0].RequestID, events[1].RequestID)
	}
	if events[0].Success || events[0].ErrorMessage == "" {
		t.Fatalf("failed event not preserved: %+v", events[0])
	}
	if !events[1].Success || events[1].OutputTokens != 900 || events[1].ResponseBody != "# 미션" ||
		events[1].ChildID != "minjun" || events[1].StopReason != "end_turn" {
		t.Fatalf("successful event not preserved: %+v", events[1])
	}
	if !events[1].Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %s, want %s", events[1].Timestamp, fixed)
	}

	filtered, err := log.QueryLLMEvents(context.Background(), QueryOpts{Purpose: "mission", Limit: 5})
	if err != nil {
		t.Fatalf("filtered query: %v", err)
	}
	if len(filtered) != 1 || filtered[0].Purpose != "mission" {
		t.Fatalf("purpose filter failed: %+v", filtered)
	}

	forSeoa, err := log.QueryLLMEvents(context.Background(), QueryOpts{ChildID: "seoa"})
	if err != nil {
		t.Fatalf("child query: %v", err)
	}
	if len(forSeoa) != 1 || forSeoa[0].RequestID != "r2" {
		t.Fatalf("child filter failed: %+v", forSeoa)
	}

	none, err := log.QueryLLMEvents(context.Background(), QueryOpts{ChildID: "seoa", Purpose: "mission"})
	if err != nil {
		t.Fatalf("combined query: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("filters should combine, got %+v", none)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	log := s.Events()
	appendEvent(t, log, LLMRequestEventData{RequestID: "only", Purpose: "mission", Success: true})

	events, err := log.QueryLLMEvents(context.Background(), QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (%d events)", err, len(events))
	}

	got, err := log.GetLLMEvent(context.Background(), events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestID != "only" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := log.GetLLMEvent(context.Background(), events[0].ID+100)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil for missing id, got %+v", missing)
	}
}

func TestUsageBy(t *testing.T) {
	s := openTestStore(t)
	log := s.Events()
	appendEvent(t, log, LLMRequestEventData{Model: "claude-opus-4-6", Purpose: "mission", ChildID: "minjun", InputTokens: 10, OutputTokens: 100, LatencyMs: 100, Success: true})
	appendEvent(t, log, LLMRequestEventData{Model: "claude-opus-4-6", Purpose: "mission", ChildID: "seoa", InputTokens: 20, OutputTokens: 200, LatencyMs: 300, Success: true})
	appendEvent(t, log, LLMRequestEventData{Model: "gpt-4o-mini", Purpose: "report", ChildID: "minjun", LatencyMs: 50, Success: false})

	byPurpose, err := log.UsageBy(context.Background(), ByPurpose)
	if err != nil {
		t.Fatalf("by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	m := byPurpose[0]
	if m.Key != "mission" || m.Calls != 2 || m.Failures != 0 || m.Tokens() != 330 || m.AvgLatencyMs != 200 {
		t.Fatalf("unexpected mission usage: %+v", m)
	}
	if byPurpose[1].Key != "report" || byPurpose[1].Failures != 1 {
		t.Fatalf("unexpected report usage: %+v", byPurpose[1])
	}

	byModel, err := log.UsageBy(context.Background(), ByModel)
	if err != nil {
		t.Fatalf("by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Key != "claude-opus-4-6" || byModel[0].Calls != 2 {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}

	byChild, err := log.UsageBy(context.Background(), ByChild)
	if err != nil {
		t.Fatalf("by child: %v", err)
	}
	if len(byChild) != 2 || byChild[0].Key != "minjun" || byChild[0].Calls != 2 || byChild[0].InputTokens != 10 {
		t.Fatalf("unexpected child usage: %+v", byChild)
	}

	if _, err := log.UsageBy(context.Background(), Grouping("request_body")); err == nil {
		t.Fatal("expected error for unknown grouping")
	}
}
