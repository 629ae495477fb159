// Package report builds the weekly parent report from saved missions.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/llm"
	"github.com/mungbws1031/leo-study/internal/pkg/logger"
	"github.com/mungbws1031/leo-study/internal/profile"
)

const (
	// Window is how many recent missions feed a report.
	Window = 7

	// MaxTokens bounds the report length.
	MaxTokens = 1000

	// NoRecordsMessage is returned when the child has no saved missions.
	NoRecordsMessage = "아직 저장된 과제 기록이 없어요. 먼저 과제를 생성하고 저장해 주세요!"

	recordSeparator = "\n\n---\n\n"
)

const systemPrompt = `당신은 교육 전문가입니다.
아이의 학습 기록을 분석해서 부모님께
따뜻하고 격려가 되는 주간 리포트를 작성해주세요.
포함 내용: 이번 주 학습 요약, 잘한 점, 다음 주 추천 방향, 부모님 팁 1가지
말투: 따뜻하고 전문적으로`

// Source supplies recent missions for a child, oldest first.
type Source interface {
	Recent(childID string, n int) ([]history.Entry, error)
}

// Report is a generated report. It is derived on demand and never stored.
type Report struct {
	ChildID   string
	ChildName string
	Text      string
	// Records is how many missions were summarized.
	Records int
	Created time.Time
}

// GenerationError wraps a failed model call for a report.
type GenerationError struct {
	ChildID string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("report generation failed for %s: %v", e.ChildID, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator summarizes saved missions into a parent report.
type Generator struct {
	source   Source
	provider llm.Provider
	log      *logger.Logger
}

// NewGenerator creates a report Generator.
func NewGenerator(source Source, provider llm.Provider, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{source: source, provider: provider, log: log}
}

// Build produces a report for child from up to Window recent missions.
// With no missions it returns NoRecordsMessage without a provider call.
// Storage failures come back unchanged; model failures as *GenerationError.
func (g *Generator) Build(ctx context.Context, child profile.Child, now time.Time) (*Report, error) {
	entries, err := g.source.Recent(child.ID, Window)
	if err != nil {
		return nil, err
	}

	r := &Report{ChildID: child.ID, ChildName: child.Name, Records: len(entries), Created: now}
	if len(entries) == 0 {
		r.Text = NoRecordsMessage
		return r, nil
	}

	ctx = llm.WithChild(llm.WithPurpose(ctx, llm.PurposeReport), child.ID)
	resp, err := g.provider.Generate(ctx, llm.UserRequest(systemPrompt, UserMessage(child.Name, entries), MaxTokens))
	if err != nil {
		g.log.Error("report generation failed", "child", child.ID, "error", err.Error())
		return nil, &GenerationError{ChildID: child.ID, Err: err}
	}
	g.log.Info("report generated", "child", child.ID, "records", len(entries))
	if resp.Truncated() {
		g.log.Warn("report hit the token budget", "child", child.ID, "max_tokens", MaxTokens)
	}
	r.Text = resp.Text
	return r, nil
}

// UserMessage joins the stored missions, in the given order, under the
// child's name.
func UserMessage(name string, entries []history.Entry) string {
	records := make([]string, len(entries))
	for i, e := range entries {
		records[i] = e.Raw
	}
	return "아이 이름: " + name + "\n\n최근 학습 기록:\n\n" + strings.Join(records, recordSeparator)
}

// DownloadName is the suggested filename for exporting a report.
func DownloadName(day time.Time) string {
	return "리포트_" + day.Format("20060102") + ".txt"
}
