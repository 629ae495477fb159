// Package mission builds and generates a child's daily homework mission.
package mission

import (
	"context"
	"fmt"
	"time"

	"github.com/mungbws1031/leo-study/internal/llm"
	"github.com/mungbws1031/leo-study/internal/pkg/logger"
	"github.com/mungbws1031/leo-study/internal/profile"
)

// Mission is one generated mission. It is a plain value handed back to
// the caller; nothing here is retained between calls.
type Mission struct {
	ChildID   string
	ChildName string
	Day       time.Time
	Level     Level
	Theme     ThemeSelector
	Text      string
	RestDay   bool
}

// RestMessage is returned instead of a mission on rest days.
func RestMessage(name string) string {
	return fmt.Sprintf("# 😴 오늘은 쉬는 날!\n\n%s, 오늘은 푹 쉬어! 🎮", Vocative(name))
}

// Generator turns a profile and today's selections into mission text.
type Generator struct {
	provider llm.Provider
	log      *logger.Logger
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider, log *logger.Logger) *Generator {
	if log == nil {
		log = logger.Nop()
	}
	return &Generator{provider: provider, log: log}
}

// Generate returns today's mission for child. On rest days it returns the
// rest message without calling the provider. Every other day makes exactly
// one provider call; failures come back as *GenerationError.
func (g *Generator) Generate(ctx context.Context, child profile.Child, level Level, sel ThemeSelector, now time.Time) (*Mission, error) {
	m := &Mission{
		ChildID:   child.ID,
		ChildName: child.Name,
		Day:       now,
		Level:     level,
		Theme:     sel,
	}

	// Sunday wins over any level or theme choice.
	if IsRestDay(now) {
		m.Text = RestMessage(child.Name)
		m.RestDay = true
		g.log.Debug("rest day, skipping generation", "child", child.ID)
		return m, nil
	}

	prompt, err := BuildPrompt(child, level, sel, now)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithChild(llm.WithPurpose(ctx, llm.PurposeMission), child.ID)
	resp, err := g.provider.Generate(ctx, llm.UserRequest(prompt.System, prompt.User, prompt.MaxTokens))
	if err != nil {
		g.log.Error("mission generation failed", "child", child.ID, "error", err.Error())
		return nil, &GenerationError{ChildID: child.ID, Err: err}
	}

	g.log.Info("mission generated",
		"child", child.ID,
		"level", string(level),
		"theme", sel.String(),
		"output_tokens", resp.Usage.OutputTokens,
	)
	if resp.Truncated() {
		g.log.Warn("mission hit the token budget and may end mid-section",
			"child", child.ID, "max_tokens", prompt.MaxTokens)
	}
	m.Text = resp.Text
	return m, nil
}
