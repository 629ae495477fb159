package mission

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mungbws1031/leo-study/internal/llm"
)

func TestGenerate_CallsProviderOnce(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "# 오늘의 미션\n\n## 파닉스"})
	g := NewGenerator(mock, nil)

	m, err := g.Generate(context.Background(), minjun(), LevelEasy, RandomTheme(), tuesday)
	require.NoError(t, err)

	assert.Equal(t, 1, mock.CallCount())
	assert.Equal(t, "# 오늘의 미션\n\n## 파닉스", m.Text)
	assert.False(t, m.RestDay)
	assert.Equal(t, "minjun", m.ChildID)

	req, ok := mock.LastCall()
	require.True(t, ok)
	assert.Equal(t, MaxTokensElementary, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, llm.RoleUser, req.Messages[0].Role)
}

func TestGenerate_RestDaySkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, nil)

	m, err := g.Generate(context.Background(), minjun(), LevelNormal, RandomTheme(), sunday)
	require.NoError(t, err)

	assert.Equal(t, 0, mock.CallCount())
	assert.True(t, m.RestDay)
	assert.True(t, strings.Contains(m.Text, "민준아"))
	assert.Equal(t, RestMessage("민준"), m.Text)
}

func TestGenerate_RestDayIgnoresSelections(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, nil)

	m, err := g.Generate(context.Background(), minjun(), LevelNormal, SpecificTheme("포켓몬"), sunday)
	require.NoError(t, err)
	assert.True(t, m.RestDay)
	assert.Equal(t, RestMessage("민준"), m.Text)

	m, err = g.Generate(context.Background(), minjun(), Level(""), RandomTheme(), sunday)
	require.NoError(t, err)
	assert.True(t, m.RestDay)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_WrapsProviderError(t *testing.T) {
	cause := &llm.ErrProviderUnavailable{Err: errors.New("boom")}
	mock := llm.NewMockProvider(llm.MockResponse{Err: cause})
	g := NewGenerator(mock, nil)

	_, err := g.Generate(context.Background(), seoa(), LevelEasy, RandomTheme(), tuesday)
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "seoa", genErr.ChildID)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, mock.CallCount())
}

func TestGenerate_InvalidLevelMakesNoCall(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, nil)

	_, err := g.Generate(context.Background(), minjun(), Level(""), RandomTheme(), tuesday)
	assert.ErrorIs(t, err, ErrInvalidLevel)
	assert.Equal(t, 0, mock.CallCount())
}

func TestGenerate_FreshCallEachTime(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Text: "first"},
		llm.MockResponse{Text: "second"},
	)
	g := NewGenerator(mock, nil)

	a, err := g.Generate(context.Background(), minjun(), LevelEasy, RandomTheme(), tuesday)
	require.NoError(t, err)
	b, err := g.Generate(context.Background(), minjun(), LevelEasy, RandomTheme(), tuesday)
	require.NoError(t, err)

	assert.Equal(t, "first", a.Text)
	assert.Equal(t, "second", b.Text)
	assert.Equal(t, 2, mock.CallCount())
}

func TestGenerate_TruncatedReplyIsStillReturned(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "# 오늘의 미션\n\n## 파닉스", Truncated: true})
	g := NewGenerator(mock, nil)

	m, err := g.Generate(context.Background(), minjun(), LevelHard, RandomTheme(), tuesday)
	require.NoError(t, err)
	assert.Equal(t, "# 오늘의 미션\n\n## 파닉스", m.Text)
}
