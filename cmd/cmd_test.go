package cmd

import (
	"runtime/debug"
	"testing"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mungbws1031/leo-study/internal/llm"
	"github.com/mungbws1031/leo-study/internal/profile"
	"github.com/mungbws1031/leo-study/internal/store"
)

func newDateCmd(value string) *cobra.Command {
	c := &cobra.Command{Use: "t"}
	c.Flags().String("date", "", "")
	if value != "" {
		_ = c.Flags().Set("date", value)
	}
	return c
}

func TestDateFlag(t *testing.T) {
	d, err := dateFlag(newDateCmd("20250304"), "date", "20060102")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.Local), d)

	_, err = dateFlag(newDateCmd("2025-03-04"), "date", "20060102")
	assert.ErrorContains(t, err, "invalid --date")

	d, err = dateFlag(newDateCmd(""), "date", "20060102")
	require.NoError(t, err)
	assert.True(t, sameDay(d, time.Now()))
}

func TestChildIDs(t *testing.T) {
	children := profile.Defaults(profile.Env{})
	assert.Equal(t, "minjun, seoa", childIDs(children))
	assert.Equal(t, "", childIDs(nil))
}

func TestRootRegistersCommands(t *testing.T) {
	want := []string{"profiles", "phonics", "week", "mission", "history", "report", "llm", "app", "serve", "version"}
	for _, name := range want {
		c, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, c.Name())
	}
}

func TestCellPadsByTerminalWidth(t *testing.T) {
	assert.Equal(t, "ab   ", cell("ab", 5))
	assert.Equal(t, "과제  ", cell("과제", 6))
	assert.Equal(t, "리포 ", cell("리포트", 5))
	assert.Equal(t, 5, lipgloss.Width(cell("리포트", 5)))
	assert.Equal(t, "claude", cell("claude-opus-4-6", 6))
}

func TestCallStatus(t *testing.T) {
	ok := store.LLMRequestEvent{LLMRequestEventData: store.LLMRequestEventData{Success: true, StopReason: llm.StopEnd}}
	cut := store.LLMRequestEvent{LLMRequestEventData: store.LLMRequestEventData{Success: true, StopReason: llm.StopMaxTokens}}
	failed := store.LLMRequestEvent{}

	assert.Equal(t, "✓", status(ok))
	assert.Equal(t, "✓ 잘림", status(cut))
	assert.Equal(t, "✗", status(failed))
}

func TestChildNameAndPurposeLabel(t *testing.T) {
	env := &appEnv{profiles: profile.NewStore(profile.Defaults(profile.Env{}))}
	assert.Equal(t, "-", env.childName(""))
	assert.Equal(t, "gone", env.childName("gone"))
	assert.Equal(t, "민준", env.childName("minjun"))

	assert.Equal(t, "과제", purposeLabel(llm.PurposeMission))
	assert.Equal(t, "리포트", purposeLabel(llm.PurposeReport))
	assert.Equal(t, "unknown", purposeLabel("unknown"))
}

func TestVersionLine(t *testing.T) {
	assert.Equal(t, "leo v1.2.0", versionLine("v1.2.0", nil))

	info := &debug.BuildInfo{
		GoVersion: "go1.25.0",
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	assert.Equal(t, "leo (devel) (0123456789ab-dirty) go1.25.0", versionLine("(devel)", info))
	assert.Equal(t, "leo (devel) go1.25.0", versionLine("(devel)", &debug.BuildInfo{GoVersion: "go1.25.0"}))
}
