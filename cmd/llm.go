package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/llm"
	"github.com/mungbws1031/leo-study/internal/store"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

const ruleWidth = 78

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded mission and report LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		childID, _ := cmd.Flags().GetString("child")

		env, err := loadEnv(cmd, "warn")
		if err != nil {
			return err
		}
		defer env.close()
		if childID != "" {
			if _, err := env.child(childID); err != nil {
				return err
			}
		}
		s, err := env.openStore()
		if err != nil {
			return err
		}

		events, err := s.Events().QueryLLMEvents(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
			ChildID: childID,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("기록된 호출이 없어요.")
			return nil
		}

		fmt.Println(row(
			cell("ID", 5), cell("시각", 16), cell("용도", 6), cell("아이", 8),
			cell("모델", 24), cell("In", 6), cell("Out", 6), cell("Ms", 7), "상태",
		))
		fmt.Println(rule())
		for _, e := range events {
			fmt.Println(row(
				cell(strconv.Itoa(e.ID), 5),
				cell(e.Timestamp.Local().Format("01-02 15:04:05"), 16),
				cell(purposeLabel(e.Purpose), 6),
				cell(env.childName(e.ChildID), 8),
				cell(e.Model, 24),
				cell(strconv.Itoa(e.InputTokens), 6),
				cell(strconv.Itoa(e.OutputTokens), 6),
				cell(strconv.FormatInt(e.LatencyMs, 10), 7),
				status(e),
			))
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid event id %q", args[0])
		}

		env, err := loadEnv(cmd, "warn")
		if err != nil {
			return err
		}
		defer env.close()
		s, err := env.openStore()
		if err != nil {
			return err
		}

		e, err := s.Events().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		field := func(name, value string) {
			fmt.Printf("%s %s\n", theme.Subtitle.Render(fmt.Sprintf("%-9s", name)), value)
		}
		field("Request", e.RequestID)
		field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		field("Purpose", purposeLabel(e.Purpose))
		field("Child", env.childName(e.ChildID))
		field("Model", e.Provider+" / "+e.Model)
		field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
		field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
		field("Status", status(*e))
		if e.ErrorMessage != "" {
			field("Error", e.ErrorMessage)
		}

		section("PROMPT", e.RequestBody)
		section("REPLY", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage per purpose and child, and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd, "warn")
		if err != nil {
			return err
		}
		defer env.close()
		s, err := env.openStore()
		if err != nil {
			return err
		}
		log := s.Events()
		ctx := cmd.Context()

		byPurpose, err := log.UsageBy(ctx, store.ByPurpose)
		if err != nil {
			return err
		}
		if len(byPurpose) == 0 {
			fmt.Println("아직 사용량 기록이 없어요.")
			return nil
		}
		printUsage("용도별", byPurpose, purposeLabel)

		byChild, err := log.UsageBy(ctx, store.ByChild)
		if err != nil {
			return err
		}
		fmt.Println()
		printUsage("아이별", byChild, env.childName)

		byModel, err := log.UsageBy(ctx, store.ByModel)
		if err != nil {
			return err
		}
		fmt.Println()
		printCost(byModel)
		return nil
	},
}

func printUsage(title string, rows []store.Usage, label func(string) string) {
	fmt.Println(theme.Title.Render(title))
	fmt.Println(row(
		cell("", 12), cell("Calls", 6), cell("Fail", 5), cell("Input", 9),
		cell("Output", 9), cell("Total", 9), "Avg ms",
	))
	fmt.Println(rule())

	var total store.Usage
	for _, u := range rows {
		fmt.Println(usageRow(label(u.Key), u, true))
		total.Calls += u.Calls
		total.Failures += u.Failures
		total.InputTokens += u.InputTokens
		total.OutputTokens += u.OutputTokens
	}
	fmt.Println(rule())
	fmt.Println(usageRow("합계", total, false))
}

func usageRow(label string, u store.Usage, latency bool) string {
	cols := []string{
		cell(label, 12),
		cell(strconv.Itoa(u.Calls), 6),
		cell(strconv.Itoa(u.Failures), 5),
		cell(strconv.Itoa(u.InputTokens), 9),
		cell(strconv.Itoa(u.OutputTokens), 9),
		cell(strconv.Itoa(u.Tokens()), 9),
	}
	if latency {
		cols = append(cols, strconv.FormatInt(u.AvgLatencyMs, 10))
	}
	return row(cols...)
}

func printCost(rows []store.Usage) {
	fmt.Println(theme.Title.Render("예상 비용 (USD)"))
	fmt.Println(row(cell("Model", 30), cell("Calls", 6), cell("Input", 9), cell("Output", 9), "Cost"))
	fmt.Println(rule())

	var total float64
	var unpriced []string
	for _, u := range rows {
		cost := "?"
		if price := llm.LookupCost(u.Key); price != nil {
			c := price.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Key)
		}
		fmt.Println(row(
			cell(u.Key, 30),
			cell(strconv.Itoa(u.Calls), 6),
			cell(strconv.Itoa(u.InputTokens), 9),
			cell(strconv.Itoa(u.OutputTokens), 9),
			cost,
		))
	}
	fmt.Println(rule())

	label := "합계"
	if len(unpriced) > 0 {
		label = "합계 (일부)"
	}
	fmt.Println(row(cell(label, 30), cell("", 6), cell("", 9), cell("", 9), formatCost(total)))
	if len(unpriced) > 0 {
		fmt.Printf("\n가격 정보 없음: %s\n", strings.Join(unpriced, ", "))
	}
}

func section(title, body string) {
	fmt.Println()
	fmt.Println(rule())
	fmt.Println(theme.Title.Render(title))
	fmt.Println(rule())
	if body == "" {
		body = "(not captured)"
	}
	fmt.Println(body)
}

// childName shows the profile name for a recorded child id. Ids that no
// longer match a profile are shown as stored.
func (e *appEnv) childName(id string) string {
	if id == "" {
		return "-"
	}
	if c, ok := e.profiles.Get(id); ok {
		return c.Name
	}
	return id
}

func purposeLabel(p string) string {
	switch p {
	case llm.PurposeMission:
		return "과제"
	case llm.PurposeReport:
		return "리포트"
	}
	return p
}

func status(e store.LLMRequestEvent) string {
	switch {
	case !e.Success:
		return "✗"
	case e.StopReason == llm.StopMaxTokens:
		return "✓ 잘림"
	}
	return "✓"
}

// cell pads or cuts s to w terminal columns. Hangul takes two columns.
func cell(s string, w int) string {
	for lipgloss.Width(s) > w {
		r := []rune(s)
		s = string(r[:len(r)-1])
	}
	return s + strings.Repeat(" ", w-lipgloss.Width(s))
}

func row(cols ...string) string {
	return strings.Join(cols, "  ")
}

func rule() string {
	return strings.Repeat("─", ruleWidth)
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls for this purpose (mission, report)")
	llmListCmd.Flags().StringP("child", "c", "", "Only show calls made for this child id")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
