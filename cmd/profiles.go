package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/phonics"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List child profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd, "warn")
		if err != nil {
			return err
		}
		defer env.close()

		fmt.Printf("%-12s  %-8s  %-12s  %-10s  %-4s  %s\n", "ID", "Name", "Grade", "Category", "Attn", "Themes")
		fmt.Println(strings.Repeat("─", 72))
		for _, c := range env.profiles.All() {
			attn := ""
			if c.AttentionSupport {
				attn = "✓"
			}
			fmt.Printf("%-12s  %-8s  %-12s  %-10s  %-4s  %s\n",
				c.ID, c.Name, c.Grade, c.Category, attn, strings.Join(c.Themes, ", "))
		}
		return nil
	},
}

var phonicsCmd = &cobra.Command{
	Use:   "phonics",
	Short: "Show the phonics pattern for a week",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateFlag(cmd, "date", "2006-01-02")
		if err != nil {
			return err
		}
		_, week := day.ISOWeek()
		p := phonics.ForDate(day)

		fmt.Println(theme.Title.Render(fmt.Sprintf("ISO week %d · %s", week, p.Name)))
		fmt.Printf("Words: %s\n", p.WordList())
		fmt.Printf("Hint:  %s\n", p.Hint)

		if all, _ := cmd.Flags().GetBool("all"); all {
			fmt.Println()
			for i, q := range phonics.All() {
				marker := "  "
				if q.Name == p.Name {
					marker = "▸ "
				}
				fmt.Printf("%s%d. %-14s %s\n", marker, i, q.Name, q.WordList())
			}
		}
		return nil
	},
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's day themes and saved missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd, "warn")
		if err != nil {
			return err
		}
		defer env.close()

		now := time.Now()
		monday := now.AddDate(0, 0, -((int(now.Weekday()) + 6) % 7))
		children := env.profiles.All()

		fmt.Println(theme.Subtitle.Render(mission.Caption(now)))
		fmt.Println()
		fmt.Printf("   %-4s  %-22s", "", "")
		for _, c := range children {
			fmt.Printf("  %-6s", c.Name)
		}
		fmt.Println()

		saved := make([]int, len(children))
		for i := 0; i < 7; i++ {
			d := monday.AddDate(0, 0, i)
			marker := "  "
			if sameDay(d, now) {
				marker = "▸ "
			}
			fmt.Printf("%s %-4s  %-22s", marker, mission.WeekdayName(d)+"요일", mission.DayTheme(d))
			for j, c := range children {
				mark := "·"
				if _, err := env.history.Get(c.ID, d); err == nil {
					mark = theme.Done.Render("✓")
					saved[j]++
				}
				fmt.Printf("  %-6s", mark)
			}
			fmt.Println()
		}

		fmt.Println()
		for j, c := range children {
			// Six mission days a week; Sunday is rest.
			fmt.Println(components.NewProgressBar(c.Name, saved[j], 6, 48).View())
		}
		return nil
	},
}

func sameDay(a, b time.Time) bool {
	return a.Format("20060102") == b.Format("20060102")
}

// dateFlag parses a date flag in layout, defaulting to today.
func dateFlag(cmd *cobra.Command, name, layout string) (time.Time, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return time.Now(), nil
	}
	d, err := time.ParseInLocation(layout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q: want %s", name, s, layout)
	}
	return d, nil
}

func init() {
	phonicsCmd.Flags().String("date", "", "Date in YYYY-MM-DD (default today)")
	phonicsCmd.Flags().Bool("all", false, "Also print the full rotation")
}
