package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/history"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

var missionCmd = &cobra.Command{
	Use:   "mission",
	Short: "Generate today's mission for a child",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		env, err := loadEnv(cmd, "warn")
		if err != nil {
			return err
		}
		defer env.close()

		childID, _ := cmd.Flags().GetString("child")
		child, err := env.child(childID)
		if err != nil {
			return err
		}
		levelStr, _ := cmd.Flags().GetString("level")
		level, err := mission.ParseLevel(levelStr)
		if err != nil {
			return err
		}
		themeName, _ := cmd.Flags().GetString("theme")
		sel := mission.SpecificTheme(themeName)

		now := time.Now()
		provider, llmCfg, err := env.provider(ctx)
		if err != nil && !mission.IsRestDay(now) {
			return err
		}
		gen := mission.NewGenerator(provider, env.log)

		var m *mission.Mission
		err = withSpinner("레오가 과제를 만들고 있어요... 🤔✨", func() error {
			callCtx, cancel := withTimeout(ctx, llmCfg)
			defer cancel()
			var gerr error
			m, gerr = gen.Generate(callCtx, child, level, sel, now)
			return gerr
		})
		if err != nil {
			return err
		}

		raw, _ := cmd.Flags().GetBool("raw")
		if raw {
			fmt.Println(render.Plain(m.Text))
		} else {
			fmt.Println(layout.RenderHeader(mission.Caption(now), layout.DefaultWidth))
			fmt.Println(components.Markdown(m.Text, layout.DefaultWidth))
		}

		return exportMission(ctx, cmd, env, m)
	},
}

func exportMission(ctx context.Context, cmd *cobra.Command, env *appEnv, m *mission.Mission) error {
	if save, _ := cmd.Flags().GetBool("save"); save {
		path, err := env.history.Save(m.ChildID, m.Text, m.Day)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, theme.Done.Render("✅ 저장 완료!"), path)
	}

	if out, _ := cmd.Flags().GetString("txt"); out != "" {
		if out == "-" {
			out = history.DownloadName(m.Day)
		}
		if err := os.WriteFile(out, []byte(render.Plain(m.Text)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		fmt.Fprintln(os.Stderr, "📥", out)
	}

	pdfOut, _ := cmd.Flags().GetString("pdf")
	pngOut, _ := cmd.Flags().GetString("png")
	if pdfOut == "" && pngOut == "" {
		return nil
	}

	r := env.renderer(ctx)
	hdr := render.Header{Title: "오늘의 과제", ChildName: m.ChildName, Date: m.Day}
	if pdfOut != "" {
		if err := writeExport(pdfOut, func() ([]byte, error) { return r.PDF(m.Text, hdr) }); err != nil {
			return err
		}
	}
	if pngOut != "" {
		if err := writeExport(pngOut, func() ([]byte, error) { return r.PNG(m.Text, hdr) }); err != nil {
			return err
		}
	}
	return nil
}

// writeExport renders and writes one export. A render failure is reported
// and skipped so the mission itself is not lost; a write failure is returned.
func writeExport(path string, produce func() ([]byte, error)) error {
	data, err := produce()
	if err != nil {
		var rerr *render.RenderError
		if errors.As(err, &rerr) {
			fmt.Fprintln(os.Stderr, theme.Warn.Render("export skipped:"), err)
			return nil
		}
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Fprintln(os.Stderr, "📄", path)
	return nil
}

func init() {
	missionCmd.Flags().StringP("child", "c", "", "Child profile id")
	missionCmd.Flags().StringP("level", "l", "normal", "Difficulty: easy|normal|hard (or 쉬움|보통|어려움)")
	missionCmd.Flags().StringP("theme", "t", "", "Wrap every task in this theme (default: any preferred theme)")
	missionCmd.Flags().Bool("save", false, "Save to the child's mission history")
	missionCmd.Flags().String("pdf", "", "Write a PDF copy to this path")
	missionCmd.Flags().String("png", "", "Write a PNG share card to this path")
	missionCmd.Flags().String("txt", "", "Write a text copy to this path (\"-\" for the default name)")
	missionCmd.Flags().Bool("raw", false, "Print the text without terminal styling")
}
