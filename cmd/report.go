package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/report"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the weekly parent report from saved missions",
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

		// No provider is needed when there is nothing to summarize.
		entries, err := env.history.Recent(child.ID, report.Window)
		if err != nil {
			return err
		}
		provider, llmCfg, err := env.provider(ctx)
		if err != nil && len(entries) > 0 {
			return err
		}

		gen := report.NewGenerator(env.history, provider, env.log)
		now := time.Now()
		var r *report.Report
		err = withSpinner("분석 중... 📊", func() error {
			callCtx, cancel := withTimeout(ctx, llmCfg)
			defer cancel()
			var gerr error
			r, gerr = gen.Build(callCtx, child, now)
			return gerr
		})
		if err != nil {
			return err
		}

		fmt.Println(layout.RenderHeader("📊 "+child.Name+"의 주간 리포트", layout.DefaultWidth))
		fmt.Println(components.Markdown(r.Text, layout.DefaultWidth))

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if out == "-" {
				out = report.DownloadName(now)
			}
			if err := os.WriteFile(out, []byte(r.Text), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintln(os.Stderr, "📥", out)
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("child", "c", "", "Child profile id")
	reportCmd.Flags().StringP("out", "o", "", "Also write the report to this path (\"-\" for the default name)")
}
