package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/render"
	"github.com/mungbws1031/leo-study/internal/ui/components"
	"github.com/mungbws1031/leo-study/internal/ui/layout"
	"github.com/mungbws1031/leo-study/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved missions",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved missions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		entries, err := env.history.List(child.ID)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("아직 저장된 과제가 없어요!")
			return nil
		}
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			fmt.Printf("📄 %-18s  %s\n", e.Label, theme.Subtitle.Render(e.Key))
		}
		return nil
	},
}

var historyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show one saved mission",
	RunE: func(cmd *cobra.Command, args []string) error {
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
		day, err := dateFlag(cmd, "date", "20060102")
		if err != nil {
			return err
		}
		e, err := env.history.Get(child.ID, day)
		if err != nil {
			return err
		}
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Println(render.Plain(e.Raw))
			return nil
		}
		fmt.Println(layout.RenderHeader(child.Name+" · "+e.Label, layout.DefaultWidth))
		fmt.Println(components.Markdown(e.Text, layout.DefaultWidth))
		return nil
	},
}

func init() {
	historyCmd.PersistentFlags().StringP("child", "c", "", "Child profile id")
	historyShowCmd.Flags().String("date", "", "Day in YYYYMMDD (default today)")
	historyShowCmd.Flags().Bool("raw", false, "Print the stored file as is")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
}
