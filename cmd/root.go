package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "leo",
	Short: "Daily learning missions for kids",
	Long: "Leo is a learning companion that writes each child's daily homework mission, " +
		"keeps a per-child history, exports PDF and image copies, and summarizes the week for parents.",
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data-dir", "", "Data directory (overrides LEO_DATA_DIR)")
	rootCmd.PersistentFlags().String("profiles", "", "Child profile document, YAML or JSON (overrides LEO_PROFILES)")
	rootCmd.PersistentFlags().String("db", "", "Path to the SQLite audit database (overrides LEO_DB)")
	rootCmd.PersistentFlags().CountP("verbose", "v", "Log more (-v info, -vv debug)")

	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(phonicsCmd)
	rootCmd.AddCommand(weekCmd)
	rootCmd.AddCommand(missionCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
