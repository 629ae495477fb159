package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/app"
	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/report"
	"github.com/mungbws1031/leo-study/internal/screens"
)

var tuiCmd = &cobra.Command{
	Use:   "app",
	Short: "Open the interactive app",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if !interactive() {
			return errors.New("the app needs a terminal; use the mission, history and report commands instead")
		}

		// Logs go to stderr, which shares the screen; keep them quiet.
		env, err := loadEnv(cmd, "error")
		if err != nil {
			return err
		}
		defer env.close()

		provider, llmCfg, err := env.provider(ctx)
		if err != nil {
			return err
		}

		return app.Run(screens.Services{
			Profiles: env.profiles,
			Missions: mission.NewGenerator(provider, env.log),
			History:  env.history,
			Reports:  report.NewGenerator(env.history, provider, env.log),
			Log:      env.log,
			Timeout:  llmCfg.Timeout,
		})
	},
}
