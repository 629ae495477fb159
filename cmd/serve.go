package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/mungbws1031/leo-study/internal/mission"
	"github.com/mungbws1031/leo-study/internal/report"
	"github.com/mungbws1031/leo-study/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mission and report API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := loadEnv(cmd, "info")
		if err != nil {
			return err
		}
		defer env.close()

		if host, _ := cmd.Flags().GetString("host"); host != "" {
			env.cfg.Server.Host = host
		}
		if port, _ := cmd.Flags().GetInt("port"); port != 0 {
			env.cfg.Server.Port = port
		}
		if err := env.cfg.Validate(); err != nil {
			return err
		}
		if env.cfg.Log.Mode != "dev" {
			gin.SetMode(gin.ReleaseMode)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		provider, llmCfg, err := env.provider(ctx)
		if err != nil {
			return err
		}

		deps := server.Deps{
			Profiles: env.profiles,
			Missions: mission.NewGenerator(provider, env.log),
			History:  env.history,
			Reports:  report.NewGenerator(env.history, provider, env.log),
			Renderer: env.renderer(ctx),
			Log:      env.log,
			Timeout:  llmCfg.Timeout,

			CORSOrigins: env.cfg.Server.CORSOrigins,
		}
		return server.New(env.cfg.Server.Addr(), deps).Run(ctx)
	},
}

func init() {
	serveCmd.Flags().String("host", "", "Listen host (overrides LEO_SERVER_HOST)")
	serveCmd.Flags().Int("port", 0, "Listen port (overrides LEO_SERVER_PORT)")
}

