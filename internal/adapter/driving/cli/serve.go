package cli

import (
	"errors"
	"os"

	"github.com/diillson/sme-health-dashboard-go/internal/shared/types"
	"github.com/spf13/cobra"
)

const defaultAddr = ":8080"

func (app *CLIApp) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the interactive web dashboard",
		Args:  cobra.NoArgs,
		RunE:  app.runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: $SME_ADDR or :8080)")
	cmd.Flags().String("log-level", "", "Server log level (default: $LOG_LEVEL or info)")

	return cmd
}

// parseServeArgs resolve as opções do servidor: flag, depois arquivo de
// configuração, depois variável de ambiente.
func (app *CLIApp) parseServeArgs(cmd *cobra.Command) (*types.ServeArgs, error) {
	addr, _ := cmd.Flags().GetString("addr")
	logLevel, _ := cmd.Flags().GetString("log-level")
	configFile, _ := cmd.Flags().GetString("config-file")

	if configFile != "" {
		cfg, err := app.dashboardUseCase.LoadConfig(configFile)
		if err != nil {
			return nil, err
		}
		if addr == "" {
			addr = cfg.Server.Addr
		}
		if logLevel == "" {
			logLevel = cfg.Server.LogLevel
		}
	}

	if addr == "" {
		addr = os.Getenv("SME_ADDR")
	}
	if addr == "" {
		addr = defaultAddr
	}
	if logLevel == "" {
		logLevel = os.Getenv("LOG_LEVEL")
	}

	return &types.ServeArgs{Addr: addr, LogLevel: logLevel}, nil
}

func (app *CLIApp) runServe(cmd *cobra.Command, _ []string) error {
	if app.serve == nil {
		return errors.New("web dashboard is not configured")
	}

	args, err := app.parseServeArgs(cmd)
	if err != nil {
		return err
	}

	return app.serve(cmd.Context(), args)
}
