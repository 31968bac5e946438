package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fibCalc/internal/app"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  "Starts the HTTP API. Configuration comes from FIBONACCI_* environment variables and the .env file.",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.LoadCfg()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg).Run()
}
