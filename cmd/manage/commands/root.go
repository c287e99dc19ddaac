package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"catalog-review-backend/internal/config"
	"catalog-review-backend/pkg/logger"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "manage",
	Short: "Administrative commands for the catalog review service",
	Long: `Administrative commands for the catalog review service.

Configuration is read from the environment (and .env when present),
the same way the API and worker read it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger.Init(cfg.App.Environment, cfg.App.LogLevel)
		appConfig = cfg
		return nil
	},
}

var appConfig *config.Config

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
