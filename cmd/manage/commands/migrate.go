package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"catalog-review-backend/internal/infrastructure/database"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Run the embedded schema migrations.

Subcommands:
  up       - Apply pending migrations
  down     - Roll back the last migration
  version  - Show the current schema version`,
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return m.Up()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			return m.Down()
		})
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the current schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withMigrator(func(m *database.Migrator) error {
			version, dirty, err := m.Version()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version: %d dirty: %t\n", version, dirty)
			return nil
		})
	},
}

func withMigrator(fn func(*database.Migrator) error) error {
	m, err := database.NewMigrator(appConfig.Database.DSN())
	if err != nil {
		return err
	}
	defer m.Close()
	return fn(m)
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}
