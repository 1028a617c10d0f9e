package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// MigrateCmd creates the migrate command
func MigrateCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Info("Running database migrations")

			if err := app.Database.RunMigrations(app.Ctx); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("\n✅ Migrations applied\n\n")
			return nil
		},
	}
}
