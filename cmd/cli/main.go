package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MikimikeDevloppAI/CVAL-sub005/cmd/cli/commands"
	"github.com/MikimikeDevloppAI/CVAL-sub005/internal/config"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/clients/solverclient"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/postgres"
	"github.com/MikimikeDevloppAI/CVAL-sub005/pkg/utils/logging"
)

var (
	env string
	// app is allocated up front and populated by initApp, so the command
	// builders can capture the pointer before dependencies exist
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "CVAL rostering CLI - Manage clinic staff planning",
		Long:  `A CLI tool for preparing weekly planning windows, validating assignments, generating rosters through the remote solver, and checking site closure coverage.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
			if app.Database != nil {
				app.Database.Close()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.MigrateCmd(app))
	rootCmd.AddCommand(commands.PrepareWeekCmd(app))
	rootCmd.AddCommand(commands.ValidateAssignmentCmd(app))
	rootCmd.AddCommand(commands.GeneratePlanningCmd(app))
	rootCmd.AddCommand(commands.ClosureReportCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, solver client, and database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully")

	// Initialize solver client
	app.Solver = solverclient.NewClient(app.Cfg.SolverURL, time.Duration(app.Cfg.SolverTimeoutSeconds)*time.Second)
	app.Logger.Debug("Solver client initialized", zap.String("solver_url", app.Cfg.SolverURL))

	// Connect to the database
	app.Logger.Info("Connecting to database")
	app.Database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.Logger.Info("Database connected successfully")

	return nil
}
