package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deskline-inc/deskline/internal/infrastructure/config"
	"github.com/deskline-inc/deskline/internal/infrastructure/database"
	"github.com/deskline-inc/deskline/internal/infrastructure/migration"
	"github.com/deskline-inc/deskline/internal/shared/constants"
	"github.com/deskline-inc/deskline/internal/shared/logger"
)

var (
	env   string
	name  string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}
	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new SQL migration for the configured driver",
		RunE:  runCreate,
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

// initEnv loads configuration, sets up logging and returns the goose
// strategy for the configured driver. Connecting is left to the caller.
func initEnv() (*config.Config, *migration.GooseStrategy, logger.Interface, error) {
	cfg, err := config.LoadForMigrations(env)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	strategy, err := migration.NewGooseStrategy(cfg.Database.Driver)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, strategy, log, nil
}

func connect(cfg *config.Config, log logger.Interface) (func(), error) {
	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	closeDB, err := connect(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	log.Infow("running up migrations", "environment", env, "driver", cfg.Database.Driver)
	if err := migration.NewManagerWithStrategy(strategy).Migrate(database.Get()); err != nil {
		return err
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	closeDB, err := connect(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	log.Infow("running down migrations", "environment", env, "steps", steps)
	if err := strategy.MigrateDown(database.Get(), steps); err != nil {
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, strategy, log, err := initEnv()
	if err != nil {
		return err
	}
	closeDB, err := connect(cfg, log)
	if err != nil {
		return err
	}
	defer closeDB()

	version, err := strategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Driver:          %s\n", cfg.Database.Driver)
	fmt.Fprintf(out, "  Current Version: %d\n", version)

	if err := strategy.Status(database.Get()); err != nil {
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, strategy, log, err := initEnv()
	if err != nil {
		return err
	}

	log.Infow("creating new migration", "name", name, "driver", cfg.Database.Driver)
	if err := strategy.Create(name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created\n", name)
	return nil
}
