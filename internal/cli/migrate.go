package cli

import (
	"fmt"

	"parish-match/internal/database/migration"
	dbpostgres "parish-match/internal/database/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrations(cmd, func(r migration.Runner) error { return r.Up() })
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the last migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		steps, err := cmd.Flags().GetInt("steps")
		if err != nil {
			return err
		}
		return runMigrations(cmd, func(r migration.Runner) error { return r.Down(steps) })
	},
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the applied schema version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runMigrations(cmd, func(r migration.Runner) error {
			st, err := r.Version()
			if err != nil {
				return err
			}
			if !st.Applied {
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", st.Version, st.Dirty)
			return nil
		})
	},
}

func init() {
	migrateDownCmd.Flags().Int("steps", 1, "number of migrations to roll back")
	migrateCmd.AddCommand(migrateDownCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

func runMigrations(cmd *cobra.Command, fn func(migration.Runner) error) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	r := migration.Runner{
		URL:    dbpostgres.URL(cfg.Database),
		Logger: log.Named("migrate"),
	}
	if err := fn(r); err != nil {
		log.Error("migration failed", zap.String("command", cmd.CommandPath()), zap.Error(err))
		return err
	}
	log.Info("migration finished", zap.String("command", cmd.CommandPath()))
	return nil
}
