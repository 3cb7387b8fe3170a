package cmd

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"

	"github.com/studyforge/studyforge/internal/db"
)

func migrateCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the sql backend schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(opts, func(database *sqlx.DB, driver string) error {
				if err := db.RunMigrations(database.DB, driver); err != nil {
					return err
				}
				return printVersion(cmd, database, driver)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the latest migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(opts, func(database *sqlx.DB, driver string) error {
				if err := db.MigrateDown(database.DB, driver); err != nil {
					return err
				}
				return printVersion(cmd, database, driver)
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(opts, func(database *sqlx.DB, driver string) error {
				return printVersion(cmd, database, driver)
			})
		},
	})

	return cmd
}

func withDatabase(opts *rootOptions, fn func(database *sqlx.DB, driver string) error) error {
	cfg := opts.config()

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return err
	}
	defer database.Close()

	return fn(database, cfg.DBDriver)
}

func printVersion(cmd *cobra.Command, database *sqlx.DB, driver string) error {
	version, err := db.MigrationVersion(database.DB, driver)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return nil
}
