package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"adrecon/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the PostgreSQL schema migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		logger.Info("migrations applied successfully")
		return nil
	},
}
