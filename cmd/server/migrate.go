package main

import (
	"event-voting/internal/database"
	"event-voting/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(migrateCmd)
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create database tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(cmd.Context(), pool); err != nil {
			return err
		}

		logger.WithComponent("migrate").Info("Schema is up to date")
		return nil
	},
}
