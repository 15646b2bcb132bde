package main

import (
	"event-voting/internal/database"
	"event-voting/internal/identity"
	"event-voting/internal/repository"
	"event-voting/internal/service"
	"event-voting/pkg/logger"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	adminUsername string
	adminPassword string
)

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "admin username")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "admin password (defaults to $ADMIN_PASSWORD)")
	rootCmd.AddCommand(createAdminCmd)
}

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an admin account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		password := adminPassword
		if password == "" {
			password = os.Getenv("ADMIN_PASSWORD")
		}

		pool, err := database.InitDatabase(&cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.Migrate(cmd.Context(), pool); err != nil {
			return err
		}

		issuer := identity.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTL)
		adminService := service.NewAdminService(repository.NewAdminRepository(pool), issuer)

		admin, err := adminService.CreateAdmin(cmd.Context(), adminUsername, password)
		if err != nil {
			return err
		}

		logger.WithComponent("admin").Info("Admin created",
			zap.String("id", admin.ID.String()), zap.String("username", admin.Username))
		return nil
	},
}
