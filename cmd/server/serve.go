package main

import (
	"context"
	"errors"
	"event-voting/internal/cache"
	"event-voting/internal/database"
	"event-voting/internal/handler"
	"event-voting/internal/identity"
	"event-voting/internal/repository"
	"event-voting/internal/service"
	"event-voting/internal/storage"
	"event-voting/pkg/logger"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var skipMigrate bool

func init() {
	serveCmd.Flags().BoolVar(&skipMigrate, "skip-migrate", false, "do not create missing tables on startup")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the voting API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
		defer stop()
		return serve(ctx)
	},
}

func serve(ctx context.Context) error {
	log := logger.WithComponent("server")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.Server.GinMode)

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if !skipMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer rdb.Close()

	objectStorage, err := storage.NewMinioStorage(ctx, &cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to initialize object storage: %w", err)
	}

	issuer := identity.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTL)

	// repositories
	ticketRepository := repository.NewTicketRepository(pool)
	voteRepository := repository.NewVoteRepository(pool)
	categoryRepository := repository.NewCategoryRepository(pool)
	candidateRepository := repository.NewCandidateRepository(pool)
	settingsRepository := repository.NewSettingsRepository(pool)
	adminRepository := repository.NewAdminRepository(pool)
	dashboardRepository := repository.NewDashboardRepository(pool)

	// services
	settingsService := service.NewSettingsService(
		settingsRepository,
		cache.NewRedisVotingFlagCache(rdb, cfg.Redis.SettingsTTL),
		objectStorage,
	)
	ticketService := service.NewTicketService(pool, ticketRepository, voteRepository, issuer)
	voteService := service.NewVoteService(voteRepository, ticketRepository, candidateRepository, categoryRepository, settingsService)
	categoryService := service.NewCategoryService(pool, categoryRepository, candidateRepository, objectStorage)
	candidateService := service.NewCandidateService(candidateRepository, categoryRepository, objectStorage)
	dashboardService := service.NewDashboardService(dashboardRepository, objectStorage)
	adminService := service.NewAdminService(adminRepository, issuer)

	router := handler.NewRouter(
		handler.RouterConfig{AllowedOrigin: cfg.Server.AllowedOrigin},
		issuer,
		handler.NewTicketHandler(ticketService),
		handler.NewVoteHandler(voteService),
		handler.NewCategoryHandler(categoryService),
		handler.NewCandidateHandler(candidateService),
		handler.NewSettingsHandler(settingsService),
		handler.NewDashboardHandler(dashboardService),
		handler.NewAuthHandler(adminService),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("Server gracefully stopped")
	return nil
}
