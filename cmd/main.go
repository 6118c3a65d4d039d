package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config2 "task-manager-service/pkg/config"

	_ "task-manager-service/docs"
	"task-manager-service/internal/handler"
	"task-manager-service/internal/identity"
	"task-manager-service/internal/repository"
	"task-manager-service/internal/router"
	"task-manager-service/internal/service"

	"github.com/go-playground/validator/v10"
)

// @title Task Manager Service API
// @version 1.0
// @description Task, team and project management over a locally persisted store
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config2.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Open the slot database
	db, err := config2.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	slog.Info("successfully opened slot database", "path", cfg.DBPath)

	// Identity provider
	var identities identity.Provider
	if cfg.IdentityFile != "" {
		provider, err := identity.LoadFromFile(cfg.IdentityFile)
		if err != nil {
			slog.Error("failed to load identity file", "error", err)
			os.Exit(1)
		}
		identities = provider
	} else {
		identities = identity.NewStaticProvider(identity.DefaultUsers())
	}

	// Initialize repositories
	store := repository.NewSlotStore(db)
	taskRepo := repository.NewTaskRepository(store)
	teamRepo := repository.NewTeamRepository(store)
	authRepo := repository.NewAuthRepository(store)
	paymentRepo := repository.NewPaymentRepository(store)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(authRepo, identities, cfg.JWTSecret, cfg.SessionTTL)
	paymentService := service.NewPaymentService(paymentRepo, cfg.SubscriptionTTL, cfg.PaymentDelay)
	taskService := service.NewTaskService(taskRepo, paymentService, identities, cfg.PremiumGate)
	teamService := service.NewTeamService(teamRepo, paymentService, cfg.PremiumGate)
	analyticsService := service.NewAnalyticsService(taskRepo, teamRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	taskHandler := handler.NewTaskHandler(taskService, validate)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		authHandler,
		paymentHandler,
		taskHandler,
		teamHandler,
		analyticsHandler,
		healthHandler,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
