package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sportbook/internal/auth"
	"sportbook/internal/config"
	"sportbook/internal/db"
	"sportbook/internal/email"
	"sportbook/internal/logger"
	"sportbook/internal/server"
	"sportbook/internal/user"

	"github.com/redis/go-redis/v9"
)

// @title SportBook API
// @version 1.0
// @description API for booking sports venue slots.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init()
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.LogLevel)
	logger.Info("Starting SportBook application")

	loc, err := cfg.Location()
	if err != nil {
		logger.Fatalf("Invalid timezone: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, cfg.MigrationsPath); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	tokens, err := auth.NewTokenManager(cfg.JWTSecret)
	if err != nil {
		logger.Fatalf("Failed to init tokens: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	users := user.NewService(user.NewRepository(database), tokens)
	if err := users.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		logger.Fatalf("Failed to bootstrap admin: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	emailService := email.New(rdb, email.Config{
		From:     cfg.EmailFrom,
		FromName: cfg.EmailFromName,
		SMTPHost: cfg.SMTPHost,
		SMTPPort: cfg.SMTPPort,
		SMTPUser: cfg.SMTPUser,
		SMTPPass: cfg.SMTPPass,
	})
	defer emailService.Close()

	if err := emailService.Ping(ctx); err != nil {
		// bookings still work; notices are dropped until redis is back
		logger.Warn("Redis unreachable, email notifications degraded", "addr", cfg.RedisAddr, "error", err)
	}
	go emailService.Start(ctx)
	logger.Info("Email worker started")

	srv := server.New(database, cfg, emailService, tokens, loc)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
