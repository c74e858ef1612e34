package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/joblens/joblens-backend/internal/config"
	"github.com/joblens/joblens-backend/internal/infrastructure/container"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize dependency injection container
	app, err := container.NewContainer(cfg)
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			fmt.Printf("Error closing application: %v\n", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start the sweep scheduler when enabled
	if app.Scheduler != nil {
		if err := app.Scheduler.Start(context.Background()); err != nil {
			app.Logger.Error("failed to start sweep scheduler", zap.Error(err))
		}
	}

	// Start server in a goroutine
	go func() {
		if err := app.Server.Start(); err != nil {
			app.Logger.Error("server error", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	app.Logger.Info("server started",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	// Wait for interrupt signal
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Logger.Error("server shutdown error", zap.Error(err))
		os.Exit(1)
	}

	app.Logger.Info("server exited properly")
}
