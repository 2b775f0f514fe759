package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/gruntled/assessment-backend/internal/api"
	"github.com/gruntled/assessment-backend/internal/metrics"
	"github.com/gruntled/assessment-backend/internal/session"
	"github.com/gruntled/assessment-backend/internal/storage/jsonstore"
	"github.com/gruntled/assessment-backend/pkg/config"
	appLogger "github.com/gruntled/assessment-backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	err = appLogger.Init(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.OutputPath)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Leadership Assessment API Server")

	metrics.Init()

	store := jsonstore.New(cfg.Storage.DataDir, appLogger.Log)

	sessions := session.NewManager(store, session.Config{
		IdleTTL: time.Duration(cfg.Session.IdleTTLMinutes) * time.Minute,
		Logger:  appLogger.Log,
	})
	defer sessions.Close()

	app := api.New(cfg, store, sessions)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	appLogger.Info("Server starting", zap.String("address", addr))

	go func() {
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Server shutting down gracefully...")
	app.Shutdown()
	appLogger.Info("Server stopped")
}
