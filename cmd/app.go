/*
Package cmd assembles and runs the application: configuration, logging,
persistence, services, router and graceful shutdown.
*/
package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"farmshop/api"
	"farmshop/config"
	"farmshop/infrastructure/messaging/rabbitmq"
	"farmshop/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App Assembled application.
type App struct {
	config    *config.Config
	router    *api.Router
	server    *http.Server
	db        *gorm.DB
	publisher *rabbitmq.Publisher
}

// Run starts the HTTP server and blocks until SIGINT/SIGTERM, then
// shuts down within the configured timeout.
func (a *App) Run() {
	go func() {
		logger.Info("Server starting", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Info("Server stopped")
	logger.Sync()
}

// GetEngine returns the gin engine, for tests.
func (a *App) GetEngine() http.Handler {
	return a.router.GetEngine()
}
