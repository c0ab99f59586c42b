package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dioncoinz/sibw-backend/internal/api/router"
	"github.com/dioncoinz/sibw-backend/pkg/config"
	"github.com/dioncoinz/sibw-backend/pkg/database"
	"github.com/dioncoinz/sibw-backend/pkg/logger"
)

// StartServer 启动 HTTP 服务器
func StartServer(cfg *config.Config, handlers *Handlers, services *Services) {
	r := router.Setup(
		handlers.Auth,
		handlers.BreakIn,
		services.Session,
		cfg.Server.Mode,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.APIPort)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	printStartupBanner(cfg)

	// Start HTTP server in goroutine
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Infof("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("HTTP server shutdown error: %v", err)
	} else {
		logger.Infof("HTTP server stopped")
	}

	database.Close()
	logger.Infof("Database closed")

	logger.Infof("Shutdown complete")
}

// printStartupBanner 打印启动横幅
func printStartupBanner(cfg *config.Config) {
	logger.Infof("")
	logger.Infof("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Infof("SIBW API Server - Shutdown Break-In Work")
	logger.Infof("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Infof("")
	logger.Infof("Features:")
	logger.Infof("   • Break-in request lifecycle - 4-stage approval workflow")
	logger.Infof("   • Execution tracking - progress and completion")
	logger.Infof("   • Dashboard KPIs - planned vs done hours")
	logger.Infof("   • Session login - HMAC cookie with domain allow-list")
	logger.Infof("")
	logger.Infof("Listening on :%d", cfg.Server.APIPort)
	logger.Infof("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	logger.Infof("")
}
