package app

import (
	"log"
	"os"

	"github.com/dioncoinz/sibw-backend/pkg/config"
	"github.com/dioncoinz/sibw-backend/pkg/database"
	"github.com/dioncoinz/sibw-backend/pkg/logger"
)

// Bootstrap 初始化基础设施（logger, database）
func Bootstrap(cfgPath string) (*config.Config, error) {
	// 支持通过环境变量指定配置文件路径
	if cfgPath == "" {
		cfgPath = os.Getenv("SIBW_CONFIG")
		if cfgPath == "" {
			cfgPath = "config/config.yaml"
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	// Initialize logger
	if err := logger.Init(&cfg.Logging); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize database
	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	logger.Infof("Database initialized successfully")

	if cfg.Security.CookieSecret == "" {
		logger.Warnf("AUTH_COOKIE_SECRET is not set - login requests will fail until it is configured")
	}

	return cfg, nil
}
