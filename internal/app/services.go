package app

import (
	authservice "github.com/dioncoinz/sibw-backend/internal/service/auth"
	breakinservice "github.com/dioncoinz/sibw-backend/internal/service/breakin"
	"github.com/dioncoinz/sibw-backend/pkg/config"
)

// Services 包含所有 Service 实例
type Services struct {
	BreakIn *breakinservice.Service
	Session *authservice.SessionService
}

// InitializeServices 初始化所有 Service
func InitializeServices(repos *Repositories, cfg *config.Config) *Services {
	return &Services{
		BreakIn: breakinservice.NewService(repos.BreakIn),
		Session: authservice.NewSessionService(&cfg.Security),
	}
}
