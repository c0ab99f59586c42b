package app

import (
	handlerauth "github.com/dioncoinz/sibw-backend/internal/api/handler/auth"
	handlerbreakin "github.com/dioncoinz/sibw-backend/internal/api/handler/breakin"
)

// Handlers 包含所有 Handler 实例
type Handlers struct {
	Auth    *handlerauth.AuthHandler
	BreakIn *handlerbreakin.BreakInHandler
}

// InitializeHandlers 初始化所有 Handler
func InitializeHandlers(services *Services) *Handlers {
	return &Handlers{
		Auth:    handlerauth.NewAuthHandler(services.Session),
		BreakIn: handlerbreakin.NewBreakInHandler(services.BreakIn),
	}
}
