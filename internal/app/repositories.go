package app

import (
	"github.com/dioncoinz/sibw-backend/internal/repository"
	"github.com/dioncoinz/sibw-backend/pkg/database"
)

// Repositories 包含所有 Repository 实例
type Repositories struct {
	BreakIn *repository.BreakInRepository
}

// InitializeRepositories 初始化所有 Repository
func InitializeRepositories() *Repositories {
	return &Repositories{
		BreakIn: repository.NewBreakInRepository(database.DB),
	}
}
