package repository

import (
	"github.com/dioncoinz/sibw-backend/internal/model"
	"gorm.io/gorm"
)

type BreakInRepository struct {
	db *gorm.DB
}

func NewBreakInRepository(db *gorm.DB) *BreakInRepository {
	return &BreakInRepository{db: db}
}

// ===== Request Methods =====

// CreateWithResources 创建工单头和资源行（单事务，资源行失败则整体回滚）
func (r *BreakInRepository) CreateWithResources(req *model.BreakInRequest, resources []model.BreakInResource) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(req).Error; err != nil {
			return err
		}
		if len(resources) > 0 {
			if err := tx.Create(&resources).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *BreakInRepository) FindByID(id string) (*model.BreakInRequest, error) {
	var req model.BreakInRequest
	err := r.db.Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

// FindAll 查询全部工单，按创建时间倒序
func (r *BreakInRepository) FindAll() ([]model.BreakInRequest, error) {
	var reqs []model.BreakInRequest
	err := r.db.Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// FindByStatus 按状态查询工单，按创建时间倒序
func (r *BreakInRepository) FindByStatus(status model.RequestStatus) ([]model.BreakInRequest, error) {
	var reqs []model.BreakInRequest
	err := r.db.Where("status = ?", status).Order("created_at DESC").Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// FindOutstanding 查询未完结工单（非 COMPLETED / REJECTED）
func (r *BreakInRepository) FindOutstanding() ([]model.BreakInRequest, error) {
	var reqs []model.BreakInRequest
	err := r.db.
		Where("status NOT IN ?", []model.RequestStatus{model.StatusCompleted, model.StatusRejected}).
		Order("created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// UpdateIfStatus 条件更新：仅当当前状态仍为 fromStatus 时生效（compare-and-swap）
// 返回是否有行被更新；false 表示状态已被并发修改或记录不存在
func (r *BreakInRepository) UpdateIfStatus(id string, fromStatus model.RequestStatus, updates map[string]interface{}) (bool, error) {
	result := r.db.Model(&model.BreakInRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// DeleteWithResources 删除工单（单事务，先删资源行再删头，避免孤儿行）
func (r *BreakInRepository) DeleteWithResources(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&model.BreakInResource{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.BreakInRequest{}).Error
	})
}

// ===== Resource Methods =====

func (r *BreakInRepository) FindResourcesByRequestID(requestID string) ([]model.BreakInResource, error) {
	var resources []model.BreakInResource
	err := r.db.Where("request_id = ?", requestID).Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// FindAllResources 查询全部资源行（仪表盘计算计划工时用）
func (r *BreakInRepository) FindAllResources() ([]model.BreakInResource, error) {
	var resources []model.BreakInResource
	err := r.db.Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}
