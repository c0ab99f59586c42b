package breakin

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dioncoinz/sibw-backend/internal/model"
	"github.com/dioncoinz/sibw-backend/internal/repository"
	"github.com/dioncoinz/sibw-backend/pkg/logger"
	"github.com/dioncoinz/sibw-backend/pkg/metrics"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service 破入工单服务：创建、四级审批、执行跟踪、删除、仪表盘
type Service struct {
	repo *repository.BreakInRepository
}

func NewService(repo *repository.BreakInRepository) *Service {
	return &Service{repo: repo}
}

// ResourceInput 资源行输入
type ResourceInput struct {
	ResourceType string  `json:"resource_type"`
	Hours        float64 `json:"hours"`
}

// CreateInput 创建工单输入
type CreateInput struct {
	WONumber       string          `json:"wo_number"`
	WOTitle        string          `json:"wo_title"`
	Reason         string          `json:"reason"`
	Consequence    string          `json:"consequence"`
	Area           string          `json:"area"`
	Priority       string          `json:"priority"`
	RequestorName  string          `json:"requestor_name"`
	RequestorEmail string          `json:"requestor_email"`
	Resources      []ResourceInput `json:"resources"`
}

// Create 创建工单：头和资源行在同一事务中写入
func (s *Service) Create(input *CreateInput) (*model.BreakInRequest, error) {
	if input.WONumber == "" || input.Reason == "" || input.Consequence == "" {
		return nil, fmt.Errorf("%w: missing required fields (wo_number, reason, consequence)", ErrValidation)
	}

	req := &model.BreakInRequest{
		ID:             uuid.New().String(),
		WONumber:       input.WONumber,
		WOTitle:        input.WOTitle,
		Reason:         input.Reason,
		Consequence:    input.Consequence,
		Area:           input.Area,
		Priority:       input.Priority,
		Status:         model.StatusSubmitted,
		RequestorName:  input.RequestorName,
		RequestorEmail: input.RequestorEmail,
	}
	if req.Priority == "" {
		req.Priority = "P2"
	}
	if req.RequestorName == "" {
		req.RequestorName = "Unknown"
	}
	if req.RequestorEmail == "" {
		req.RequestorEmail = "unknown@unknown"
	}

	// 清洗资源行：去掉空工种和非正数工时
	var resources []model.BreakInResource
	for _, line := range input.Resources {
		resourceType := strings.TrimSpace(line.ResourceType)
		if resourceType == "" {
			continue
		}
		if math.IsNaN(line.Hours) || math.IsInf(line.Hours, 0) || line.Hours <= 0 {
			continue
		}
		resources = append(resources, model.BreakInResource{
			ID:           uuid.New().String(),
			RequestID:    req.ID,
			ResourceType: resourceType,
			Hours:        line.Hours,
		})
	}

	if err := s.repo.CreateWithResources(req, resources); err != nil {
		return nil, err
	}

	metrics.BreakInRequestsCreatedTotal.Inc()
	logger.Infof("Break-in request created: id=%s wo=%s resources=%d", req.ID, req.WONumber, len(resources))
	return req, nil
}

// Get 查询工单详情（含资源行和派生工时）
func (s *Service) Get(id string) (*model.RequestDetail, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	resources, err := s.repo.FindResourcesByRequestID(id)
	if err != nil {
		return nil, err
	}

	planned := PlannedHours(resources)
	return &model.RequestDetail{
		BreakInRequest: *req,
		Resources:      resources,
		PlannedHours:   planned,
		DoneHours:      DoneHours(req.Status, req.ProgressPercent, planned),
	}, nil
}

// List 查询工单列表。filter 为空或 ALL 返回全部，
// OUTSTANDING 返回未完结工单，其余按状态精确匹配
func (s *Service) List(filter string) ([]model.RequestSummary, error) {
	var reqs []model.BreakInRequest
	var err error

	switch strings.ToUpper(strings.TrimSpace(filter)) {
	case "", "ALL":
		reqs, err = s.repo.FindAll()
	case "OUTSTANDING":
		reqs, err = s.repo.FindOutstanding()
	default:
		reqs, err = s.repo.FindByStatus(model.RequestStatus(strings.ToUpper(strings.TrimSpace(filter))))
	}
	if err != nil {
		return nil, err
	}

	resources, err := s.repo.FindAllResources()
	if err != nil {
		return nil, err
	}

	plannedByID := make(map[string]float64, len(reqs))
	for _, r := range resources {
		plannedByID[r.RequestID] += r.Hours
	}

	summaries := make([]model.RequestSummary, len(reqs))
	for i, req := range reqs {
		planned := Round1(plannedByID[req.ID])
		summaries[i] = model.RequestSummary{
			BreakInRequest: req,
			PlannedHours:   planned,
			DoneHours:      DoneHours(req.Status, req.ProgressPercent, planned),
		}
	}
	return summaries, nil
}

// Dashboard 仪表盘汇总指标
func (s *Service) Dashboard() (*model.DashboardStats, error) {
	reqs, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resources, err := s.repo.FindAllResources()
	if err != nil {
		return nil, err
	}
	return BuildStats(reqs, resources), nil
}

// Decide 审批决定：重读当前状态、按流转表校验后条件更新
func (s *Service) Decide(id string, stage model.ReviewStage, decision model.Decision, workgroup, comment string) (*model.BreakInRequest, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	next, err := DecisionNext(stage, req.Status, decision)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			metrics.WorkflowRejectedTransitionsTotal.WithLabelValues(string(stage)+"-decision", string(req.Status)).Inc()
		}
		return nil, err
	}

	updates := map[string]interface{}{"status": next}

	// 协调员批准必须指定执行班组
	wg := strings.TrimSpace(workgroup)
	if stage == model.StageCoordinator {
		if decision == model.DecisionApprove && wg == "" {
			return nil, fmt.Errorf("%w: workgroup is required to approve", ErrValidation)
		}
		if wg != "" {
			updates["workgroup"] = wg
		}
	}

	if comment != "" {
		updates[commentColumn(stage)] = comment
	}

	ok, err := s.repo.UpdateIfStatus(id, req.Status, updates)
	if err != nil {
		return nil, err
	}
	if !ok {
		// 读到写之间状态被并发修改
		return nil, fmt.Errorf("%w: request was modified concurrently, retry", ErrConflict)
	}

	metrics.WorkflowTransitionsTotal.WithLabelValues(string(stage)+"-decision", string(next)).Inc()
	logger.Infof("Break-in request %s: %s %s → %s", id, stage, decision, next)

	return s.findRequest(id)
}

// Start 开工：保留已有进度，未设置则保持 0
func (s *Service) Start(id string) (*model.BreakInRequest, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if err := CanStart(req.Status); err != nil {
		metrics.WorkflowRejectedTransitionsTotal.WithLabelValues("start", string(req.Status)).Inc()
		return nil, err
	}

	ok, err := s.repo.UpdateIfStatus(id, req.Status, map[string]interface{}{
		"status":           model.StatusInProgress,
		"progress_percent": req.ProgressPercent,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request was modified concurrently, retry", ErrConflict)
	}

	metrics.WorkflowTransitionsTotal.WithLabelValues("start", string(model.StatusInProgress)).Inc()
	return s.findRequest(id)
}

// UpdateProgress 更新进度：取整钳制到 [0,100]，达到 100 自动转为 COMPLETED
func (s *Service) UpdateProgress(id string, value float64) (*model.BreakInRequest, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if err := CanUpdateProgress(req.Status); err != nil {
		metrics.WorkflowRejectedTransitionsTotal.WithLabelValues("progress", string(req.Status)).Inc()
		return nil, err
	}

	progress := ClampPct(value)
	next := ProgressNext(progress)

	ok, err := s.repo.UpdateIfStatus(id, req.Status, map[string]interface{}{
		"status":           next,
		"progress_percent": progress,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request was modified concurrently, retry", ErrConflict)
	}

	metrics.WorkflowTransitionsTotal.WithLabelValues("progress", string(next)).Inc()
	return s.findRequest(id)
}

// Complete 完工：进度强制置为 100
func (s *Service) Complete(id string) (*model.BreakInRequest, error) {
	req, err := s.findRequest(id)
	if err != nil {
		return nil, err
	}

	if err := CanComplete(req.Status); err != nil {
		metrics.WorkflowRejectedTransitionsTotal.WithLabelValues("complete", string(req.Status)).Inc()
		return nil, err
	}

	ok, err := s.repo.UpdateIfStatus(id, req.Status, map[string]interface{}{
		"status":           model.StatusCompleted,
		"progress_percent": 100,
	})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: request was modified concurrently, retry", ErrConflict)
	}

	metrics.WorkflowTransitionsTotal.WithLabelValues("complete", string(model.StatusCompleted)).Inc()
	return s.findRequest(id)
}

// Delete 删除工单及其资源行
func (s *Service) Delete(id string) error {
	if _, err := s.findRequest(id); err != nil {
		return err
	}
	if err := s.repo.DeleteWithResources(id); err != nil {
		return err
	}
	metrics.BreakInRequestsDeletedTotal.Inc()
	logger.Infof("Break-in request deleted: id=%s", id)
	return nil
}

func (s *Service) findRequest(id string) (*model.BreakInRequest, error) {
	req, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, err
	}
	return req, nil
}

// commentColumn 各审批环节对应的意见列
func commentColumn(stage model.ReviewStage) string {
	switch stage {
	case model.StagePlanner:
		return "planner_comment"
	case model.StageCoordinator:
		return "coordinator_comment"
	case model.StageSuperintendent:
		return "superintendent_comment"
	default:
		return "manager_comment"
	}
}
