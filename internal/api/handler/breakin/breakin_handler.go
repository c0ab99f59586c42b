package breakin

import (
	"errors"
	"net/http"

	"github.com/dioncoinz/sibw-backend/internal/model"
	breakinservice "github.com/dioncoinz/sibw-backend/internal/service/breakin"
	"github.com/gin-gonic/gin"
)

// BreakInHandler 破入工单处理器
type BreakInHandler struct {
	service *breakinservice.Service
}

// NewBreakInHandler 创建破入工单处理器
func NewBreakInHandler(service *breakinservice.Service) *BreakInHandler {
	return &BreakInHandler{service: service}
}

// respondServiceError 服务层错误映射为 HTTP 状态码
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, breakinservice.ErrValidation):
		model.HandleError(c, http.StatusBadRequest, err)
	case errors.Is(err, breakinservice.ErrNotFound):
		model.HandleError(c, http.StatusNotFound, err)
	case errors.Is(err, breakinservice.ErrConflict):
		model.HandleError(c, http.StatusConflict, err)
	default:
		model.HandleError(c, http.StatusInternalServerError, err, "store error")
	}
}

// Create 创建工单（头 + 资源行）
func (h *BreakInHandler) Create(c *gin.Context) {
	var input breakinservice.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		model.HandleError(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	req, err := h.service.Create(&input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.Success(gin.H{"id": req.ID}))
}

// List 工单列表，?status= 支持 ALL / OUTSTANDING / 具体状态
func (h *BreakInHandler) List(c *gin.Context) {
	summaries, err := h.service.List(c.Query("status"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Success(summaries))
}

// Get 工单详情（含资源行与派生工时）
func (h *BreakInHandler) Get(c *gin.Context) {
	detail, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Success(detail))
}

// Dashboard 仪表盘汇总指标
func (h *BreakInHandler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Success(stats))
}

type decisionRequest struct {
	Decision  string `json:"decision"`
	Workgroup string `json:"workgroup"`
	Comment   string `json:"comment"`
}

// decide 统一的审批入口，stage 由路由决定
func (h *BreakInHandler) decide(c *gin.Context, stage model.ReviewStage) {
	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleError(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	updated, err := h.service.Decide(c.Param("id"), stage, model.Decision(req.Decision), req.Workgroup, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.Success(gin.H{"status": updated.Status}))
}

// PlannerDecision 计划员审批：SUBMITTED → COORD_REVIEW / REJECTED
func (h *BreakInHandler) PlannerDecision(c *gin.Context) {
	h.decide(c, model.StagePlanner)
}

// CoordinatorDecision 协调员审批：COORD_REVIEW → SUPER_REVIEW / REJECTED
// 批准时必须指定执行班组
func (h *BreakInHandler) CoordinatorDecision(c *gin.Context) {
	h.decide(c, model.StageCoordinator)
}

// SuperintendentDecision 总监审批：SUPER_REVIEW → MANAGER_REVIEW / REJECTED
func (h *BreakInHandler) SuperintendentDecision(c *gin.Context) {
	h.decide(c, model.StageSuperintendent)
}

// ManagerDecision 经理审批：MANAGER_REVIEW → APPROVED / REJECTED
func (h *BreakInHandler) ManagerDecision(c *gin.Context) {
	h.decide(c, model.StageManager)
}

// Start 开工：APPROVED → IN_PROGRESS，保留已有进度
func (h *BreakInHandler) Start(c *gin.Context) {
	updated, err := h.service.Start(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Success(gin.H{
		"status":           updated.Status,
		"progress_percent": updated.ProgressPercent,
	}))
}

type progressRequest struct {
	ProgressPercent float64 `json:"progress_percent"`
}

// UpdateProgress 更新进度：钳制到 [0,100]，100 自动完成
func (h *BreakInHandler) UpdateProgress(c *gin.Context) {
	var req progressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		model.HandleError(c, http.StatusBadRequest, err, "invalid request body")
		return
	}

	updated, err := h.service.UpdateProgress(c.Param("id"), req.ProgressPercent)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.Success(gin.H{
		"progress_percent": updated.ProgressPercent,
		"status":           updated.Status,
	}))
}

// Complete 完工：进度强制置为 100
func (h *BreakInHandler) Complete(c *gin.Context) {
	updated, err := h.service.Complete(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Success(gin.H{
		"status":           updated.Status,
		"progress_percent": updated.ProgressPercent,
	}))
}

// Delete 删除工单（先删资源行再删头）
func (h *BreakInHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.Success(nil))
}
