package model

import (
	"time"
)

// RequestStatus 破入工单状态
type RequestStatus string

const (
	StatusSubmitted     RequestStatus = "SUBMITTED"      // 已提交，待计划员审核
	StatusCoordReview   RequestStatus = "COORD_REVIEW"   // 待协调员审核
	StatusSuperReview   RequestStatus = "SUPER_REVIEW"   // 待总监审核
	StatusManagerReview RequestStatus = "MANAGER_REVIEW" // 待经理审核
	StatusApproved      RequestStatus = "APPROVED"       // 已批准，待开工
	StatusInProgress    RequestStatus = "IN_PROGRESS"    // 执行中
	StatusCompleted     RequestStatus = "COMPLETED"      // 已完成（终态）
	StatusRejected      RequestStatus = "REJECTED"       // 已拒绝（终态）

	// StatusUnknown 展示用兜底状态，不会持久化
	StatusUnknown RequestStatus = "UNKNOWN"
)

// IsTerminal 是否为终态
func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// Decision 审批决定
type Decision string

const (
	DecisionApprove Decision = "APPROVE" // 批准
	DecisionReject  Decision = "REJECT"  // 拒绝
)

// Valid 决定值是否合法
func (d Decision) Valid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// ReviewStage 审批环节
type ReviewStage string

const (
	StagePlanner        ReviewStage = "planner"        // 计划员
	StageCoordinator    ReviewStage = "coordinator"    // 协调员
	StageSuperintendent ReviewStage = "superintendent" // 总监
	StageManager        ReviewStage = "manager"        // 经理
)

// BreakInRequest 破入工单（计划外维修工作请求）
type BreakInRequest struct {
	ID          string `json:"id" gorm:"type:varchar(36);primaryKey"`
	WONumber    string `json:"wo_number" gorm:"type:varchar(50);not null;index"` // 工单号（调用方提供，不校验唯一性）
	WOTitle     string `json:"wo_title" gorm:"type:varchar(200)"`
	Reason      string `json:"reason" gorm:"type:text"`      // 申请理由
	Consequence string `json:"consequence" gorm:"type:text"` // 不执行的后果
	Area        string `json:"area" gorm:"type:varchar(100)"`
	Priority    string `json:"priority" gorm:"type:varchar(20);default:P2"` // 优先级，自由文本，默认 P2

	Status          RequestStatus `json:"status" gorm:"type:varchar(20);default:SUBMITTED;index"`
	Workgroup       string        `json:"workgroup" gorm:"type:varchar(100)"` // 执行班组，协调员批准时填写
	ProgressPercent int           `json:"progress_percent" gorm:"default:0"`  // 执行进度 0-100

	// 申请人信息（缺省为 Unknown / unknown@unknown，不做校验）
	RequestorName  string `json:"requestor_name" gorm:"type:varchar(100)"`
	RequestorEmail string `json:"requestor_email" gorm:"type:varchar(100)"`

	// 各环节审批意见
	PlannerComment        string `json:"planner_comment" gorm:"type:text"`
	CoordinatorComment    string `json:"coordinator_comment" gorm:"type:text"`
	SuperintendentComment string `json:"superintendent_comment" gorm:"type:text"`
	ManagerComment        string `json:"manager_comment" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Resources []BreakInResource `json:"resources,omitempty" gorm:"foreignKey:RequestID"`
}

// TableName 指定表名
func (BreakInRequest) TableName() string {
	return "break_in_requests"
}

// DisplayStatus 展示状态（空值兜底为 UNKNOWN）
func (r *BreakInRequest) DisplayStatus() RequestStatus {
	if r.Status == "" {
		return StatusUnknown
	}
	return r.Status
}

// BreakInResource 工单的计划人力资源行
type BreakInResource struct {
	ID           string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	RequestID    string    `json:"request_id" gorm:"type:varchar(36);not null;index"`
	ResourceType string    `json:"resource_type" gorm:"type:varchar(100);not null"` // 工种，自由文本
	Hours        float64   `json:"hours" gorm:"not null"`                           // 计划工时，必须为正数
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (BreakInResource) TableName() string {
	return "break_in_resources"
}
