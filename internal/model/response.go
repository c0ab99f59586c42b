package model

import (
	"fmt"

	"github.com/dioncoinz/sibw-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Success(data interface{}) Response {
	return Response{
		Code:    0,
		Message: "success",
		Data:    data,
	}
}

func Error(code int, message string) Response {
	return Response{
		Code:    code,
		Message: message,
	}
}

// HandleError 统一错误处理函数，记录详细日志并返回错误响应
func HandleError(c *gin.Context, code int, err error, context ...string) {
	requestMethod := c.Request.Method
	requestPath := c.Request.URL.Path
	requestQuery := c.Request.URL.RawQuery
	clientIP := c.ClientIP()

	// 获取用户信息（如果有）
	email := ""
	if v, exists := c.Get("email"); exists {
		email = fmt.Sprintf("%v", v)
	}

	fullURL := requestPath
	if requestQuery != "" {
		fullURL = fmt.Sprintf("%s?%s", requestPath, requestQuery)
	}

	errorMsg := err.Error()
	if len(context) > 0 {
		errorMsg = fmt.Sprintf("%s: %v", context[0], err)
	}

	logger.Errorf(
		"Request error [%d]: %v\n"+
			"  Request: %s %s\n"+
			"  Client IP: %s\n"+
			"  User: %s",
		code,
		errorMsg,
		requestMethod,
		fullURL,
		clientIP,
		email,
	)

	c.JSON(code, Error(code, errorMsg))
}

// DashboardStats 仪表盘汇总指标
type DashboardStats struct {
	Total       int `json:"total"`
	Outstanding int `json:"outstanding"` // total - completed - rejected
	InProgress  int `json:"in_progress"`
	Completed   int `json:"completed"`
	Rejected    int `json:"rejected"`

	TotalPlannedHours float64 `json:"total_planned_hours"`
	TotalDoneHours    float64 `json:"total_done_hours"`

	// 各状态占比（0-100 的整数百分比）
	StatusProportions map[string]int `json:"status_proportions"`
}

// RequestSummary 列表/仪表盘行数据（附带派生工时）
type RequestSummary struct {
	BreakInRequest
	PlannedHours float64 `json:"planned_hours"`
	DoneHours    float64 `json:"done_hours"`
}

// RequestDetail 详情数据（附带资源行与派生工时）
type RequestDetail struct {
	BreakInRequest
	Resources    []BreakInResource `json:"resources"`
	PlannedHours float64           `json:"planned_hours"`
	DoneHours    float64           `json:"done_hours"`
}
