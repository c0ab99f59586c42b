package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Server Metrics

	// APIRequestsTotal API请求总数
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// APIRequestDuration API请求处理时长
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// Workflow Metrics

	// WorkflowTransitionsTotal 状态流转总数（按事件和结果状态统计）
	WorkflowTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "breakin_workflow_transitions_total",
			Help: "Total number of break-in request status transitions",
		},
		[]string{"event", "to_status"},
	)

	// WorkflowRejectedTransitionsTotal 被拒绝的非法流转总数
	WorkflowRejectedTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "breakin_workflow_rejected_transitions_total",
			Help: "Total number of rejected illegal transition attempts",
		},
		[]string{"event", "from_status"},
	)

	// BreakInRequestsCreatedTotal 创建的请求总数
	BreakInRequestsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "breakin_requests_created_total",
			Help: "Total number of break-in requests created",
		},
	)

	// BreakInRequestsDeletedTotal 删除的请求总数
	BreakInRequestsDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "breakin_requests_deleted_total",
			Help: "Total number of break-in requests deleted",
		},
	)
)
