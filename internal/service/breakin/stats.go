package breakin

import (
	"math"

	"github.com/dioncoinz/sibw-backend/internal/model"
)

// 派生工时与仪表盘指标，每次读取时重新计算，不做缓存。
// 取整规则：百分比取最近整数，工时保留一位小数。

// ClampPct 进度值取整并钳制到 [0,100]，非有限值按 0 处理
func ClampPct(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	p := int(math.Round(v))
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Round1 保留一位小数
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// PlannedHours 计划工时 = 资源行工时之和，保留一位小数
func PlannedHours(resources []model.BreakInResource) float64 {
	var sum float64
	for _, r := range resources {
		sum += r.Hours
	}
	return Round1(sum)
}

// DoneHours 已完成工时（派生值，不入库）：
// REJECTED → 0；COMPLETED → 计划工时；其余 → 计划工时 × 进度 / 100
func DoneHours(status model.RequestStatus, progressPercent int, planned float64) float64 {
	switch status {
	case model.StatusRejected:
		return 0
	case model.StatusCompleted:
		return planned
	default:
		pct := ClampPct(float64(progressPercent))
		return Round1(planned * float64(pct) / 100)
	}
}

// BuildStats 由全量工单和资源行归约出仪表盘指标
func BuildStats(requests []model.BreakInRequest, resources []model.BreakInResource) *model.DashboardStats {
	plannedByID := make(map[string]float64, len(requests))
	for _, r := range resources {
		plannedByID[r.RequestID] += r.Hours
	}

	stats := &model.DashboardStats{
		StatusProportions: make(map[string]int),
	}

	statusCounts := make(map[model.RequestStatus]int)
	var totalPlanned, totalDone float64

	for i := range requests {
		req := &requests[i]
		statusCounts[req.DisplayStatus()]++

		planned := Round1(plannedByID[req.ID])
		totalPlanned += planned
		totalDone += DoneHours(req.Status, req.ProgressPercent, planned)
	}

	stats.Total = len(requests)
	stats.Completed = statusCounts[model.StatusCompleted]
	stats.InProgress = statusCounts[model.StatusInProgress]
	stats.Rejected = statusCounts[model.StatusRejected]
	stats.Outstanding = stats.Total - stats.Completed - stats.Rejected

	stats.TotalPlannedHours = Round1(totalPlanned)
	stats.TotalDoneHours = Round1(totalDone)

	if stats.Total > 0 {
		for status, count := range statusCounts {
			stats.StatusProportions[string(status)] = ClampPct(float64(count) * 100 / float64(stats.Total))
		}
	}

	return stats
}
