package breakin

import (
	"math"
	"testing"

	"github.com/dioncoinz/sibw-backend/internal/model"
)

func TestClampPct(t *testing.T) {
	tests := []struct {
		name  string
		input float64
		want  int
	}{
		{"zero", 0, 0},
		{"mid", 50, 50},
		{"upper bound", 100, 100},
		{"above range", 150, 100},
		{"negative", -10, 0},
		{"rounds half up", 49.5, 50},
		{"rounds down", 49.4, 49},
		{"NaN treated as zero", math.NaN(), 0},
		{"positive infinity treated as zero", math.Inf(1), 0},
		{"negative infinity treated as zero", math.Inf(-1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPct(tt.input); got != tt.want {
				t.Errorf("ClampPct(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		input float64
		want  float64
	}{
		{0, 0},
		{1.24, 1.2},
		{1.25, 1.3},
		{6.0, 6.0},
		{2.999, 3.0},
	}
	for _, tt := range tests {
		if got := Round1(tt.input); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPlannedHours(t *testing.T) {
	resources := []model.BreakInResource{
		{ResourceType: "Mechanical", Hours: 4},
		{ResourceType: "Electrical", Hours: 2},
	}
	if got := PlannedHours(resources); got != 6.0 {
		t.Errorf("PlannedHours() = %v, want 6.0", got)
	}

	if got := PlannedHours(nil); got != 0 {
		t.Errorf("PlannedHours(nil) = %v, want 0", got)
	}
}

func TestDoneHours(t *testing.T) {
	tests := []struct {
		name     string
		status   model.RequestStatus
		progress int
		planned  float64
		want     float64
	}{
		{"rejected is always zero", model.StatusRejected, 80, 6.0, 0},
		{"completed is full planned", model.StatusCompleted, 50, 6.0, 6.0},
		{"in progress is proportional", model.StatusInProgress, 50, 6.0, 3.0},
		{"in progress rounds to one decimal", model.StatusInProgress, 33, 5.0, 1.7},
		{"approved without progress", model.StatusApproved, 0, 6.0, 0},
		{"submitted without progress", model.StatusSubmitted, 0, 6.0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DoneHours(tt.status, tt.progress, tt.planned); got != tt.want {
				t.Errorf("DoneHours(%s, %d, %v) = %v, want %v",
					tt.status, tt.progress, tt.planned, got, tt.want)
			}
		})
	}
}

func TestBuildStats(t *testing.T) {
	requests := []model.BreakInRequest{
		{ID: "a", Status: model.StatusSubmitted},
		{ID: "b", Status: model.StatusInProgress, ProgressPercent: 50},
		{ID: "c", Status: model.StatusCompleted, ProgressPercent: 100},
		{ID: "d", Status: model.StatusRejected},
	}
	resources := []model.BreakInResource{
		{RequestID: "a", Hours: 2},
		{RequestID: "b", Hours: 4},
		{RequestID: "b", Hours: 2},
		{RequestID: "c", Hours: 3},
		{RequestID: "d", Hours: 10},
	}

	stats := BuildStats(requests, resources)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Completed != 1 {
		t.Errorf("Completed = %d, want 1", stats.Completed)
	}
	if stats.InProgress != 1 {
		t.Errorf("InProgress = %d, want 1", stats.InProgress)
	}
	if stats.Rejected != 1 {
		t.Errorf("Rejected = %d, want 1", stats.Rejected)
	}
	if stats.Outstanding != 2 {
		t.Errorf("Outstanding = %d, want 2", stats.Outstanding)
	}

	// 计划工时含被拒工单：2 + 6 + 3 + 10 = 21
	if stats.TotalPlannedHours != 21.0 {
		t.Errorf("TotalPlannedHours = %v, want 21.0", stats.TotalPlannedHours)
	}
	// 已完成工时：a=0, b=6*50%=3, c=3, d=0（拒绝不计）
	if stats.TotalDoneHours != 6.0 {
		t.Errorf("TotalDoneHours = %v, want 6.0", stats.TotalDoneHours)
	}

	if got := stats.StatusProportions[string(model.StatusCompleted)]; got != 25 {
		t.Errorf("StatusProportions[COMPLETED] = %d, want 25", got)
	}
}

func TestBuildStatsEmpty(t *testing.T) {
	stats := BuildStats(nil, nil)
	if stats.Total != 0 || stats.Outstanding != 0 {
		t.Errorf("empty stats = %+v, want zeros", stats)
	}
	if len(stats.StatusProportions) != 0 {
		t.Errorf("StatusProportions should be empty, got %v", stats.StatusProportions)
	}
}

func TestBuildStatsUnknownStatus(t *testing.T) {
	requests := []model.BreakInRequest{{ID: "a", Status: ""}}
	stats := BuildStats(requests, nil)
	if got := stats.StatusProportions[string(model.StatusUnknown)]; got != 100 {
		t.Errorf("StatusProportions[UNKNOWN] = %d, want 100", got)
	}
	// 空状态不是终态，计入未完结
	if stats.Outstanding != 1 {
		t.Errorf("Outstanding = %d, want 1", stats.Outstanding)
	}
}
