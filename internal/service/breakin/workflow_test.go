package breakin

import (
	"errors"
	"testing"

	"github.com/dioncoinz/sibw-backend/internal/model"
)

func TestDecisionNext(t *testing.T) {
	tests := []struct {
		name     string
		stage    model.ReviewStage
		current  model.RequestStatus
		decision model.Decision
		want     model.RequestStatus
		wantErr  error
	}{
		{
			name:     "planner approve",
			stage:    model.StagePlanner,
			current:  model.StatusSubmitted,
			decision: model.DecisionApprove,
			want:     model.StatusCoordReview,
		},
		{
			name:     "planner reject",
			stage:    model.StagePlanner,
			current:  model.StatusSubmitted,
			decision: model.DecisionReject,
			want:     model.StatusRejected,
		},
		{
			name:     "coordinator approve",
			stage:    model.StageCoordinator,
			current:  model.StatusCoordReview,
			decision: model.DecisionApprove,
			want:     model.StatusSuperReview,
		},
		{
			name:     "superintendent approve",
			stage:    model.StageSuperintendent,
			current:  model.StatusSuperReview,
			decision: model.DecisionApprove,
			want:     model.StatusManagerReview,
		},
		{
			name:     "manager approve",
			stage:    model.StageManager,
			current:  model.StatusManagerReview,
			decision: model.DecisionApprove,
			want:     model.StatusApproved,
		},
		{
			name:     "manager reject",
			stage:    model.StageManager,
			current:  model.StatusManagerReview,
			decision: model.DecisionReject,
			want:     model.StatusRejected,
		},
		{
			name:     "invalid decision value",
			stage:    model.StagePlanner,
			current:  model.StatusSubmitted,
			decision: "MAYBE",
			wantErr:  ErrValidation,
		},
		{
			name:     "unknown stage",
			stage:    "auditor",
			current:  model.StatusSubmitted,
			decision: model.DecisionApprove,
			wantErr:  ErrValidation,
		},
		{
			name:     "planner decision after planner already approved",
			stage:    model.StagePlanner,
			current:  model.StatusCoordReview,
			decision: model.DecisionApprove,
			wantErr:  ErrConflict,
		},
		{
			name:     "manager decision on submitted request",
			stage:    model.StageManager,
			current:  model.StatusSubmitted,
			decision: model.DecisionApprove,
			wantErr:  ErrConflict,
		},
		{
			name:     "decision on terminal request",
			stage:    model.StageCoordinator,
			current:  model.StatusRejected,
			decision: model.DecisionApprove,
			wantErr:  ErrConflict,
		},
		{
			name:     "reject with wrong current status still conflicts",
			stage:    model.StageCoordinator,
			current:  model.StatusSubmitted,
			decision: model.DecisionReject,
			wantErr:  ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecisionNext(tt.stage, tt.current, tt.decision)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("DecisionNext() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecisionNext() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecisionNext() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanStart(t *testing.T) {
	if err := CanStart(model.StatusApproved); err != nil {
		t.Errorf("CanStart(APPROVED) = %v, want nil", err)
	}

	for _, status := range []model.RequestStatus{
		model.StatusSubmitted,
		model.StatusCoordReview,
		model.StatusManagerReview,
		model.StatusInProgress,
		model.StatusCompleted,
		model.StatusRejected,
	} {
		if err := CanStart(status); !errors.Is(err, ErrConflict) {
			t.Errorf("CanStart(%s) = %v, want ErrConflict", status, err)
		}
	}
}

func TestCanUpdateProgress(t *testing.T) {
	if err := CanUpdateProgress(model.StatusInProgress); err != nil {
		t.Errorf("CanUpdateProgress(IN_PROGRESS) = %v, want nil", err)
	}

	for _, status := range []model.RequestStatus{
		model.StatusSubmitted,
		model.StatusApproved,
		model.StatusCompleted,
		model.StatusRejected,
	} {
		if err := CanUpdateProgress(status); !errors.Is(err, ErrConflict) {
			t.Errorf("CanUpdateProgress(%s) = %v, want ErrConflict", status, err)
		}
	}
}

func TestCanComplete(t *testing.T) {
	for _, status := range []model.RequestStatus{model.StatusApproved, model.StatusInProgress} {
		if err := CanComplete(status); err != nil {
			t.Errorf("CanComplete(%s) = %v, want nil", status, err)
		}
	}

	for _, status := range []model.RequestStatus{
		model.StatusSubmitted,
		model.StatusManagerReview,
		model.StatusCompleted,
		model.StatusRejected,
	} {
		if err := CanComplete(status); !errors.Is(err, ErrConflict) {
			t.Errorf("CanComplete(%s) = %v, want ErrConflict", status, err)
		}
	}
}

func TestProgressNext(t *testing.T) {
	tests := []struct {
		progress int
		want     model.RequestStatus
	}{
		{0, model.StatusInProgress},
		{50, model.StatusInProgress},
		{99, model.StatusInProgress},
		{100, model.StatusCompleted},
	}
	for _, tt := range tests {
		if got := ProgressNext(tt.progress); got != tt.want {
			t.Errorf("ProgressNext(%d) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}
