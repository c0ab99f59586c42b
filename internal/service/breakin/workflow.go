package breakin

import (
	"fmt"

	"github.com/dioncoinz/sibw-backend/internal/model"
)

// 状态机：SUBMITTED → COORD_REVIEW → SUPER_REVIEW → MANAGER_REVIEW → APPROVED
// → IN_PROGRESS → COMPLETED，任一审批环节可进入 REJECTED。
// 所有流转单向，不允许回退到更早的审批环节。

// stageTransition 审批环节的流转规则
type stageTransition struct {
	From        model.RequestStatus // 该环节要求的当前状态
	ApproveNext model.RequestStatus // 批准后的下一状态
}

// decisionTable 审批环节流转表（拒绝一律进入 REJECTED）
var decisionTable = map[model.ReviewStage]stageTransition{
	model.StagePlanner:        {From: model.StatusSubmitted, ApproveNext: model.StatusCoordReview},
	model.StageCoordinator:    {From: model.StatusCoordReview, ApproveNext: model.StatusSuperReview},
	model.StageSuperintendent: {From: model.StatusSuperReview, ApproveNext: model.StatusManagerReview},
	model.StageManager:        {From: model.StatusManagerReview, ApproveNext: model.StatusApproved},
}

// DecisionNext 计算审批决定的下一状态
// 先校验决定值，再校验当前状态是否处于该环节要求的状态（服务端防止非法流转）
func DecisionNext(stage model.ReviewStage, current model.RequestStatus, decision model.Decision) (model.RequestStatus, error) {
	if !decision.Valid() {
		return "", fmt.Errorf("%w: invalid decision %q (expected APPROVE or REJECT)", ErrValidation, decision)
	}

	t, ok := decisionTable[stage]
	if !ok {
		return "", fmt.Errorf("%w: unknown review stage %q", ErrValidation, stage)
	}

	if current != t.From {
		return "", fmt.Errorf("%w: %s decision requires status %s, current status is %s",
			ErrConflict, stage, t.From, current)
	}

	if decision == model.DecisionApprove {
		return t.ApproveNext, nil
	}
	return model.StatusRejected, nil
}

// CanStart 开工要求工单已通过全部审批
func CanStart(current model.RequestStatus) error {
	if current != model.StatusApproved {
		return fmt.Errorf("%w: start requires status %s, current status is %s",
			ErrConflict, model.StatusApproved, current)
	}
	return nil
}

// CanUpdateProgress 进度更新仅允许执行中的工单
func CanUpdateProgress(current model.RequestStatus) error {
	if current != model.StatusInProgress {
		return fmt.Errorf("%w: progress update requires status %s, current status is %s",
			ErrConflict, model.StatusInProgress, current)
	}
	return nil
}

// CanComplete 完工允许已批准或执行中的工单
func CanComplete(current model.RequestStatus) error {
	if current != model.StatusApproved && current != model.StatusInProgress {
		return fmt.Errorf("%w: complete requires status %s or %s, current status is %s",
			ErrConflict, model.StatusApproved, model.StatusInProgress, current)
	}
	return nil
}

// ProgressNext 根据钳制后的进度值计算下一状态（100 即完成）
func ProgressNext(progress int) model.RequestStatus {
	if progress >= 100 {
		return model.StatusCompleted
	}
	return model.StatusInProgress
}
