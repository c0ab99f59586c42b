package breakin

import "errors"

// 服务层错误分类，handler 据此映射 HTTP 状态码：
// 校验失败 → 400，记录不存在 → 404，状态冲突 → 409，其余为存储错误 → 500
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("request not found")
	ErrConflict   = errors.New("status conflict")
)
