package errors

import (
	"errors"
)

// 核心逻辑的错误分类，handler 层据此映射 HTTP 状态码
var (
	ErrValidation       = errors.New("参数校验失败")
	ErrAuthRequired     = errors.New("需要登录")
	ErrNotFound         = errors.New("记录不存在")
	ErrStoreUnavailable = errors.New("存储服务不可用")
	ErrConflict         = errors.New("唯一性冲突")
)
