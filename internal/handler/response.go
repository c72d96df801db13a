package handler

import (
	"errors"
	"net/http"

	e "github.com/MuhammedMazinMH/FundFeed/internal/errors"
	"github.com/gin-gonic/gin"
)

// 通用响应结构
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse 成功响应
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse 错误响应
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// FailWith 按错误分类映射 HTTP 状态码后返回错误响应
func FailWith(c *gin.Context, err error) {
	ErrorResponse(c, statusFromError(err), err.Error())
}

// statusFromError 错误分类到状态码的映射
func statusFromError(err error) int {
	switch {
	case errors.Is(err, e.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, e.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, e.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, e.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, e.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
