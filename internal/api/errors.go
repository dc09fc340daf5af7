package api

import (
	"errors"
	"net/http"

	"homebar/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码 (1xxx)
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeUnauthorized       = "ERR_UNAUTHORIZED"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 认证错误码 (2xxx)
	ErrCodeInvalidCredentials = "ERR_INVALID_CREDENTIALS"
	ErrCodeSessionExpired     = "ERR_SESSION_EXPIRED"
	ErrCodeAuthDisabled       = "ERR_AUTH_DISABLED"

	// 资源错误码 (3xxx)
	ErrCodeParticipantNotFound = "ERR_PARTICIPANT_NOT_FOUND"
	ErrCodeInventoryNotFound   = "ERR_INVENTORY_NOT_FOUND"
	ErrCodeRecipeNotFound      = "ERR_RECIPE_NOT_FOUND"
	ErrCodeEventNotFound       = "ERR_EVENT_NOT_FOUND"

	// 业务逻辑错误码 (4xxx)
	ErrCodeMissingField  = "ERR_MISSING_FIELD"
	ErrCodeInvalidPhoto  = "ERR_INVALID_PHOTO"
	ErrCodePhotoTooLarge = "ERR_PHOTO_TOO_LARGE"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// 常用错误响应快捷函数

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusNotFound, code, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusInternalServerError, ErrCodeInternalError, message)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField, field+" is required", gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context) {
	ErrorResponse(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request payload")
}

// NoChange 204 请求被接受但没有修改任何数据
func NoChange(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// respondWriteError maps a service or repository error from a write. A
// skipped write or a missing row answers 204; everything else is logged.
func respondWriteError(c *gin.Context, err error, event string, fields logrus.Fields) {
	switch {
	case errors.Is(err, service.ErrNoChange), service.IsNotFound(err):
		NoChange(c)
	case errors.Is(err, service.ErrInvalidInput):
		BadRequest(c, ErrCodeInvalidRequest, err.Error())
	default:
		logrus.WithError(err).WithFields(fields).Error(event)
		InternalError(c, "failed to save changes")
	}
}

// respondReadError maps an error from a primary read. A missing row answers
// 404 with the given code.
func respondReadError(c *gin.Context, err error, notFoundCode, event string, fields logrus.Fields) {
	if service.IsNotFound(err) {
		NotFound(c, notFoundCode, "resource not found")
		return
	}
	logrus.WithError(err).WithFields(fields).Error(event)
	InternalError(c, "failed to load resource")
}
