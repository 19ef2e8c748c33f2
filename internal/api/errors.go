package api

import (
	"designers/internal/database"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// 错误码定义
const (
	// 通用错误码
	ErrCodeInvalidRequest     = "ERR_INVALID_REQUEST"
	ErrCodeInternalError      = "ERR_INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "ERR_SERVICE_UNAVAILABLE"

	// 存储错误码
	ErrCodeStoreUnavailable = "ERR_STORE_UNAVAILABLE"
	ErrCodeTableMissing     = "ERR_TABLE_MISSING"

	// 业务逻辑错误码
	ErrCodeMissingField     = "ERR_MISSING_FIELD"
	ErrCodeGenerationFailed = "ERR_GENERATION_FAILED"
)

// APIError 统一的 API 错误响应结构
type APIError struct {
	Code    string `json:"code"`
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// MessageBody is used for expected outcomes such as not-found.
type MessageBody struct {
	Message string `json:"message"`
}

// ErrorResponse 返回统一格式的错误响应
func ErrorResponse(c *gin.Context, status int, code string, message string) {
	c.JSON(status, APIError{
		Code:  code,
		Error: message,
	})
}

// ErrorResponseWithDetails 返回带详情的错误响应
func ErrorResponseWithDetails(c *gin.Context, status int, code string, message string, details any) {
	c.JSON(status, APIError{
		Code:    code,
		Error:   message,
		Details: details,
	})
}

// MessageResponse 仅包含 message 字段的响应
func MessageResponse(c *gin.Context, status int, message string) {
	c.JSON(status, MessageBody{Message: message})
}

// BadRequest 400 错误请求
func BadRequest(c *gin.Context, code string, message string) {
	ErrorResponse(c, http.StatusBadRequest, code, message)
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, message string) {
	MessageResponse(c, http.StatusNotFound, message)
}

// InternalError 500 服务器内部错误
func InternalError(c *gin.Context, message string, details any) {
	ErrorResponseWithDetails(c, http.StatusInternalServerError, ErrCodeInternalError, message, details)
}

// ServiceUnavailable 503 服务不可用
func ServiceUnavailable(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// MissingField 缺少必填字段
func MissingField(c *gin.Context, field string) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeMissingField,
		fmt.Sprintf("Falta el campo '%s'", field), gin.H{"field": field})
}

// InvalidPayload 无效的请求体
func InvalidPayload(c *gin.Context, err error) {
	ErrorResponseWithDetails(c, http.StatusBadRequest, ErrCodeInvalidRequest, "Cuerpo de la solicitud JSON inválido", errorDetails(err))
}

// StoreFailure maps a repository error to a 500 body. Table-missing and
// connection failures get their own wording so operators can tell an
// uninitialised schema from a transient outage.
func StoreFailure(c *gin.Context, err error, message string) {
	var storeErr *database.StoreError
	switch {
	case errors.As(err, &storeErr) && storeErr.Kind == database.KindTableMissing:
		logrus.WithError(err).WithField("table", storeErr.Table).Error(message)
		ErrorResponseWithDetails(c, http.StatusInternalServerError, ErrCodeTableMissing,
			fmt.Sprintf("La tabla '%s' no existe. Inicialice la base de datos.", storeErr.Table), err.Error())
	case database.IsUnavailable(err):
		logrus.WithError(err).Error(message)
		ErrorResponseWithDetails(c, http.StatusInternalServerError, ErrCodeStoreUnavailable,
			"No se pudo conectar a la base de datos", err.Error())
	default:
		logrus.WithError(err).Error(message)
		InternalError(c, message, errorDetails(err))
	}
}

func errorDetails(err error) any {
	if err == nil {
		return nil
	}
	return err.Error()
}
