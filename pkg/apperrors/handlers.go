package apperrors

import (
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ErrorResponse - тело ответа об ошибке.
// Поле detail совместимо с исходным API: клиенты показывают его как есть.
type ErrorResponse struct {
	Detail string    `json:"detail"`
	Code   ErrorCode `json:"code,omitempty"`
}

// HandleError отправляет ошибку клиенту в формате {detail, code}.
// Не-AppError оборачивается в InternalError, детали наружу не уходят.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		slog.Error("server error", "error", appErr.Error())
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{
		Detail: appErr.Message,
		Code:   appErr.Code,
	})
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
