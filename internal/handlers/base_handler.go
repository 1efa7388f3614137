package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"provider_map/internal/logger"
	"provider_map/internal/validator"
	"provider_map/pkg/apperrors"
)

type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// BindAndValidate_JSON привязывает JSON-тело и валидирует его.
// При ошибке сам пишет ответ и возвращает false.
func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.WithError(err).Warn("Failed to bind JSON body", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

// BindAndValidate_Form привязывает form/multipart-поля и валидирует их
func (h *BaseHandler) BindAndValidate_Form(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.WithError(err).Warn("Failed to bind form body", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	err := h.validator.Validate(obj)
	if err == nil {
		return true
	}

	if vErr, ok := err.(*validator.ValidationError); ok {
		logger.Warn("Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
	} else {
		logger.WithError(err).Error("Internal validator error", "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.InternalError(err))
	}
	return false
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if apperrors.As(err, &appErr) {
		logger.Warn("Service error",
			"error", appErr.Message,
			"path", c.Request.URL.Path,
		)
		apperrors.HandleError(c, appErr)
		return
	}

	logger.WithError(err).Error("Internal server error", "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

// ParseParamUint читает числовой path-параметр
func ParseParamUint(c *gin.Context, key string) (uint, error) {
	valueStr := c.Param(key)
	value, err := strconv.ParseUint(valueStr, 10, 32)
	if err != nil {
		return 0, apperrors.NewBadRequestError("Invalid path parameter: " + key + " is not an integer")
	}
	return uint(value), nil
}

// parseFormFloat читает опциональный float из form-поля
func parseFormFloat(c *gin.Context, key string) (*float64, error) {
	valueStr, ok := c.GetPostForm(key)
	if !ok || valueStr == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid form field: " + key + " is not a number")
	}
	return &value, nil
}

// ParseQueryFloat читает опциональный float из query-строки
func ParseQueryFloat(c *gin.Context, key string) (*float64, error) {
	valueStr := c.Query(key)
	if valueStr == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid query parameter: " + key + " is not a number")
	}
	return &value, nil
}
