package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/middleware"
	"provider_map/internal/services"
	"provider_map/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService   services.AuthService
	uploadService services.UploadService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, uploadService services.UploadService) *AuthHandler {
	return &AuthHandler{
		BaseHandler:   base,
		authService:   authService,
		uploadService: uploadService,
	}
}

// Register godoc
// @Summary Регистрация провайдера
// @Description Создает карточку провайдера и аккаунт владельца, возвращает токен
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Логин"
// @Param email formData string true "Email"
// @Param password formData string true "Пароль (мин. 6 символов)"
// @Param name formData string true "Название"
// @Param category formData string true "Категория"
// @Param latitude formData number true "Широта"
// @Param longitude formData number true "Долгота"
// @Param photo formData file false "Фото"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input dto.RegisterInput
	if !h.BindAndValidate_Form(c, &input) {
		return
	}

	// Фото опционально; сохраняем до создания аккаунта
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		url, err := h.uploadService.SavePhoto(c.Request.Context(), file)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		input.PhotoURL = url
	}

	token, err := h.authService.Register(&input)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Login godoc
// @Summary Вход по логину и паролю
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Логин"
// @Param password formData string true "Пароль"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_Form(c, &req) {
		return
	}

	token, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}

// Me godoc
// @Summary Текущий пользователь
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} apperrors.ErrorResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// MyProvider godoc
// @Summary Карточка провайдера текущего пользователя
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProviderResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/auth/my-provider [get]
func (h *AuthHandler) MyProvider(c *gin.Context) {
	provider, err := h.authService.MyProvider(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}
