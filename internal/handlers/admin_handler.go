package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/middleware"
	"provider_map/internal/services"
	"provider_map/internal/services/dto"
)

type AdminHandler struct {
	*BaseHandler
	adminService services.AdminService
}

func NewAdminHandler(base *BaseHandler, adminService services.AdminService) *AdminHandler {
	return &AdminHandler{
		BaseHandler:  base,
		adminService: adminService,
	}
}

// ListUsers godoc
// @Summary Список пользователей
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.UserResponse
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Пользователь по ID
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} dto.UserResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	user, err := h.adminService.GetUser(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Изменить пользователя
// @Description Последнего супер-админа понизить нельзя
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Param user body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	user, err := h.adminService.UpdateUser(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Удалить пользователя
// @Description Последнего супер-админа удалить нельзя
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID пользователя"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.DeleteUser(id, middleware.GetActor(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ToggleProvider godoc
// @Summary Включить/выключить карточку провайдера
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID провайдера"
// @Success 200 {object} dto.ProviderResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/providers/{id}/toggle-active [put]
func (h *AdminHandler) ToggleProvider(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	provider, err := h.adminService.ToggleProviderActive(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// DeleteProvider godoc
// @Summary Удалить провайдера окончательно
// @Description Удаляет запись, фото и отвязывает аккаунт владельца
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID провайдера"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/providers/{id} [delete]
func (h *AdminHandler) DeleteProvider(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.adminService.HardDeleteProvider(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deleted"})
}

// Stats godoc
// @Summary Сводная статистика
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Router /api/admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
