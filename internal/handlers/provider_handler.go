package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/middleware"
	"provider_map/internal/repositories"
	"provider_map/internal/services"
	"provider_map/internal/services/dto"
)

type ProviderHandler struct {
	*BaseHandler
	providerService services.ProviderService
	uploadService   services.UploadService
}

func NewProviderHandler(base *BaseHandler, providerService services.ProviderService, uploadService services.UploadService) *ProviderHandler {
	return &ProviderHandler{
		BaseHandler:     base,
		providerService: providerService,
		uploadService:   uploadService,
	}
}

// List godoc
// @Summary Список активных провайдеров
// @Description Фильтры: категория и радиус (градусы) вокруг точки
// @Tags providers
// @Produce json
// @Param category query string false "Категория"
// @Param lat query number false "Широта центра"
// @Param lng query number false "Долгота центра"
// @Param radius query number false "Радиус в градусах"
// @Success 200 {array} dto.ProviderResponse
// @Router /api/providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	filter := repositories.ProviderFilter{
		Category:   c.Query("category"),
		ActiveOnly: true,
	}

	var err error
	if filter.Lat, err = ParseQueryFloat(c, "lat"); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if filter.Lng, err = ParseQueryFloat(c, "lng"); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if filter.Radius, err = ParseQueryFloat(c, "radius"); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	providers, err := h.providerService.List(filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// AdminList godoc
// @Summary Все провайдеры, включая снятые с публикации
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.ProviderResponse
// @Router /api/admin/providers [get]
func (h *ProviderHandler) AdminList(c *gin.Context) {
	providers, err := h.providerService.List(repositories.ProviderFilter{ActiveOnly: false})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

// Get godoc
// @Summary Карточка провайдера
// @Tags providers
// @Produce json
// @Param id path int true "ID провайдера"
// @Success 200 {object} dto.ProviderResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	provider, err := h.providerService.Get(id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// Create godoc
// @Summary Создать провайдера без аккаунта
// @Tags providers
// @Accept json
// @Produce json
// @Param provider body dto.CreateProviderRequest true "Данные карточки"
// @Success 200 {object} dto.ProviderResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/providers [post]
func (h *ProviderHandler) Create(c *gin.Context) {
	var req dto.CreateProviderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	provider, err := h.providerService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// Update godoc
// @Summary Частичное обновление карточки
// @Description Multipart-форма; непереданные поля не меняются. Владелец или админ.
// @Tags providers
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID провайдера"
// @Success 200 {object} dto.ProviderResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/providers/{id} [put]
func (h *ProviderHandler) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	input, err := h.bindUpdateInput(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	provider, err := h.providerService.Update(id, input, middleware.GetActor(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, provider)
}

// bindUpdateInput собирает частичное обновление из multipart-формы:
// отсутствующее поле остается nil и не трогает карточку
func (h *ProviderHandler) bindUpdateInput(c *gin.Context) (*dto.UpdateProviderInput, error) {
	input := &dto.UpdateProviderInput{}

	if v, ok := c.GetPostForm("name"); ok {
		input.Name = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		input.Category = &v
	}
	if v, ok := c.GetPostForm("description"); ok {
		input.Description = &v
	}
	if v, ok := c.GetPostForm("phone"); ok {
		input.Phone = &v
	}
	if v, ok := c.GetPostForm("address"); ok {
		input.Address = &v
	}

	if lat, err := parseFormFloat(c, "latitude"); err != nil {
		return nil, err
	} else if lat != nil {
		input.Latitude = lat
	}
	if lng, err := parseFormFloat(c, "longitude"); err != nil {
		return nil, err
	} else if lng != nil {
		input.Longitude = lng
	}

	if file, err := c.FormFile("photo"); err == nil && file != nil {
		url, err := h.uploadService.SavePhoto(c.Request.Context(), file)
		if err != nil {
			return nil, err
		}
		input.PhotoURL = url
	}

	return input, nil
}

// Delete godoc
// @Summary Снять карточку с публикации
// @Tags providers
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID провайдера"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/providers/{id} [delete]
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if err := h.providerService.SoftDelete(id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Provider deactivated"})
}
