package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/services"
	"provider_map/internal/services/dto"
)

type CategoryHandler struct {
	*BaseHandler
	categoryService services.CategoryService
}

func NewCategoryHandler(base *BaseHandler, categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		BaseHandler:     base,
		categoryService: categoryService,
	}
}

// List godoc
// @Summary Список категорий
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// Create godoc
// @Summary Добавить категорию
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body dto.CreateCategoryRequest true "Категория"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/admin/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	category, err := h.categoryService.Create(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// Delete godoc
// @Summary Удалить категорию
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param value path string true "Значение категории"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/admin/categories/{value} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.categoryService.Delete(c.Param("value")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
