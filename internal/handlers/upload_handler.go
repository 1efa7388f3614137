package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/services"
	"provider_map/pkg/apperrors"
)

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

// Upload godoc
// @Summary Загрузить фото
// @Description Принимает jpg/jpeg/png/gif/webp до 5MB, возвращает URL файла
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Файл изображения"
// @Success 200 {object} map[string]string
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/upload [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("File is required"))
		return
	}

	url, err := h.uploadService.SavePhoto(c.Request.Context(), file)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
