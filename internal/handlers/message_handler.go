package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provider_map/internal/middleware"
	"provider_map/internal/services"
	"provider_map/internal/services/dto"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
	}
}

// Send godoc
// @Summary Отправить сообщение провайдеру
// @Description Анонимная форма обратной связи, авторизация не нужна
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "ID провайдера"
// @Param message body dto.CreateMessageRequest true "Сообщение"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/providers/{id}/messages [post]
func (h *MessageHandler) Send(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.Send(id, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, message)
}

// List godoc
// @Summary Входящие сообщения провайдера
// @Description Доступно владельцу карточки и админам
// @Tags messages
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID провайдера"
// @Success 200 {array} dto.MessageResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Router /api/providers/{id}/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	messages, err := h.messageService.ListForProvider(id, middleware.GetActor(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
