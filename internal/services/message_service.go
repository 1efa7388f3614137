package services

import (
	"provider_map/internal/email"
	"provider_map/internal/logger"
	"provider_map/internal/models"
	"provider_map/internal/repositories"
	"provider_map/internal/services/dto"
	"provider_map/pkg/apperrors"
)

type MessageService interface {
	Send(providerID uint, req *dto.CreateMessageRequest) (*dto.MessageResponse, error)
	ListForProvider(providerID uint, actor Actor) ([]dto.MessageResponse, error)
}

type MessageServiceImpl struct {
	messageRepo  repositories.MessageRepository
	providerRepo repositories.ProviderRepository
	userRepo     repositories.UserRepository
	sender       email.Sender
}

func NewMessageService(
	messageRepo repositories.MessageRepository,
	providerRepo repositories.ProviderRepository,
	userRepo repositories.UserRepository,
	sender email.Sender,
) MessageService {
	return &MessageServiceImpl{
		messageRepo:  messageRepo,
		providerRepo: providerRepo,
		userRepo:     userRepo,
		sender:       sender,
	}
}

// Send - анонимное обращение клиента к провайдеру.
// Уведомление владельцу по почте - best effort, ошибки не видны клиенту.
func (s *MessageServiceImpl) Send(providerID uint, req *dto.CreateMessageRequest) (*dto.MessageResponse, error) {
	provider, err := s.providerRepo.FindByID(providerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	message := &models.Message{
		ProviderID:  providerID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		MessageText: req.MessageText,
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, apperrors.InternalError(err)
	}

	go s.notifyOwner(provider, message)

	resp := toMessageResponse(message)
	return &resp, nil
}

func (s *MessageServiceImpl) notifyOwner(provider *models.ServiceProvider, message *models.Message) {
	owner, err := s.userRepo.FindByProviderID(provider.ID)
	if err != nil {
		return
	}

	subject, body := email.NewMessageBody(provider.Name, message.ClientName, message.ClientPhone, message.MessageText)
	if err := s.sender.Send(owner.Email, subject, body); err != nil {
		logger.Warn("failed to send message notification", "provider_id", provider.ID, "error", err)
	}
}

// ListForProvider - входящие сообщения. Доступно владельцу и админам.
func (s *MessageServiceImpl) ListForProvider(providerID uint, actor Actor) ([]dto.MessageResponse, error) {
	if _, err := s.providerRepo.FindByID(providerID); err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !models.IsAdminRole(actor.Role) {
		owner, err := s.userRepo.FindByID(actor.UserID)
		if err != nil || owner.ProviderID == nil || *owner.ProviderID != providerID {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	messages, err := s.messageRepo.FindByProviderID(providerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, toMessageResponse(&m))
	}
	return out, nil
}

func toMessageResponse(m *models.Message) dto.MessageResponse {
	return dto.MessageResponse{
		ID:          m.ID,
		ProviderID:  m.ProviderID,
		ClientName:  m.ClientName,
		ClientPhone: m.ClientPhone,
		ClientEmail: m.ClientEmail,
		MessageText: m.MessageText,
		CreatedAt:   m.CreatedAt,
	}
}
