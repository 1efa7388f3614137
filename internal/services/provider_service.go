package services

import (
	"context"

	"provider_map/internal/logger"
	"provider_map/internal/models"
	"provider_map/internal/repositories"
	"provider_map/internal/services/dto"
	"provider_map/internal/storage"
	"provider_map/pkg/apperrors"
)

// Actor - кто выполняет операцию (из JWT claims)
type Actor struct {
	UserID uint
	Role   models.UserRole
}

type ProviderService interface {
	List(filter repositories.ProviderFilter) ([]dto.ProviderResponse, error)
	Get(id uint) (*dto.ProviderResponse, error)
	Create(req *dto.CreateProviderRequest) (*dto.ProviderResponse, error)
	Update(id uint, input *dto.UpdateProviderInput, actor Actor) (*dto.ProviderResponse, error)
	SoftDelete(id uint) error
}

type ProviderServiceImpl struct {
	providerRepo repositories.ProviderRepository
	userRepo     repositories.UserRepository
	files        storage.Storage
}

func NewProviderService(
	providerRepo repositories.ProviderRepository,
	userRepo repositories.UserRepository,
	files storage.Storage,
) ProviderService {
	return &ProviderServiceImpl{
		providerRepo: providerRepo,
		userRepo:     userRepo,
		files:        files,
	}
}

func (s *ProviderServiceImpl) List(filter repositories.ProviderFilter) ([]dto.ProviderResponse, error) {
	providers, err := s.providerRepo.FindWithFilter(filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.ProviderResponse, 0, len(providers))
	for _, p := range providers {
		out = append(out, toProviderResponse(&p))
	}
	return out, nil
}

func (s *ProviderServiceImpl) Get(id uint) (*dto.ProviderResponse, error) {
	provider, err := s.providerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	resp := toProviderResponse(provider)
	return &resp, nil
}

func (s *ProviderServiceImpl) Create(req *dto.CreateProviderRequest) (*dto.ProviderResponse, error) {
	provider := &models.ServiceProvider{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Phone:       req.Phone,
		Email:       req.Email,
		Website:     req.Website,
		Address:     req.Address,
		Photo:       req.Photo,
		IsActive:    true,
	}
	if err := s.providerRepo.Create(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toProviderResponse(provider)
	return &resp, nil
}

// Update - частичное обновление карточки. Разрешено владельцу и админам.
func (s *ProviderServiceImpl) Update(id uint, input *dto.UpdateProviderInput, actor Actor) (*dto.ProviderResponse, error) {
	provider, err := s.providerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !models.IsAdminRole(actor.Role) {
		owner, err := s.userRepo.FindByID(actor.UserID)
		if err != nil || owner.ProviderID == nil || *owner.ProviderID != id {
			return nil, apperrors.ErrInsufficientPermissions
		}
	}

	if input.Name != nil {
		provider.Name = *input.Name
	}
	if input.Category != nil {
		provider.Category = *input.Category
	}
	if input.Description != nil {
		provider.Description = *input.Description
	}
	if input.Latitude != nil {
		provider.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		provider.Longitude = *input.Longitude
	}
	if input.Phone != nil {
		provider.Phone = *input.Phone
	}
	if input.Address != nil {
		provider.Address = *input.Address
	}

	if input.PhotoURL != "" {
		// Старое фото больше никому не нужно
		if provider.Photo != "" {
			if err := s.files.Delete(context.Background(), provider.Photo); err != nil {
				logger.Warn("failed to delete old photo", "photo", provider.Photo, "error", err)
			}
		}
		provider.Photo = input.PhotoURL
	}

	if err := s.providerRepo.Update(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toProviderResponse(provider)
	return &resp, nil
}

// SoftDelete снимает карточку с публикации, не удаляя данные
func (s *ProviderServiceImpl) SoftDelete(id uint) error {
	provider, err := s.providerRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProviderNotFound) {
			return apperrors.ErrProviderNotFound
		}
		return apperrors.InternalError(err)
	}

	provider.IsActive = false
	if err := s.providerRepo.Update(provider); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func toProviderResponse(p *models.ServiceProvider) dto.ProviderResponse {
	return dto.ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Phone:       p.Phone,
		Email:       p.Email,
		Website:     p.Website,
		Address:     p.Address,
		Photo:       p.Photo,
		IsActive:    p.IsActive,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
