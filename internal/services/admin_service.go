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

type AdminService interface {
	ListUsers() ([]dto.UserResponse, error)
	GetUser(id uint) (*dto.UserResponse, error)
	UpdateUser(id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	DeleteUser(id uint, actor Actor) error
	HardDeleteProvider(id uint) error
	ToggleProviderActive(id uint) (*dto.ProviderResponse, error)
	Stats() (*dto.StatsResponse, error)
}

type AdminServiceImpl struct {
	userRepo     repositories.UserRepository
	providerRepo repositories.ProviderRepository
	messageRepo  repositories.MessageRepository
	categoryRepo repositories.CategoryRepository
	files        storage.Storage
}

func NewAdminService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
	messageRepo repositories.MessageRepository,
	categoryRepo repositories.CategoryRepository,
	files storage.Storage,
) AdminService {
	return &AdminServiceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		messageRepo:  messageRepo,
		categoryRepo: categoryRepo,
		files:        files,
	}
}

func (s *AdminServiceImpl) ListUsers() ([]dto.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(&u))
	}
	return out, nil
}

func (s *AdminServiceImpl) GetUser(id uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// UpdateUser - правка аккаунта из админки.
// Понижение последнего супер-админа запрещено.
func (s *AdminServiceImpl) UpdateUser(id uint, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.Role != nil {
		newRole := models.UserRole(*req.Role)
		if !models.ValidRole(newRole) {
			return nil, apperrors.NewBadRequestError("Invalid role")
		}
		if user.Role == models.UserRoleSuperAdmin && newRole != models.UserRoleSuperAdmin {
			if err := s.ensureNotLastSuperAdmin(); err != nil {
				return nil, err
			}
		}
		user.Role = newRole
	}

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.ProviderID != nil {
		user.ProviderID = req.ProviderID
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}

func (s *AdminServiceImpl) DeleteUser(id uint, actor Actor) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return apperrors.ErrUserNotFound
	}

	if user.Role == models.UserRoleSuperAdmin {
		if err := s.ensureNotLastSuperAdmin(); err != nil {
			return err
		}
	}

	if err := s.userRepo.Delete(id); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("user deleted by admin", "user_id", id, "actor_id", actor.UserID)
	return nil
}

func (s *AdminServiceImpl) ensureNotLastSuperAdmin() error {
	count, err := s.userRepo.CountByRole(models.UserRoleSuperAdmin)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count <= 1 {
		return apperrors.ErrLastSuperAdmin
	}
	return nil
}

// HardDeleteProvider удаляет карточку насовсем: фото с диска,
// ссылку из аккаунта владельца и саму запись.
func (s *AdminServiceImpl) HardDeleteProvider(id uint) error {
	provider, err := s.providerRepo.FindByID(id)
	if err != nil {
		return apperrors.ErrProviderNotFound
	}

	if provider.Photo != "" {
		if err := s.files.Delete(context.Background(), provider.Photo); err != nil {
			logger.Warn("failed to delete provider photo", "provider_id", id, "error", err)
		}
	}

	if owner, err := s.userRepo.FindByProviderID(id); err == nil {
		owner.ProviderID = nil
		if err := s.userRepo.Update(owner); err != nil {
			return apperrors.InternalError(err)
		}
	}

	if err := s.providerRepo.HardDelete(id); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AdminServiceImpl) ToggleProviderActive(id uint) (*dto.ProviderResponse, error) {
	provider, err := s.providerRepo.FindByID(id)
	if err != nil {
		return nil, apperrors.ErrProviderNotFound
	}

	provider.IsActive = !provider.IsActive
	if err := s.providerRepo.Update(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := toProviderResponse(provider)
	return &resp, nil
}

func (s *AdminServiceImpl) Stats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	var err error
	if stats.TotalUsers, err = s.userRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalProviders, err = s.providerRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.ActiveProviders, err = s.providerRepo.CountActive(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalMessages, err = s.messageRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}
	if stats.TotalCategories, err = s.categoryRepo.CountAll(); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return stats, nil
}

func toUserResponse(u *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		ProviderID: u.ProviderID,
		Role:       string(u.Role),
		IsActive:   u.IsActive,
	}
}
