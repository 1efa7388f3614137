package services

import (
	"provider_map/internal/auth"
	"provider_map/internal/models"
	"provider_map/internal/repositories"
	"provider_map/internal/services/dto"
	"provider_map/pkg/apperrors"
)

type AuthService interface {
	Register(input *dto.RegisterInput) (*dto.TokenResponse, error)
	Login(req *dto.LoginRequest) (*dto.TokenResponse, error)
	Me(userID uint) (*dto.UserResponse, error)
	MyProvider(userID uint) (*dto.ProviderResponse, error)
}

type AuthServiceImpl struct {
	userRepo     repositories.UserRepository
	providerRepo repositories.ProviderRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	providerRepo repositories.ProviderRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
	}
}

// Register - регистрация провайдера: создаем карточку и аккаунт,
// сразу выдаем токен, как делал исходный API.
func (s *AuthServiceImpl) Register(input *dto.RegisterInput) (*dto.TokenResponse, error) {
	if err := auth.ValidatePassword(input.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	// Дубликаты проверяем до записи, чтобы вернуть осмысленный detail
	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return nil, apperrors.ErrAlreadyExists("user", "Username already registered")
	}
	if _, err := s.userRepo.FindByEmail(input.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists("user", "Email already registered")
	}

	provider := &models.ServiceProvider{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
		Phone:       input.Phone,
		Address:     input.Address,
		Photo:       input.PhotoURL,
		IsActive:    true,
	}
	if err := s.providerRepo.Create(provider); err != nil {
		return nil, apperrors.InternalError(err)
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         models.UserRoleUser,
		IsActive:     true,
		ProviderID:   &provider.ID,
	}
	if err := s.userRepo.Create(user); err != nil {
		// Карточка без аккаунта не нужна
		_ = s.providerRepo.HardDelete(provider.ID)
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists("user", "Username already registered")
		}
		return nil, apperrors.InternalError(err)
	}

	return s.buildToken(user)
}

// Login - аутентификация по username/password
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.buildToken(user)
}

func (s *AuthServiceImpl) buildToken(user *models.User) (*dto.TokenResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserID:      user.ID,
		ProviderID:  user.ProviderID,
		Role:        string(user.Role),
	}, nil
}

func (s *AuthServiceImpl) Me(userID uint) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Email:      user.Email,
		ProviderID: user.ProviderID,
		Role:       string(user.Role),
		IsActive:   user.IsActive,
	}, nil
}

func (s *AuthServiceImpl) MyProvider(userID uint) (*dto.ProviderResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.ProviderID == nil {
		return nil, apperrors.ErrProviderNotFound
	}

	provider, err := s.providerRepo.FindByID(*user.ProviderID)
	if err != nil {
		return nil, apperrors.ErrProviderNotFound
	}

	resp := toProviderResponse(provider)
	return &resp, nil
}
