package services

import (
	"gorm.io/gorm"

	"provider_map/internal/config"
	"provider_map/internal/email"
	"provider_map/internal/repositories"
	"provider_map/internal/storage"
)

// ServiceContainer собирает все сервисы приложения
type ServiceContainer struct {
	Auth     AuthService
	Provider ProviderService
	Message  MessageService
	Category CategoryService
	Admin    AdminService
	Upload   UploadService
}

// NewServiceContainer создает репозитории и сервисы поверх подключения к БД
func NewServiceContainer(db *gorm.DB, cfg *config.Config, files storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	providerRepo := repositories.NewProviderRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	sender := email.NewSender(cfg)

	return &ServiceContainer{
		Auth:     NewAuthService(userRepo, providerRepo),
		Provider: NewProviderService(providerRepo, userRepo, files),
		Message:  NewMessageService(messageRepo, providerRepo, userRepo, sender),
		Category: NewCategoryService(categoryRepo),
		Admin:    NewAdminService(userRepo, providerRepo, messageRepo, categoryRepo, files),
		Upload:   NewUploadService(files, cfg.Upload),
	}
}
