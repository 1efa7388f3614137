package handlers

import (
	"provider_map/internal/services"
	"provider_map/internal/validator"
)

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	Auth     *AuthHandler
	Provider *ProviderHandler
	Message  *MessageHandler
	Category *CategoryHandler
	Upload   *UploadHandler
	Admin    *AdminHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:     NewAuthHandler(base, sc.Auth, sc.Upload),
		Provider: NewProviderHandler(base, sc.Provider, sc.Upload),
		Message:  NewMessageHandler(base, sc.Message),
		Category: NewCategoryHandler(base, sc.Category),
		Upload:   NewUploadHandler(base, sc.Upload),
		Admin:    NewAdminHandler(base, sc.Admin),
	}
}
