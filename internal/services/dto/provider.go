package dto

import "time"

// ProviderResponse - карточка провайдера в ответах API
type ProviderResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Website     string    `json:"website,omitempty"`
	Address     string    `json:"address,omitempty"`
	Photo       string    `json:"photo,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CreateProviderRequest - JSON-создание провайдера (без аккаунта)
type CreateProviderRequest struct {
	Name        string  `json:"name" binding:"required" validate:"required"`
	Category    string  `json:"category" binding:"required" validate:"required"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude" binding:"required" validate:"latitude"`
	Longitude   float64 `json:"longitude" binding:"required" validate:"longitude"`
	Phone       string  `json:"phone"`
	Email       string  `json:"email" validate:"omitempty,email"`
	Website     string  `json:"website"`
	Address     string  `json:"address"`
	Photo       string  `json:"photo"`
}

// UpdateProviderInput - частичное обновление из multipart-формы.
// nil-поле означает "не трогать", как Optional[...] в исходном API.
type UpdateProviderInput struct {
	Name        *string
	Category    *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Phone       *string
	Address     *string
	// Новый URL фото; пустая строка - фото не менялось
	PhotoURL string
}
