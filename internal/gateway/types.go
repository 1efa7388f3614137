package gateway

import "time"

// Типы зеркалят JSON-схемы API; шлюз не переиспользует серверные DTO,
// чтобы фронтенд зависел только от проводного формата.

type Provider struct {
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

type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type categoriesEnvelope struct {
	Categories []Category `json:"categories"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
	ProviderID  *uint  `json:"provider_id,omitempty"`
	Role        string `json:"role,omitempty"`
}

type User struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProviderID *uint  `json:"provider_id,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
}

type Message struct {
	ID          uint      `json:"id"`
	ProviderID  uint      `json:"provider_id"`
	ClientName  string    `json:"client_name"`
	ClientPhone string    `json:"client_phone"`
	ClientEmail string    `json:"client_email,omitempty"`
	MessageText string    `json:"message_text"`
	CreatedAt   time.Time `json:"created_at"`
}

type Stats struct {
	TotalUsers      int64 `json:"total_users"`
	TotalProviders  int64 `json:"total_providers"`
	ActiveProviders int64 `json:"active_providers"`
	TotalMessages   int64 `json:"total_messages"`
	TotalCategories int64 `json:"total_categories"`
}

// ProviderFilter - параметры GET /api/providers
type ProviderFilter struct {
	Category string
	Lat      *float64
	Lng      *float64
	Radius   *float64
}

// MessageForm - тело POST /api/providers/:id/messages
type MessageForm struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ClientEmail string `json:"client_email,omitempty"`
	MessageText string `json:"message_text"`
}

// RegisterForm - multipart-поля POST /api/auth/register
type RegisterForm struct {
	Username    string
	Email       string
	Password    string
	Name        string
	Category    string
	Description string
	Latitude    float64
	Longitude   float64
	Phone       string
	Address     string
	// Photo: содержимое и имя файла, nil если фото не приложено
	PhotoName string
	Photo     []byte
}

// ProviderUpdateForm - multipart-поля PUT /api/providers/:id.
// nil-поле не отправляется и не меняет карточку.
type ProviderUpdateForm struct {
	Name        *string
	Category    *string
	Description *string
	Latitude    *float64
	Longitude   *float64
	Phone       *string
	Address     *string
	PhotoName   string
	Photo       []byte
}

// UserUpdateForm - тело PUT /api/admin/users/:id
type UserUpdateForm struct {
	Username   *string `json:"username,omitempty"`
	Email      *string `json:"email,omitempty"`
	Role       *string `json:"role,omitempty"`
	IsActive   *bool   `json:"is_active,omitempty"`
	ProviderID *uint   `json:"provider_id,omitempty"`
}
