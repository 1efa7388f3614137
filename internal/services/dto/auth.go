package dto

// RegisterInput - данные регистрации провайдера.
// Приходит multipart-формой; фото обрабатывается отдельно и сюда
// попадает уже сохраненным URL.
type RegisterInput struct {
	Username    string  `form:"username" validate:"required,min=3"`
	Email       string  `form:"email" validate:"required,email"`
	Password    string  `form:"password" validate:"required,min=6"`
	Name        string  `form:"name" validate:"required"`
	Category    string  `form:"category" validate:"required"`
	Description string  `form:"description"`
	Latitude    float64 `form:"latitude" validate:"latitude"`
	Longitude   float64 `form:"longitude" validate:"longitude"`
	Phone       string  `form:"phone"`
	Address     string  `form:"address"`
	PhotoURL    string  `form:"-"`
}

// LoginRequest - form-encoded логин, как OAuth2PasswordRequestForm
type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

// TokenResponse повторяет схему Token исходного API
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      uint   `json:"user_id"`
	ProviderID  *uint  `json:"provider_id,omitempty"`
	Role        string `json:"role,omitempty"`
}

type UserResponse struct {
	ID         uint   `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	ProviderID *uint  `json:"provider_id,omitempty"`
	Role       string `json:"role"`
	IsActive   bool   `json:"is_active"`
}
