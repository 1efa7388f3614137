package dto

// UpdateUserRequest - правка пользователя из админки, все поля опциональны
type UpdateUserRequest struct {
	Username   *string `json:"username"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Role       *string `json:"role"`
	IsActive   *bool   `json:"is_active"`
	ProviderID *uint   `json:"provider_id"`
}

type StatsResponse struct {
	TotalUsers      int64 `json:"total_users"`
	TotalProviders  int64 `json:"total_providers"`
	ActiveProviders int64 `json:"active_providers"`
	TotalMessages   int64 `json:"total_messages"`
	TotalCategories int64 `json:"total_categories"`
}
