package models

type User struct {
	BaseModel
	Username     string   `gorm:"uniqueIndex;not null"`
	Email        string   `gorm:"uniqueIndex;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null;default:'user'"`
	IsActive     bool     `gorm:"default:true"`
	// Каждый аккаунт владеет максимум одним провайдером
	ProviderID *uint `gorm:"uniqueIndex"`

	Provider *ServiceProvider `gorm:"foreignKey:ProviderID"`
}
