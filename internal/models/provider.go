package models

import "time"

// ServiceProvider - карточка мастера на карте.
// Photo хранит относительный путь вида /uploads/<uuid>.jpg
type ServiceProvider struct {
	BaseModel
	Name        string  `gorm:"not null;index"`
	Category    string  `gorm:"not null;index"`
	Description string  `gorm:"type:text"`
	Latitude    float64 `gorm:"not null"`
	Longitude   float64 `gorm:"not null"`
	Phone       string
	Email       string
	Website     string
	Address     string
	Photo       string
	IsActive    bool      `gorm:"default:true"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`

	Messages []Message `gorm:"foreignKey:ProviderID"`
}
