package models

// Category - справочник категорий. Ключ стабильный (value), label для показа.
type Category struct {
	Value string `gorm:"primaryKey"`
	Label string `gorm:"not null"`
}
