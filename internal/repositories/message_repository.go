package repositories

import (
	"gorm.io/gorm"

	"provider_map/internal/models"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByProviderID(providerID uint) ([]models.Message, error)
	CountAll() (int64, error)
}

type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) FindByProviderID(providerID uint) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("provider_id = ?", providerID).Order("created_at desc").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *MessageRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Count(&count).Error
	return count, err
}
