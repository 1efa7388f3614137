package repositories

import (
	"errors"

	"gorm.io/gorm"

	"provider_map/internal/models"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type CategoryRepository interface {
	FindAll() ([]models.Category, error)
	FindByValue(value string) (*models.Category, error)
	Create(category *models.Category) error
	Delete(value string) error
	CountAll() (int64, error)
}

type CategoryRepositoryImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{db: db}
}

func (r *CategoryRepositoryImpl) FindAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("value").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepositoryImpl) FindByValue(value string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("value = ?", value).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepositoryImpl) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoryAlreadyExists
		}
		return err
	}
	return nil
}

func (r *CategoryRepositoryImpl) Delete(value string) error {
	res := r.db.Delete(&models.Category{}, "value = ?", value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (r *CategoryRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Category{}).Count(&count).Error
	return count, err
}
