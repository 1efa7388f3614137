package repositories

import (
	"errors"

	"gorm.io/gorm"

	"provider_map/internal/models"
)

var ErrProviderNotFound = errors.New("provider not found")

// ProviderFilter - фильтр списка провайдеров.
// Радиус считается как в исходном API: евклидово расстояние по градусам.
type ProviderFilter struct {
	Category string
	Lat      *float64
	Lng      *float64
	Radius   *float64
	// ActiveOnly=false используется только админкой
	ActiveOnly bool
}

type ProviderRepository interface {
	FindByID(id uint) (*models.ServiceProvider, error)
	FindWithFilter(filter ProviderFilter) ([]models.ServiceProvider, error)
	Create(provider *models.ServiceProvider) error
	Update(provider *models.ServiceProvider) error
	HardDelete(id uint) error
	CountAll() (int64, error)
	CountActive() (int64, error)
}

type ProviderRepositoryImpl struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) ProviderRepository {
	return &ProviderRepositoryImpl{db: db}
}

func (r *ProviderRepositoryImpl) FindByID(id uint) (*models.ServiceProvider, error) {
	var provider models.ServiceProvider
	if err := r.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	return &provider, nil
}

func (r *ProviderRepositoryImpl) FindWithFilter(filter ProviderFilter) ([]models.ServiceProvider, error) {
	q := r.db.Model(&models.ServiceProvider{})

	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var providers []models.ServiceProvider
	if err := q.Order("id").Find(&providers).Error; err != nil {
		return nil, err
	}

	// Радиус фильтруется после выборки, как делал исходный API
	if filter.Lat != nil && filter.Lng != nil && filter.Radius != nil {
		filtered := providers[:0]
		for _, p := range providers {
			dLat := p.Latitude - *filter.Lat
			dLng := p.Longitude - *filter.Lng
			if dLat*dLat+dLng*dLng <= *filter.Radius**filter.Radius {
				filtered = append(filtered, p)
			}
		}
		providers = filtered
	}

	return providers, nil
}

func (r *ProviderRepositoryImpl) Create(provider *models.ServiceProvider) error {
	return r.db.Create(provider).Error
}

func (r *ProviderRepositoryImpl) Update(provider *models.ServiceProvider) error {
	return r.db.Save(provider).Error
}

func (r *ProviderRepositoryImpl) HardDelete(id uint) error {
	return r.db.Delete(&models.ServiceProvider{}, id).Error
}

func (r *ProviderRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceProvider{}).Count(&count).Error
	return count, err
}

func (r *ProviderRepositoryImpl) CountActive() (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceProvider{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}
