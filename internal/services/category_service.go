package services

import (
	"provider_map/internal/models"
	"provider_map/internal/repositories"
	"provider_map/internal/services/dto"
	"provider_map/pkg/apperrors"
)

type CategoryService interface {
	List() (*dto.CategoriesResponse, error)
	Create(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(value string) error
}

type CategoryServiceImpl struct {
	categoryRepo repositories.CategoryRepository
}

func NewCategoryService(categoryRepo repositories.CategoryRepository) CategoryService {
	return &CategoryServiceImpl{categoryRepo: categoryRepo}
}

func (s *CategoryServiceImpl) List() (*dto.CategoriesResponse, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.CategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(categories))}
	for _, c := range categories {
		resp.Categories = append(resp.Categories, dto.CategoryResponse{Value: c.Value, Label: c.Label})
	}
	return resp, nil
}

func (s *CategoryServiceImpl) Create(req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &models.Category{Value: req.Value, Label: req.Label}

	if err := s.categoryRepo.Create(category); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists("category", "Category already exists")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.CategoryResponse{Value: category.Value, Label: category.Label}, nil
}

func (s *CategoryServiceImpl) Delete(value string) error {
	if err := s.categoryRepo.Delete(value); err != nil {
		if apperrors.Is(err, repositories.ErrCategoryNotFound) {
			return apperrors.ErrCategoryNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
