package dto

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// CategoriesResponse - обертка списка, как в исходном /api/categories
type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateCategoryRequest struct {
	Value string `json:"value" binding:"required" validate:"required"`
	Label string `json:"label" binding:"required" validate:"required"`
}
