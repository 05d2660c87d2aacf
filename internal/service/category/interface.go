package category_service

import (
	"context"

	"fanfic-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/category --outpkg mocks --filename CategoryService.go
type Service interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	GetCategoryByID(ctx context.Context, id int64) (*model.Category, error)
	CreateCategory(ctx context.Context, name string) (*model.Category, error)
	// DeleteCategory removes an empty category. A category that still
	// has posts is protected; deleting an unknown id is an error.
	DeleteCategory(ctx context.Context, id int64) error
}
