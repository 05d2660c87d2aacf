package category_repository

import (
	"context"

	"fanfic-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/category --outpkg mocks --filename CategoryRepository.go
type Repository interface {
	// List returns every category with its live post count, ordered by name.
	List(ctx context.Context) ([]*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	// Create enforces case-insensitive name uniqueness at the storage layer.
	Create(ctx context.Context, name string) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
	// PostCount returns the number of posts currently assigned to the
	// category, computed from the posts table.
	PostCount(ctx context.Context, id int64) (int64, error)
}
