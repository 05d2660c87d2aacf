package post_repository

import (
	"context"

	"fanfic-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/post --outpkg mocks --filename PostRepository.go
type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	// ListPublished returns published posts matching the optional filter
	// pair, newest first. Unknown filter ids match nothing.
	ListPublished(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	// ListDrafts returns the given author's draft posts, newest first.
	ListDrafts(ctx context.Context, authorID int64) ([]*model.Post, error)
}
