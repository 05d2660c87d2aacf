package post_service

import (
	"context"

	"fanfic-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/post --outpkg mocks --filename PostService.go
type Service interface {
	// ListPublished returns published posts matching the optional
	// category/tag filter pair. Unknown filter ids yield an empty
	// result, not an error.
	ListPublished(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, error)
	// ListDrafts returns the caller's own drafts only.
	ListDrafts(ctx context.Context, user *model.User) ([]*model.PostDetailed, error)
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
	UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (*model.PostDetailed, error)
	DeletePost(ctx context.Context, id int64) error
}
