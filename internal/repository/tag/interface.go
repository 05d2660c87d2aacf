package tag_repository

import (
	"context"

	"fanfic-blog-service/internal/model"
)

//go:generate mockery --name Repository --dir . --output ../../../mocks/tag --outpkg mocks --filename TagRepository.go
type Repository interface {
	// GetAll returns every tag with its live post count, ordered by name.
	GetAll(ctx context.Context) ([]*model.Tag, error)
	GetByID(ctx context.Context, id int64) (*model.Tag, error)
	// GetByIDs returns the tags that exist among ids; missing ids are
	// simply absent from the result.
	GetByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error)
	// FindByNames matches names case-insensitively.
	FindByNames(ctx context.Context, names []string) ([]*model.Tag, error)
	FindByPost(ctx context.Context, postID int64) ([]*model.Tag, error)
	Create(ctx context.Context, name string) (*model.Tag, error)
	Delete(ctx context.Context, id int64) error
	TagPost(ctx context.Context, postID int64, tagIDs []int64) error
	ReplacePostTags(ctx context.Context, postID int64, tagIDs []int64) error
}
