package tag_service

import (
	"context"

	"fanfic-blog-service/internal/model"
)

//go:generate mockery --name Service --dir . --output ../../../mocks/tag --outpkg mocks --filename TagService.go
type Service interface {
	GetAllTags(ctx context.Context) ([]*model.Tag, error)
	GetTagByID(ctx context.Context, id int64) (*model.Tag, error)
	// GetTagByIDs returns the tags that exist among ids; missing ids
	// are silently omitted.
	GetTagByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error)
	// CreateTags resolves a set of free-text names into tag entities,
	// creating only the ones that do not already exist. Name matching
	// is case-insensitive.
	CreateTags(ctx context.Context, names []string) ([]*model.Tag, error)
	DeleteTag(ctx context.Context, id int64) error
}
