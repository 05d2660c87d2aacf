package user_repository

import (
	"context"

	"fanfic-blog-service/internal/model"
)

// Repository resolves caller identities. Credentials never pass through
// this service; callers arrive already authenticated.
//
//go:generate mockery --name Repository --dir . --output ../../../mocks/user --outpkg mocks --filename UserRepository.go
type Repository interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
