package memory

import (
	"context"
	"log/slog"
	"sync"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
)

type UserRepository struct {
	log    *logger.Logger
	mu     sync.RWMutex
	users  map[int64]*model.User
	nextID int64
}

func NewUserRepository(log *logger.Logger) *UserRepository {
	return &UserRepository{
		log:    log,
		users:  make(map[int64]*model.User),
		nextID: 1,
	}
}

// Add seeds a user, returning the stored copy. Test helper.
func (u *UserRepository) Add(user *model.User) *model.User {
	u.mu.Lock()
	defer u.mu.Unlock()

	stored := *user
	if stored.ID == 0 {
		stored.ID = u.nextID
		u.nextID++
	}
	u.users[stored.ID] = &stored

	result := stored
	return &result
}

func (u *UserRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	user, exists := u.users[id]
	if !exists {
		u.log.Debug("User not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrUserNotFound
	}

	result := *user
	return &result, nil
}
