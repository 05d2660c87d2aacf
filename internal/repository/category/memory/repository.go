package memory

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
)

// PostCounter answers per-category post counts. The memory post
// repository implements it.
type PostCounter interface {
	CountByCategory(categoryID int64) int64
}

type CategoryRepository struct {
	log        *logger.Logger
	posts      PostCounter
	mu         sync.RWMutex
	categories map[int64]*model.Category
	byName     map[string]*model.Category
	nextID     int64
}

// NewCategoryRepository returns an in-memory category repository. posts
// may be nil, in which case all post counts read as zero.
func NewCategoryRepository(log *logger.Logger, posts PostCounter) *CategoryRepository {
	return &CategoryRepository{
		log:        log,
		posts:      posts,
		categories: make(map[int64]*model.Category),
		byName:     make(map[string]*model.Category),
		nextID:     1,
	}
}

// SetPostCounter wires the post repository in after construction; the
// two memory repositories reference each other.
func (c *CategoryRepository) SetPostCounter(posts PostCounter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = posts
}

func (c *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]*model.Category, 0, len(c.categories))
	for _, category := range c.categories {
		result = append(result, c.withCount(category))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	category, exists := c.categories[id]
	if !exists {
		c.log.Debug("Category not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrCategoryNotFound
	}
	return c.withCount(category), nil
}

func (c *CategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.byName[strings.ToLower(name)]; exists {
		return nil, custom_errors.ErrCategoryAlreadyExists
	}

	category := &model.Category{ID: c.nextID, Name: name}
	c.nextID++

	c.categories[category.ID] = category
	c.byName[strings.ToLower(name)] = category

	categoryCopy := *category
	return &categoryCopy, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	category, exists := c.categories[id]
	if !exists {
		return custom_errors.ErrCategoryNotFound
	}

	delete(c.categories, id)
	delete(c.byName, strings.ToLower(category.Name))
	return nil
}

func (c *CategoryRepository) PostCount(ctx context.Context, id int64) (int64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, exists := c.categories[id]; !exists {
		return 0, custom_errors.ErrCategoryNotFound
	}
	if c.posts == nil {
		return 0, nil
	}
	return c.posts.CountByCategory(id), nil
}

// withCount must be called with the lock held.
func (c *CategoryRepository) withCount(category *model.Category) *model.Category {
	categoryCopy := *category
	if c.posts != nil {
		categoryCopy.PostCount = c.posts.CountByCategory(category.ID)
	}
	return &categoryCopy
}
