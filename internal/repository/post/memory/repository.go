package memory

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
)

// TagMembership answers post-tag membership questions for filtered
// listings. The memory tag repository implements it.
type TagMembership interface {
	HasTag(postID int64, tagID int64) bool
}

type PostRepository struct {
	log    *logger.Logger
	tags   TagMembership
	mu     sync.RWMutex
	posts  map[int64]*model.Post
	nextID int64
}

// NewPostRepository returns an in-memory post repository. tags may be
// nil, in which case tag-filtered listings match nothing.
func NewPostRepository(log *logger.Logger, tags TagMembership) *PostRepository {
	return &PostRepository{
		log:    log,
		tags:   tags,
		posts:  make(map[int64]*model.Post),
		nextID: 1,
	}
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	newPost := &model.Post{
		ID:          p.nextID,
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Content:     post.Content,
		CategoryID:  post.CategoryID,
		Status:      post.Status,
		ReadingTime: post.ReadingTime,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	p.nextID++

	p.posts[newPost.ID] = newPost

	result := *newPost
	return &result, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	post, exists := p.posts[id]
	if !exists {
		p.log.Debug("Post not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	result := *post
	return &result, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	post, exists := p.posts[id]
	if !exists {
		return nil, custom_errors.ErrPostNotFound
	}

	if update.Title != nil {
		post.Title = *update.Title
	}
	if update.Content != nil {
		post.Content = update.Content
	}
	if update.CategoryID != nil {
		categoryID := *update.CategoryID
		post.CategoryID = &categoryID
	}
	if update.Status != nil {
		post.Status = *update.Status
	}
	if update.ReadingTime != nil {
		post.ReadingTime = *update.ReadingTime
	}

	post.UpdatedAt = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	result := *post
	return &result, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.posts[id]; !exists {
		return custom_errors.ErrPostNotFound
	}

	delete(p.posts, id)
	return nil
}

func (p *PostRepository) ListPublished(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.Status != model.PostStatusPublished {
			continue
		}
		if filters.CategoryID != nil {
			if post.CategoryID == nil || *post.CategoryID != *filters.CategoryID {
				continue
			}
		}
		if filters.TagID != nil {
			if p.tags == nil || !p.tags.HasTag(post.ID, *filters.TagID) {
				continue
			}
		}

		postCopy := *post
		result = append(result, &postCopy)
	}

	sortByCreatedDesc(result)
	return result, nil
}

func (p *PostRepository) ListDrafts(ctx context.Context, authorID int64) ([]*model.Post, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var result []*model.Post
	for _, post := range p.posts {
		if post.AuthorID != authorID || post.Status != model.PostStatusDraft {
			continue
		}
		postCopy := *post
		result = append(result, &postCopy)
	}

	sortByCreatedDesc(result)
	return result, nil
}

// CountByCategory implements the category repository's PostCounter hook.
func (p *PostRepository) CountByCategory(categoryID int64) int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var count int64
	for _, post := range p.posts {
		if post.CategoryID != nil && *post.CategoryID == categoryID {
			count++
		}
	}
	return count
}

func sortByCreatedDesc(posts []*model.Post) {
	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Time.Equal(posts[j].CreatedAt.Time) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.Time.After(posts[j].CreatedAt.Time)
	})
}
