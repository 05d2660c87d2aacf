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

type TagRepository struct {
	log          *logger.Logger
	mu           sync.RWMutex
	tags         map[int64]*model.Tag
	tagsByName   map[string]*model.Tag
	postTags     map[int64]map[int64]bool
	postsByTagID map[int64]map[int64]bool
	nextID       int64
}

func NewTagRepository(log *logger.Logger) *TagRepository {
	return &TagRepository{
		log:          log,
		tags:         make(map[int64]*model.Tag),
		tagsByName:   make(map[string]*model.Tag),
		postTags:     make(map[int64]map[int64]bool),
		postsByTagID: make(map[int64]map[int64]bool),
		nextID:       1,
	}
}

// HasTag implements the post repository's TagMembership hook.
func (t *TagRepository) HasTag(postID int64, tagID int64) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.postsByTagID[tagID][postID]
}

func (t *TagRepository) GetAll(ctx context.Context) ([]*model.Tag, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]*model.Tag, 0, len(t.tags))
	for _, tag := range t.tags {
		result = append(result, t.withCount(tag))
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (t *TagRepository) GetByID(ctx context.Context, id int64) (*model.Tag, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	tag, exists := t.tags[id]
	if !exists {
		t.log.Debug("Tag not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrTagNotFound
	}
	return t.withCount(tag), nil
}

func (t *TagRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []*model.Tag
	seen := make(map[int64]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if tag, exists := t.tags[id]; exists {
			result = append(result, t.withCount(tag))
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (t *TagRepository) FindByNames(ctx context.Context, names []string) ([]*model.Tag, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []*model.Tag
	for _, name := range names {
		if tag, exists := t.tagsByName[strings.ToLower(name)]; exists {
			result = append(result, t.withCount(tag))
		}
	}
	return result, nil
}

func (t *TagRepository) FindByPost(ctx context.Context, postID int64) ([]*model.Tag, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var result []*model.Tag
	for tagID := range t.postTags[postID] {
		if tag, exists := t.tags[tagID]; exists {
			result = append(result, t.withCount(tag))
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (t *TagRepository) Create(ctx context.Context, name string) (*model.Tag, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.tagsByName[strings.ToLower(name)]; exists {
		return nil, custom_errors.ErrTagAlreadyExists
	}

	tag := &model.Tag{ID: t.nextID, Name: name}
	t.nextID++

	t.tags[tag.ID] = tag
	t.tagsByName[strings.ToLower(name)] = tag

	tagCopy := *tag
	return &tagCopy, nil
}

func (t *TagRepository) Delete(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	tag, exists := t.tags[id]
	if !exists {
		return custom_errors.ErrTagNotFound
	}

	delete(t.tags, id)
	delete(t.tagsByName, strings.ToLower(tag.Name))
	for postID := range t.postsByTagID[id] {
		delete(t.postTags[postID], id)
	}
	delete(t.postsByTagID, id)
	return nil
}

func (t *TagRepository) TagPost(ctx context.Context, postID int64, tagIDs []int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, tagID := range tagIDs {
		if _, exists := t.tags[tagID]; !exists {
			return custom_errors.ErrTagNotFound
		}
		if t.postTags[postID] == nil {
			t.postTags[postID] = make(map[int64]bool)
		}
		if t.postsByTagID[tagID] == nil {
			t.postsByTagID[tagID] = make(map[int64]bool)
		}
		t.postTags[postID][tagID] = true
		t.postsByTagID[tagID][postID] = true
	}
	return nil
}

func (t *TagRepository) ReplacePostTags(ctx context.Context, postID int64, tagIDs []int64) error {
	t.mu.Lock()
	for tagID := range t.postTags[postID] {
		delete(t.postsByTagID[tagID], postID)
	}
	delete(t.postTags, postID)
	t.mu.Unlock()

	return t.TagPost(ctx, postID, tagIDs)
}

// withCount must be called with the lock held.
func (t *TagRepository) withCount(tag *model.Tag) *model.Tag {
	tagCopy := *tag
	tagCopy.PostCount = int64(len(t.postsByTagID[tag.ID]))
	return &tagCopy
}
