package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	post_memory "fanfic-blog-service/internal/repository/post/memory"
)

func int64Ptr(v int64) *int64 { return &v }

func TestCategoryRepository_Create(t *testing.T) {
	repo := NewCategoryRepository(logger.New("test"), nil)
	ctx := context.Background()

	category, err := repo.Create(ctx, "Fantasy")
	require.NoError(t, err)
	assert.Equal(t, "Fantasy", category.Name)
	assert.NotZero(t, category.ID)

	// Uniqueness is case-insensitive.
	_, err = repo.Create(ctx, "fantasy")
	assert.ErrorIs(t, err, custom_errors.ErrCategoryAlreadyExists)
}

func TestCategoryRepository_GetByID(t *testing.T) {
	repo := NewCategoryRepository(logger.New("test"), nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Fantasy")
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = repo.GetByID(ctx, 404)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
}

func TestCategoryRepository_Delete(t *testing.T) {
	repo := NewCategoryRepository(logger.New("test"), nil)
	ctx := context.Background()

	created, err := repo.Create(ctx, "Fantasy")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)

	// The name is free for reuse after deletion.
	_, err = repo.Create(ctx, "fantasy")
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, created.ID), custom_errors.ErrCategoryNotFound)
}

func TestCategoryRepository_PostCount(t *testing.T) {
	ctx := context.Background()
	log := logger.New("test")

	repo := NewCategoryRepository(log, nil)
	postRepo := post_memory.NewPostRepository(log, nil)
	repo.SetPostCounter(postRepo)

	fantasy, err := repo.Create(ctx, "Fantasy")
	require.NoError(t, err)
	empty, err := repo.Create(ctx, "Adventure")
	require.NoError(t, err)

	for _, status := range []model.PostStatus{model.PostStatusPublished, model.PostStatusDraft} {
		_, err = postRepo.Create(ctx, &model.Post{
			AuthorID:   1,
			Title:      "Post",
			CategoryID: int64Ptr(fantasy.ID),
			Status:     status,
		})
		require.NoError(t, err)
	}

	// Drafts count too; the aggregate spans every post in the category.
	count, err := repo.PostCount(ctx, fantasy.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.PostCount(ctx, empty.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)

	_, err = repo.PostCount(ctx, 404)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
}

func TestCategoryRepository_List(t *testing.T) {
	ctx := context.Background()
	log := logger.New("test")

	repo := NewCategoryRepository(log, nil)
	postRepo := post_memory.NewPostRepository(log, nil)
	repo.SetPostCounter(postRepo)

	fantasy, err := repo.Create(ctx, "Fantasy")
	require.NoError(t, err)
	adventure, err := repo.Create(ctx, "Adventure")
	require.NoError(t, err)

	_, err = postRepo.Create(ctx, &model.Post{
		AuthorID:   1,
		Title:      "Post",
		CategoryID: int64Ptr(fantasy.ID),
		Status:     model.PostStatusPublished,
	})
	require.NoError(t, err)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by name, counts filled in.
	assert.Equal(t, adventure.ID, got[0].ID)
	assert.Equal(t, int64(0), got[0].PostCount)
	assert.Equal(t, fantasy.ID, got[1].ID)
	assert.Equal(t, int64(1), got[1].PostCount)
}
