package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
)

func newRepo(t *testing.T) *TagRepository {
	t.Helper()
	return NewTagRepository(logger.New("test"))
}

func TestTagRepository_Create(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	tag, err := repo.Create(ctx, "magic")
	require.NoError(t, err)
	assert.Equal(t, "magic", tag.Name)
	assert.NotZero(t, tag.ID)

	// Uniqueness is case-insensitive.
	_, err = repo.Create(ctx, "Magic")
	assert.ErrorIs(t, err, custom_errors.ErrTagAlreadyExists)
}

func TestTagRepository_GetByIDs(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	magic, err := repo.Create(ctx, "magic")
	require.NoError(t, err)
	dragons, err := repo.Create(ctx, "dragons")
	require.NoError(t, err)

	// Missing ids are omitted, duplicates collapse.
	got, err := repo.GetByIDs(ctx, []int64{magic.ID, dragons.ID, magic.ID, 404})
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.GetByIDs(ctx, []int64{404})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTagRepository_FindByNames(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	magic, err := repo.Create(ctx, "magic")
	require.NoError(t, err)
	require.NoError(t, repo.TagPost(ctx, 10, []int64{magic.ID}))

	got, err := repo.FindByNames(ctx, []string{"MAGIC", "unknown"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "magic", got[0].Name)
	assert.Equal(t, int64(1), got[0].PostCount)
}

func TestTagRepository_PostMembership(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	magic, err := repo.Create(ctx, "magic")
	require.NoError(t, err)
	dragons, err := repo.Create(ctx, "dragons")
	require.NoError(t, err)

	require.NoError(t, repo.TagPost(ctx, 10, []int64{magic.ID, dragons.ID}))
	require.NoError(t, repo.TagPost(ctx, 11, []int64{magic.ID}))

	assert.True(t, repo.HasTag(10, magic.ID))
	assert.True(t, repo.HasTag(11, magic.ID))
	assert.False(t, repo.HasTag(11, dragons.ID))

	// Embedded tags carry the same live counts as direct lookups.
	got, err := repo.FindByPost(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, []*model.Tag{
		{ID: dragons.ID, Name: "dragons", PostCount: 1},
		{ID: magic.ID, Name: "magic", PostCount: 2},
	}, got)

	// Counts reflect the join table.
	tag, err := repo.GetByID(ctx, magic.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.PostCount)

	// Replacing memberships drops the old links.
	require.NoError(t, repo.ReplacePostTags(ctx, 10, []int64{dragons.ID}))
	assert.False(t, repo.HasTag(10, magic.ID))
	assert.True(t, repo.HasTag(10, dragons.ID))

	tag, err = repo.GetByID(ctx, magic.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tag.PostCount)
}

func TestTagRepository_TagPost_UnknownTag(t *testing.T) {
	repo := newRepo(t)
	err := repo.TagPost(context.Background(), 10, []int64{404})
	assert.ErrorIs(t, err, custom_errors.ErrTagNotFound)
}

func TestTagRepository_Delete(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	magic, err := repo.Create(ctx, "magic")
	require.NoError(t, err)
	require.NoError(t, repo.TagPost(ctx, 10, []int64{magic.ID}))

	require.NoError(t, repo.Delete(ctx, magic.ID))

	_, err = repo.GetByID(ctx, magic.ID)
	assert.ErrorIs(t, err, custom_errors.ErrTagNotFound)
	assert.False(t, repo.HasTag(10, magic.ID))

	// The name is free for reuse after deletion.
	_, err = repo.Create(ctx, "Magic")
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.Delete(ctx, magic.ID), custom_errors.ErrTagNotFound)
}

func TestTagRepository_GetAll(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	dragons, err := repo.Create(ctx, "dragons")
	require.NoError(t, err)
	magic, err := repo.Create(ctx, "magic")
	require.NoError(t, err)
	require.NoError(t, repo.TagPost(ctx, 10, []int64{magic.ID}))

	got, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// Ordered by name.
	assert.Equal(t, []*model.Tag{
		{ID: dragons.ID, Name: "dragons", PostCount: 0},
		{ID: magic.ID, Name: "magic", PostCount: 1},
	}, got)
}
