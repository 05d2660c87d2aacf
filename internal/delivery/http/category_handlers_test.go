package delivery_http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/model"
)

func TestHandler_ListCategories(t *testing.T) {
	f := newFixture(t)
	f.categoryService.On("ListCategories", mock.Anything).Return([]*model.Category{
		{ID: 1, Name: "Fantasy", PostCount: 3},
	}, nil)

	rec := f.do(t, http.MethodGet, "/api/v1/categories", nil, false)

	assert.Equal(t, http.StatusOK, rec.Code)
	var got []*model.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].PostCount)
}

func TestHandler_CreateCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.categoryService.On("CreateCategory", mock.Anything, "Fantasy").Return(&model.Category{ID: 1, Name: "Fantasy"}, nil)

		rec := f.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Fantasy"}, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		f.categoryService.AssertExpectations(t)
	})

	t.Run("Duplicate name conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.categoryService.On("CreateCategory", mock.Anything, "fantasy").Return(nil, custom_errors.ErrCategoryAlreadyExists)

		rec := f.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "fantasy"}, true)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Requires authentication", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "Fantasy"}, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.categoryService.AssertNotCalled(t, "CreateCategory")
	})

	t.Run("Name too short", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/categories", map[string]any{"name": "x"}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.categoryService.AssertNotCalled(t, "CreateCategory")
	})
}

func TestHandler_DeleteCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.categoryService.On("DeleteCategory", mock.Anything, int64(1)).Return(nil)

		rec := f.do(t, http.MethodDelete, "/api/v1/categories/1", nil, true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Category still has posts", func(t *testing.T) {
		f := newFixture(t)
		f.categoryService.On("DeleteCategory", mock.Anything, int64(1)).Return(custom_errors.ErrCategoryHasPosts)

		rec := f.do(t, http.MethodDelete, "/api/v1/categories/1", nil, true)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newFixture(t)
		f.categoryService.On("DeleteCategory", mock.Anything, int64(404)).Return(custom_errors.ErrCategoryNotFound)

		rec := f.do(t, http.MethodDelete, "/api/v1/categories/404", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
