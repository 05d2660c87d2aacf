package delivery_http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	user_memory "fanfic-blog-service/internal/repository/user/memory"
	category_service_mock "fanfic-blog-service/mocks/category"
	post_service_mock "fanfic-blog-service/mocks/post"
	tag_service_mock "fanfic-blog-service/mocks/tag"
)

func int64Ptr(v int64) *int64 { return &v }

type handlerFixture struct {
	postService     *post_service_mock.Service
	categoryService *category_service_mock.Service
	tagService      *tag_service_mock.Service
	users           *user_memory.UserRepository
	author          *model.User
	router          http.Handler
}

func newFixture(t *testing.T) *handlerFixture {
	t.Helper()
	log := logger.New("test")

	f := &handlerFixture{
		postService:     new(post_service_mock.Service),
		categoryService: new(category_service_mock.Service),
		tagService:      new(tag_service_mock.Service),
		users:           user_memory.NewUserRepository(log),
	}
	f.author = f.users.Add(&model.User{Username: "author", Email: "author@example.com"})

	h := NewHandler(f.postService, f.categoryService, f.tagService, f.users, log)
	f.router = h.Routes()
	return f
}

func (f *handlerFixture) do(t *testing.T, method, target string, body any, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if authenticated {
		req.Header.Set("X-User-ID", "1")
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_ListPosts(t *testing.T) {
	t.Run("Filters forwarded to service", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("ListPublished", mock.Anything, &model.PostFilters{
			CategoryID: int64Ptr(3),
			TagID:      int64Ptr(2),
		}).Return([]*model.PostDetailed{}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/posts?categoryId=3&tagId=2", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.postService.AssertExpectations(t)
	})

	t.Run("No filters", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("ListPublished", mock.Anything, &model.PostFilters{}).Return([]*model.PostDetailed{
			{Post: &model.Post{ID: 10, Title: "Test Post", Status: model.PostStatusPublished}},
		}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/posts", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []*model.PostDetailed
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "Test Post", got[0].Post.Title)
	})

	t.Run("Malformed filter id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/posts?categoryId=abc", nil, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.postService.AssertNotCalled(t, "ListPublished")
	})
}

func TestHandler_GetPost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("GetPostByID", mock.Anything, int64(10)).Return(&model.PostDetailed{
			Post: &model.Post{ID: 10, Title: "Test Post"},
		}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/posts/10", nil, false)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("GetPostByID", mock.Anything, int64(404)).Return(nil, custom_errors.ErrPostNotFound)

		rec := f.do(t, http.MethodGet, "/api/v1/posts/404", nil, false)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Malformed id", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/posts/abc", nil, false)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.postService.AssertNotCalled(t, "GetPostByID")
	})
}

func TestHandler_ListDrafts(t *testing.T) {
	t.Run("Requires authentication", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/api/v1/posts/drafts", nil, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.postService.AssertNotCalled(t, "ListDrafts")
	})

	t.Run("Serves the caller's drafts", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("ListDrafts", mock.Anything, f.author).Return([]*model.PostDetailed{
			{Post: &model.Post{ID: 11, Title: "Draft", Status: model.PostStatusDraft}},
		}, nil)

		rec := f.do(t, http.MethodGet, "/api/v1/posts/drafts", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.postService.AssertExpectations(t)
	})
}

func TestHandler_CreatePost(t *testing.T) {
	validBody := map[string]any{
		"title":   "Test Post",
		"content": "content long enough to pass validation",
		"status":  "published",
	}

	t.Run("Requires authentication", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/posts", validBody, false)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		f.postService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("CreatePost", mock.Anything, mock.MatchedBy(func(dto *model.CreatePostDTO) bool {
			return dto.AuthorID == f.author.ID && dto.Title == "Test Post" && dto.Status == model.PostStatusPublished
		})).Return(&model.PostDetailed{
			Post:   &model.Post{ID: 10, AuthorID: f.author.ID, Title: "Test Post", Status: model.PostStatusPublished},
			Author: f.author,
		}, nil)

		rec := f.do(t, http.MethodPost, "/api/v1/posts", validBody, true)

		assert.Equal(t, http.StatusCreated, rec.Code)
		f.postService.AssertExpectations(t)
	})

	t.Run("Validation failure", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/posts", map[string]any{
			"title":   "x",
			"content": "too short",
			"status":  "published",
		}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.postService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Unknown status rejected", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/posts", map[string]any{
			"title":   "Test Post",
			"content": "content long enough to pass validation",
			"status":  "archived",
		}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		f.postService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("Dangling category reference is a bad request", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("CreatePost", mock.Anything, mock.Anything).Return(nil, custom_errors.ErrCategoryNotFound)

		body := map[string]any{
			"title":       "Test Post",
			"content":     "content long enough to pass validation",
			"category_id": 99,
			"status":      "published",
		}
		rec := f.do(t, http.MethodPost, "/api/v1/posts", body, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_UpdatePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("UpdatePost", mock.Anything, int64(10), mock.MatchedBy(func(dto *model.UpdatePostDTO) bool {
			return dto.Title != nil && *dto.Title == "New Title"
		})).Return(&model.PostDetailed{
			Post: &model.Post{ID: 10, Title: "New Title"},
		}, nil)

		rec := f.do(t, http.MethodPut, "/api/v1/posts/10", map[string]any{"title": "New Title"}, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		f.postService.AssertExpectations(t)
	})

	t.Run("Empty update", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("UpdatePost", mock.Anything, int64(10), mock.Anything).Return(nil, custom_errors.ErrNoUpdateRows)

		rec := f.do(t, http.MethodPut, "/api/v1/posts/10", map[string]any{}, true)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("UpdatePost", mock.Anything, int64(404), mock.Anything).Return(nil, custom_errors.ErrPostNotFound)

		rec := f.do(t, http.MethodPut, "/api/v1/posts/404", map[string]any{"title": "New Title"}, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_DeletePost(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("DeletePost", mock.Anything, int64(10)).Return(nil)

		rec := f.do(t, http.MethodDelete, "/api/v1/posts/10", nil, true)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		f.postService.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		f := newFixture(t)
		f.postService.On("DeletePost", mock.Anything, int64(404)).Return(custom_errors.ErrPostNotFound)

		rec := f.do(t, http.MethodDelete, "/api/v1/posts/404", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
