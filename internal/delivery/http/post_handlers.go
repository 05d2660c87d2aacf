package delivery_http

import (
	"errors"
	"net/http"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/middleware"
	"fanfic-blog-service/internal/model"
)

type CreatePostRequest struct {
	Title      string           `json:"title" validate:"required,min=3,max=255"`
	Content    string           `json:"content" validate:"required,min=10"`
	CategoryID *int64           `json:"category_id" validate:"omitempty,gt=0"`
	TagIDs     []int64          `json:"tag_ids" validate:"omitempty,dive,gt=0"`
	Status     model.PostStatus `json:"status" validate:"required,oneof=draft published"`
}

type UpdatePostRequest struct {
	Title      *string           `json:"title" validate:"omitempty,min=3,max=255"`
	Content    *string           `json:"content" validate:"omitempty,min=10"`
	CategoryID *int64            `json:"category_id" validate:"omitempty,gt=0"`
	TagIDs     []int64           `json:"tag_ids" validate:"omitempty,dive,gt=0"`
	Status     *model.PostStatus `json:"status" validate:"omitempty,oneof=draft published"`
}

// ListPosts serves the public catalog: published posts only, optionally
// narrowed by category and tag. Unknown filter ids yield an empty list.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	categoryID, err := optionalIDQuery(r, "categoryId")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid categoryId")
		return
	}
	tagID, err := optionalIDQuery(r, "tagId")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid tagId")
		return
	}

	posts, err := h.postService.ListPublished(r.Context(), &model.PostFilters{
		CategoryID: categoryID,
		TagID:      tagID,
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, posts)
}

// ListDrafts serves the caller's own drafts. The author is always the
// authenticated user; it cannot be chosen via the request.
func (h *Handler) ListDrafts(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	posts, err := h.postService.ListDrafts(r.Context(), user)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, posts)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postID")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	user := middleware.UserFromCtx(r.Context())

	var req CreatePostRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	post, err := h.postService.CreatePost(r.Context(), &model.CreatePostDTO{
		AuthorID:   user.ID,
		Title:      req.Title,
		Content:    &req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
		Status:     req.Status,
	})
	if err != nil {
		// On writes a dangling category/tag reference is the caller's
		// mistake, not a missing resource.
		if errors.Is(err, custom_errors.ErrCategoryNotFound) || errors.Is(err, custom_errors.ErrTagNotFound) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, post)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postID")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req UpdatePostRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	post, err := h.postService.UpdatePost(r.Context(), id, &model.UpdatePostDTO{
		Title:      req.Title,
		Content:    req.Content,
		CategoryID: req.CategoryID,
		TagIDs:     req.TagIDs,
		Status:     req.Status,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) || errors.Is(err, custom_errors.ErrTagNotFound) {
			h.writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "postID")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}
