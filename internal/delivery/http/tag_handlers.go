package delivery_http

import (
	"net/http"
)

type CreateTagsRequest struct {
	Names []string `json:"names" validate:"required,min=1,dive,min=2,max=50"`
}

func (h *Handler) ListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.tagService.GetAllTags(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tags)
}

func (h *Handler) GetTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tagID")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid tag id")
		return
	}

	tag, err := h.tagService.GetTagByID(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, tag)
}

// CreateTags resolves free-text names into tags, creating only the
// missing ones, and returns the full resolved set so the caller can
// attach them to a post.
func (h *Handler) CreateTags(w http.ResponseWriter, r *http.Request) {
	var req CreateTagsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	tags, err := h.tagService.CreateTags(r.Context(), req.Names)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, tags)
}

func (h *Handler) DeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "tagID")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid tag id")
		return
	}

	if err := h.tagService.DeleteTag(r.Context(), id); err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writeJSON(w, http.StatusNoContent, nil)
}
