// Package delivery_http exposes the catalog as a JSON REST API under
// /api/v1. Handlers validate requests, call the services and translate
// service errors into HTTP statuses; all domain rules live below.
package delivery_http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/middleware"
	user_repository "fanfic-blog-service/internal/repository/user"
	category_service "fanfic-blog-service/internal/service/category"
	post_service "fanfic-blog-service/internal/service/post"
	tag_service "fanfic-blog-service/internal/service/tag"
)

var validate = validator.New()

type Handler struct {
	postService     post_service.Service
	categoryService category_service.Service
	tagService      tag_service.Service
	userRepo        user_repository.Repository
	log             *logger.Logger
}

func NewHandler(
	postService post_service.Service,
	categoryService category_service.Service,
	tagService tag_service.Service,
	userRepo user_repository.Repository,
	log *logger.Logger,
) *Handler {
	return &Handler{
		postService:     postService,
		categoryService: categoryService,
		tagService:      tagService,
		userRepo:        userRepo,
		log:             log,
	}
}

func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(h.log))
	r.Use(middleware.RequestLogger(h.log))

	requireUser := middleware.RequireUser(h.userRepo, h.log)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", h.ListPosts)
			r.Get("/{postID}", h.GetPost)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Get("/drafts", h.ListDrafts)
				r.Post("/", h.CreatePost)
				r.Put("/{postID}", h.UpdatePost)
				r.Delete("/{postID}", h.DeletePost)
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", h.ListCategories)
			r.Get("/{categoryID}", h.GetCategory)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.CreateCategory)
				r.Delete("/{categoryID}", h.DeleteCategory)
			})
		})

		r.Route("/tags", func(r chi.Router) {
			r.Get("/", h.ListTags)
			r.Get("/{tagID}", h.GetTag)
			r.Group(func(r chi.Router) {
				r.Use(requireUser)
				r.Post("/", h.CreateTags)
				r.Delete("/{tagID}", h.DeleteTag)
			})
		})
	})

	return r
}
