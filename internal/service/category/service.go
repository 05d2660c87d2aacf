package category_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	category_repository "fanfic-blog-service/internal/repository/category"
	"fanfic-blog-service/internal/repository/postgres"
)

type CategoryService struct {
	categoryRepo category_repository.Repository
	uow          postgres.UnitOfWork
	log          *logger.Logger
}

func NewCategoryService(categoryRepo category_repository.Repository, uow postgres.UnitOfWork, log *logger.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		uow:          uow,
		log:          log,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id int64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Debug("Category not found", slog.Int64("id", id))
			return nil, custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to get category by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	category, err := s.categoryRepo.Create(ctx, name)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryAlreadyExists) {
			s.log.Debug("Category name already taken", slog.String("name", name))
			return nil, custom_errors.ErrCategoryAlreadyExists
		}
		s.log.Error("Failed to create category", slog.String("name", name), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return category, nil
}

// DeleteCategory reads the post count and deletes in one transaction so
// a concurrent post assignment cannot slip past the emptiness check.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			rollbackErr := tx.Rollback(ctx)
			if rollbackErr != nil && !strings.Contains(rollbackErr.Error(), "tx is closed") {
				s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
			}
		}
	}()

	categoryRepo := tx.CategoryRepository()

	count, err := categoryRepo.PostCount(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Debug("Category not found for delete", slog.Int64("id", id))
			return custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to count posts for category", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if count > 0 {
		s.log.Debug("Category still has posts", slog.Int64("id", id), slog.Int64("posts", count))
		return custom_errors.ErrCategoryHasPosts
	}

	if err = categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Debug("Category not found for delete", slog.Int64("id", id))
			return custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to delete category", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true
	return nil
}
