package tag_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	"fanfic-blog-service/internal/repository/postgres"
	tag_repository "fanfic-blog-service/internal/repository/tag"
)

type TagService struct {
	tagRepo tag_repository.Repository
	uow     postgres.UnitOfWork
	log     *logger.Logger
}

func NewTagService(tagRepo tag_repository.Repository, uow postgres.UnitOfWork, log *logger.Logger) *TagService {
	return &TagService{
		tagRepo: tagRepo,
		uow:     uow,
		log:     log,
	}
}

func (s *TagService) GetAllTags(ctx context.Context) ([]*model.Tag, error) {
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		s.log.Error("Failed to list tags", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return tags, nil
}

func (s *TagService) GetTagByID(ctx context.Context, id int64) (*model.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrTagNotFound) {
			s.log.Debug("Tag not found", slog.Int64("id", id))
			return nil, custom_errors.ErrTagNotFound
		}
		s.log.Error("Failed to get tag by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return tag, nil
}

func (s *TagService) GetTagByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error) {
	tags, err := s.tagRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to get tags by ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return tags, nil
}

// CreateTags runs the whole resolve-then-create pass in one transaction.
// Tag creation almost always happens as a side effect of saving a post
// with free-text tag input, so repeated names across posts must map to
// the same tag identity.
func (s *TagService) CreateTags(ctx context.Context, names []string) (result []*model.Tag, err error) {
	candidates := normalizeNames(names)
	if len(candidates) == 0 {
		return nil, nil
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
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

	tagRepo := tx.TagRepository()

	existing, err := tagRepo.FindByNames(ctx, candidates)
	if err != nil {
		s.log.Error("Failed to find existing tags", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	resolved := make([]*model.Tag, 0, len(candidates))
	existingByName := make(map[string]*model.Tag, len(existing))
	for _, tag := range existing {
		existingByName[strings.ToLower(tag.Name)] = tag
		resolved = append(resolved, tag)
	}

	for _, name := range candidates {
		if _, found := existingByName[strings.ToLower(name)]; found {
			continue
		}
		createdTag, tagErr := tagRepo.Create(ctx, name)
		if tagErr != nil {
			if errors.Is(tagErr, custom_errors.ErrTagAlreadyExists) {
				// Lost a race with a concurrent creation; resolve the
				// winner instead.
				winners, findErr := tagRepo.FindByNames(ctx, []string{name})
				if findErr != nil || len(winners) == 0 {
					s.log.Error("Failed to resolve tag after create conflict", slog.String("name", name))
					return nil, custom_errors.ErrDatabaseQuery
				}
				resolved = append(resolved, winners[0])
				continue
			}
			s.log.Error("Failed to create tag", slog.String("name", name), slog.String("error", tagErr.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		resolved = append(resolved, createdTag)
	}

	if err = tx.Commit(ctx); err != nil {
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return resolved, nil
}

func (s *TagService) DeleteTag(ctx context.Context, id int64) error {
	// Unconditional: orphaned posts simply lose the tag via the join
	// table's cascade.
	err := s.tagRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrTagNotFound) {
			s.log.Debug("Tag not found for delete", slog.Int64("id", id))
			return custom_errors.ErrTagNotFound
		}
		s.log.Error("Failed to delete tag", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

// normalizeNames trims, drops empties and collapses case-insensitive
// duplicates, keeping the first spelling seen.
func normalizeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	result := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, name)
	}
	return result
}
