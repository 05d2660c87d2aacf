package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	category_repository "fanfic-blog-service/internal/repository/category"
	post_repository "fanfic-blog-service/internal/repository/post"
	"fanfic-blog-service/internal/repository/postgres"
	tag_repository "fanfic-blog-service/internal/repository/tag"
	user_repository "fanfic-blog-service/internal/repository/user"
)

type PostService struct {
	postRepo     post_repository.Repository
	categoryRepo category_repository.Repository
	tagRepo      tag_repository.Repository
	userRepo     user_repository.Repository
	uow          postgres.UnitOfWork
	log          *logger.Logger
}

func NewPostService(
	postRepo post_repository.Repository,
	categoryRepo category_repository.Repository,
	tagRepo tag_repository.Repository,
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		uow:          uow,
		log:          log,
	}
}

func (s *PostService) ListPublished(ctx context.Context, filters *model.PostFilters) ([]*model.PostDetailed, error) {
	if filters == nil {
		filters = &model.PostFilters{}
	}
	posts, err := s.postRepo.ListPublished(ctx, *filters)
	if err != nil {
		s.log.Error("Failed to list published posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return s.buildDetailedList(ctx, posts)
}

func (s *PostService) ListDrafts(ctx context.Context, user *model.User) ([]*model.PostDetailed, error) {
	posts, err := s.postRepo.ListDrafts(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to list drafts", slog.Int64("authorID", user.ID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		detailed, err := s.assemble(ctx, post, user)
		if err != nil {
			return nil, err
		}
		result = append(result, detailed)
	}
	return result, nil
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (result *model.PostDetailed, err error) {
	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found", slog.Int64("authorID", post.AuthorID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get author", slog.Int64("authorID", post.AuthorID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err := post.Status.IsValid(); err != nil {
		s.log.Debug("Invalid post status", slog.String("status", string(post.Status)))
		return nil, custom_errors.ErrInvalidInput
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			s.rollback(ctx, tx)
		}
	}()

	postRepo := tx.PostRepository()
	categoryRepo := tx.CategoryRepository()
	tagRepo := tx.TagRepository()

	var category *model.Category
	if post.CategoryID != nil {
		category, err = categoryRepo.GetByID(ctx, *post.CategoryID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrCategoryNotFound) {
				s.log.Debug("Referenced category does not exist", slog.Int64("categoryID", *post.CategoryID))
				return nil, custom_errors.ErrCategoryNotFound
			}
			s.log.Error("Failed to resolve category", slog.Int64("categoryID", *post.CategoryID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	tagIDs := dedupeIDs(post.TagIDs)
	var tags []*model.Tag
	if len(tagIDs) > 0 {
		tags, err = tagRepo.GetByIDs(ctx, tagIDs)
		if err != nil {
			s.log.Error("Failed to resolve tags", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		if len(tags) != len(tagIDs) {
			s.log.Debug("Referenced tags do not all exist",
				slog.Int("requested", len(tagIDs)),
				slog.Int("resolved", len(tags)))
			return nil, custom_errors.ErrTagNotFound
		}
	}

	newPost := &model.Post{
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Content:     post.Content,
		CategoryID:  post.CategoryID,
		Status:      post.Status,
		ReadingTime: readingTimeOf(post.Content),
	}
	createdPost, err := postRepo.Create(ctx, newPost)
	if err != nil {
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if len(tagIDs) > 0 {
		if err = tagRepo.TagPost(ctx, createdPost.ID, tagIDs); err != nil {
			s.log.Error("Failed to attach tags to post",
				slog.Int64("postID", createdPost.ID),
				slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	if err = tx.Commit(ctx); err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return &model.PostDetailed{
		Post:     createdPost,
		Author:   author,
		Category: category,
		Tags:     tags,
	}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, custom_errors.ErrPostNotFound):
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		default:
			s.log.Error("Failed to get post by id",
				slog.String("error", err.Error()),
				slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}
	return s.assemble(ctx, post, nil)
}

func (s *PostService) UpdatePost(ctx context.Context, id int64, post *model.UpdatePostDTO) (result *model.PostDetailed, err error) {
	if post.Status != nil {
		if err := post.Status.IsValid(); err != nil {
			s.log.Debug("Invalid post status", slog.String("status", string(*post.Status)))
			return nil, custom_errors.ErrInvalidInput
		}
	}
	hasFieldChanges := post.Title != nil || post.Content != nil || post.CategoryID != nil || post.Status != nil
	if !hasFieldChanges && post.TagIDs == nil {
		return nil, custom_errors.ErrNoUpdateRows
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			s.rollback(ctx, tx)
		}
	}()

	postRepo := tx.PostRepository()
	categoryRepo := tx.CategoryRepository()
	tagRepo := tx.TagRepository()

	if _, err = postRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if post.CategoryID != nil {
		if _, err = categoryRepo.GetByID(ctx, *post.CategoryID); err != nil {
			if errors.Is(err, custom_errors.ErrCategoryNotFound) {
				s.log.Debug("Referenced category does not exist", slog.Int64("categoryID", *post.CategoryID))
				return nil, custom_errors.ErrCategoryNotFound
			}
			s.log.Error("Failed to resolve category", slog.Int64("categoryID", *post.CategoryID), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	// Reading time tracks content, never anything else: recompute only
	// when content actually changes.
	if post.Content != nil {
		readingTime := CalculateReadingTime(*post.Content)
		post.ReadingTime = &readingTime
	}

	if post.TagIDs != nil {
		tagIDs := dedupeIDs(post.TagIDs)
		if len(tagIDs) > 0 {
			tags, tagErr := tagRepo.GetByIDs(ctx, tagIDs)
			if tagErr != nil {
				s.log.Error("Failed to resolve tags", slog.String("error", tagErr.Error()))
				return nil, custom_errors.ErrDatabaseQuery
			}
			if len(tags) != len(tagIDs) {
				s.log.Debug("Referenced tags do not all exist",
					slog.Int("requested", len(tagIDs)),
					slog.Int("resolved", len(tags)))
				return nil, custom_errors.ErrTagNotFound
			}
		}
		if err = tagRepo.ReplacePostTags(ctx, id, tagIDs); err != nil {
			s.log.Error("Failed to replace post tags", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	// Tag-only changes carry no field clauses but still bump updated_at.
	updatedPost, err := postRepo.Update(ctx, id, post)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	return s.assemble(ctx, updatedPost, nil)
}

func (s *PostService) DeletePost(ctx context.Context, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer func() {
		if !txCommitted && tx != nil {
			s.rollback(ctx, tx)
		}
	}()

	postRepo := tx.PostRepository()
	tagRepo := tx.TagRepository()

	if _, err = postRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tagRepo.ReplacePostTags(ctx, id, nil); err != nil {
		s.log.Error("Failed to clear tags for post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	if err = postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err = tx.Commit(ctx); err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true
	return nil
}

func (s *PostService) buildDetailedList(ctx context.Context, posts []*model.Post) ([]*model.PostDetailed, error) {
	result := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		detailed, err := s.assemble(ctx, post, nil)
		if err != nil {
			return nil, err
		}
		result = append(result, detailed)
	}
	return result, nil
}

// assemble resolves a post's author, category and tags into a
// PostDetailed. author may be pre-resolved by the caller.
func (s *PostService) assemble(ctx context.Context, post *model.Post, author *model.User) (*model.PostDetailed, error) {
	if author == nil {
		var err error
		author, err = s.userRepo.GetByID(ctx, post.AuthorID)
		if err != nil {
			switch {
			case errors.Is(err, custom_errors.ErrUserNotFound):
				s.log.Debug("Author not found", slog.Int64("authorID", post.AuthorID))
				return nil, custom_errors.ErrUserNotFound
			default:
				s.log.Error("Failed to get author",
					slog.String("error", err.Error()),
					slog.Int64("authorID", post.AuthorID))
				return nil, custom_errors.ErrDatabaseQuery
			}
		}
	}

	var category *model.Category
	if post.CategoryID != nil {
		var err error
		category, err = s.categoryRepo.GetByID(ctx, *post.CategoryID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrCategoryNotFound) {
				s.log.Debug("Category disappeared under post", slog.Int64("categoryID", *post.CategoryID))
				category = nil
			} else {
				s.log.Error("Failed to get category",
					slog.String("error", err.Error()),
					slog.Int64("categoryID", *post.CategoryID))
				return nil, custom_errors.ErrDatabaseQuery
			}
		}
	}

	tags, err := s.tagRepo.FindByPost(ctx, post.ID)
	if err != nil {
		s.log.Error("Failed to find tags by post",
			slog.String("error", err.Error()),
			slog.Int64("id", post.ID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return &model.PostDetailed{
		Post:     post,
		Author:   author,
		Category: category,
		Tags:     tags,
	}, nil
}

func (s *PostService) rollback(ctx context.Context, tx postgres.Transaction) {
	rollbackErr := tx.Rollback(ctx)
	if rollbackErr == nil {
		return
	}
	if strings.Contains(rollbackErr.Error(), "tx is closed") || strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
		s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
		return
	}
	s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
}

func readingTimeOf(content *string) int32 {
	if content == nil {
		return 0
	}
	return CalculateReadingTime(*content)
}

func dedupeIDs(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int64]bool, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
