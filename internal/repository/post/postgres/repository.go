package post_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	"fanfic-blog-service/internal/repository/postgres/db"
)

const postColumns = "id, author_id, title, content, category_id, status, reading_time, created_at, updated_at"

type PostRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewPostRepository(db db.PgDB, log *logger.Logger) *PostRepository {
	return &PostRepository{db: db, log: log}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	post := &model.Post{}
	err := row.Scan(
		&post.ID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.CategoryID,
		&post.Status,
		&post.ReadingTime,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (p *PostRepository) Create(ctx context.Context, post *model.Post) (*model.Post, error) {
	now := pgtype.Timestamptz{Time: time.Now(), Valid: true}

	args := pgx.NamedArgs{
		"author_id":    post.AuthorID,
		"title":        post.Title,
		"content":      post.Content,
		"category_id":  post.CategoryID,
		"status":       post.Status,
		"reading_time": post.ReadingTime,
		"created_at":   now,
		"updated_at":   now,
	}

	query := `
		INSERT INTO posts (author_id, title, content, category_id, status, reading_time, created_at, updated_at)
		VALUES (@author_id, @title, @content, @category_id, @status, @reading_time, @created_at, @updated_at)
		RETURNING ` + postColumns

	createdPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		p.log.Error("Error creating post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return createdPost, nil
}

func (p *PostRepository) GetByID(ctx context.Context, id int64) (*model.Post, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + postColumns + ` FROM posts WHERE id = @id`

	post, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error getting post by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return post, nil
}

func (p *PostRepository) Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error) {
	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.CategoryID != nil {
		setClauses = append(setClauses, "category_id = @category_id")
		args["category_id"] = *update.CategoryID
	}
	if update.Status != nil {
		setClauses = append(setClauses, "status = @status")
		args["status"] = *update.Status
	}
	if update.ReadingTime != nil {
		setClauses = append(setClauses, "reading_time = @reading_time")
		args["reading_time"] = *update.ReadingTime
	}

	// An empty change set still bumps updated_at; tag-only updates
	// arrive here with no field clauses.
	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now(), Valid: true}

	query := "UPDATE posts SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + postColumns

	updatedPost, err := scanPost(p.db.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Post not found by id during Update", slog.Int64("id", id), slog.String("error", err.Error()))
			return nil, custom_errors.ErrPostNotFound
		}
		p.log.Error("Error updating post", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return updatedPost, nil
}

func (p *PostRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM posts WHERE id = @id`
	result, err := p.db.Exec(ctx, query, args)
	if err != nil {
		p.log.Error("Error deleting post", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrPostNotFound
	}
	return nil
}

// ListPublished dispatches to one of four fixed query shapes depending
// on which filters are present. An absent filter never becomes a null
// match, and an unknown id simply matches no rows.
func (p *PostRepository) ListPublished(ctx context.Context, filters model.PostFilters) ([]*model.Post, error) {
	args := pgx.NamedArgs{"status": model.PostStatusPublished}

	var query string
	switch {
	case filters.CategoryID != nil && filters.TagID != nil:
		args["category_id"] = *filters.CategoryID
		args["tag_id"] = *filters.TagID
		query = `SELECT p.id, p.author_id, p.title, p.content, p.category_id, p.status, p.reading_time, p.created_at, p.updated_at
			FROM posts p
			JOIN posts_tags pt ON pt.post_id = p.id
			WHERE p.status = @status AND p.category_id = @category_id AND pt.tag_id = @tag_id
			ORDER BY p.created_at DESC`
	case filters.CategoryID != nil:
		args["category_id"] = *filters.CategoryID
		query = `SELECT ` + postColumns + ` FROM posts
			WHERE status = @status AND category_id = @category_id
			ORDER BY created_at DESC`
	case filters.TagID != nil:
		args["tag_id"] = *filters.TagID
		query = `SELECT p.id, p.author_id, p.title, p.content, p.category_id, p.status, p.reading_time, p.created_at, p.updated_at
			FROM posts p
			JOIN posts_tags pt ON pt.post_id = p.id
			WHERE p.status = @status AND pt.tag_id = @tag_id
			ORDER BY p.created_at DESC`
	default:
		query = `SELECT ` + postColumns + ` FROM posts
			WHERE status = @status
			ORDER BY created_at DESC`
	}

	return p.queryPosts(ctx, query, args, "ListPublished")
}

func (p *PostRepository) ListDrafts(ctx context.Context, authorID int64) ([]*model.Post, error) {
	args := pgx.NamedArgs{
		"author_id": authorID,
		"status":    model.PostStatusDraft,
	}
	query := `SELECT ` + postColumns + ` FROM posts
		WHERE author_id = @author_id AND status = @status
		ORDER BY created_at DESC`

	return p.queryPosts(ctx, query, args, "ListDrafts")
}

func (p *PostRepository) queryPosts(ctx context.Context, query string, args pgx.NamedArgs, op string) ([]*model.Post, error) {
	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error listing posts", slog.String("op", op), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var posts []*model.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			p.log.Error("Error scanning post row", slog.String("op", op), slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		posts = append(posts, post)
	}

	if err = rows.Err(); err != nil {
		p.log.Error("Error iterating post rows", slog.String("op", op), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return posts, nil
}
