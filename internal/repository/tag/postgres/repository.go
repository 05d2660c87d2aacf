package tag_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	"fanfic-blog-service/internal/repository/postgres/db"
)

type TagRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewTagRepository(db db.PgDB, log *logger.Logger) *TagRepository {
	return &TagRepository{db: db, log: log}
}

func (t *TagRepository) GetAll(ctx context.Context) ([]*model.Tag, error) {
	// Post counts are aggregated at read time so they can never drift
	// from the join table.
	query := `
		SELECT t.id, t.name, COUNT(pt.post_id)
		FROM tags t
		LEFT JOIN posts_tags pt ON pt.tag_id = t.id
		GROUP BY t.id, t.name
		ORDER BY t.name`

	rows, err := t.db.Query(ctx, query)
	if err != nil {
		t.log.Error("Error listing tags", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return scanTagsWithCount(rows, t.log)
}

func (t *TagRepository) GetByID(ctx context.Context, id int64) (*model.Tag, error) {
	query := `
		SELECT t.id, t.name, COUNT(pt.post_id)
		FROM tags t
		LEFT JOIN posts_tags pt ON pt.tag_id = t.id
		WHERE t.id = @id
		GROUP BY t.id, t.name`

	args := pgx.NamedArgs{"id": id}

	var tag model.Tag
	err := t.db.QueryRow(ctx, query, args).Scan(&tag.ID, &tag.Name, &tag.PostCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			t.log.Debug("Tag not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrTagNotFound
		}
		t.log.Error("Error getting tag by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return &tag, nil
}

func (t *TagRepository) GetByIDs(ctx context.Context, ids []int64) ([]*model.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT t.id, t.name, COUNT(pt.post_id)
		FROM tags t
		LEFT JOIN posts_tags pt ON pt.tag_id = t.id
		WHERE t.id = ANY(@ids)
		GROUP BY t.id, t.name
		ORDER BY t.name`

	args := pgx.NamedArgs{"ids": ids}

	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.log.Error("Error finding tags by ids", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return scanTagsWithCount(rows, t.log)
}

func (t *TagRepository) FindByNames(ctx context.Context, names []string) ([]*model.Tag, error) {
	if len(names) == 0 {
		return nil, nil
	}

	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}

	query := `
		SELECT t.id, t.name, COUNT(pt.post_id)
		FROM tags t
		LEFT JOIN posts_tags pt ON pt.tag_id = t.id
		WHERE lower(t.name) = ANY(@names)
		GROUP BY t.id, t.name`

	args := pgx.NamedArgs{"names": lowered}

	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.log.Error("Error finding tags by names", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return scanTagsWithCount(rows, t.log)
}

func (t *TagRepository) FindByPost(ctx context.Context, postID int64) ([]*model.Tag, error) {
	// links re-joins the full membership set so embedded tags report the
	// same live count as direct lookups.
	query := `
		SELECT t.id, t.name, COUNT(links.post_id)
		FROM tags t
		INNER JOIN posts_tags pt ON pt.tag_id = t.id
		INNER JOIN posts_tags links ON links.tag_id = t.id
		WHERE pt.post_id = @post_id
		GROUP BY t.id, t.name
		ORDER BY t.name`

	args := pgx.NamedArgs{"post_id": postID}

	rows, err := t.db.Query(ctx, query, args)
	if err != nil {
		t.log.Error("Error finding tags by post", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	return scanTagsWithCount(rows, t.log)
}

func (t *TagRepository) Create(ctx context.Context, name string) (*model.Tag, error) {
	// The unique index on lower(name) closes the check-then-insert race
	// between concurrent creations of the same tag.
	query := `
		INSERT INTO tags(name)
		VALUES (@name)
		ON CONFLICT ((lower(name))) DO NOTHING
		RETURNING id, name`

	args := pgx.NamedArgs{"name": name}

	var tag model.Tag
	err := t.db.QueryRow(ctx, query, args).Scan(&tag.ID, &tag.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrTagAlreadyExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, custom_errors.ErrTagAlreadyExists
		}
		t.log.Error("Error creating tag", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}
	return &tag, nil
}

func (t *TagRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM tags WHERE id = @id`

	result, err := t.db.Exec(ctx, query, args)
	if err != nil {
		t.log.Error("Error deleting tag", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrTagNotFound
	}
	return nil
}

func (t *TagRepository) TagPost(ctx context.Context, postID int64, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `INSERT INTO posts_tags (post_id, tag_id) VALUES (@post_id, @tag_id)`

	for _, tagID := range tagIDs {
		batch.Queue(query, pgx.NamedArgs{
			"post_id": postID,
			"tag_id":  tagID,
		})
	}

	br := t.db.SendBatch(ctx, batch)
	defer br.Close()

	for range tagIDs {
		_, err := br.Exec()
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23505" {
				continue
			}
			t.log.Error("Error tagging post",
				slog.Int64("post_id", postID),
				slog.String("error", err.Error()))
			return fmt.Errorf("failed to tag post: %w", err)
		}
	}
	return nil
}

func (t *TagRepository) ReplacePostTags(ctx context.Context, postID int64, tagIDs []int64) error {
	deleteQuery := `DELETE FROM posts_tags WHERE post_id = @post_id`
	_, err := t.db.Exec(ctx, deleteQuery, pgx.NamedArgs{"post_id": postID})
	if err != nil {
		t.log.Error("Error clearing post tags", slog.Int64("post_id", postID), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	return t.TagPost(ctx, postID, tagIDs)
}

func scanTagsWithCount(rows pgx.Rows, log *logger.Logger) ([]*model.Tag, error) {
	var tags []*model.Tag
	for rows.Next() {
		var tag model.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.PostCount); err != nil {
			log.Error("Error scanning tag row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		log.Error("Error iterating tag rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return tags, nil
}
