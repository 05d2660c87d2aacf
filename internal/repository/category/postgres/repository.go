package category_repository_postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"fanfic-blog-service/internal/custom_errors"
	"fanfic-blog-service/internal/logger"
	"fanfic-blog-service/internal/model"
	"fanfic-blog-service/internal/repository/postgres/db"
)

type CategoryRepository struct {
	log *logger.Logger
	db  db.PgDB
}

func NewCategoryRepository(db db.PgDB, log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, log: log}
}

func (c *CategoryRepository) List(ctx context.Context) ([]*model.Category, error) {
	// Post counts are aggregated at read time so they can never drift
	// from the posts table.
	query := `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		GROUP BY c.id, c.name
		ORDER BY c.name`

	rows, err := c.db.Query(ctx, query)
	if err != nil {
		c.log.Error("Error listing categories", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var category model.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.PostCount); err != nil {
			c.log.Error("Error scanning category row", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		categories = append(categories, &category)
	}

	if err = rows.Err(); err != nil {
		c.log.Error("Error iterating category rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return categories, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	query := `
		SELECT c.id, c.name, COUNT(p.id)
		FROM categories c
		LEFT JOIN posts p ON p.category_id = c.id
		WHERE c.id = @id
		GROUP BY c.id, c.name`

	args := pgx.NamedArgs{"id": id}

	var category model.Category
	err := c.db.QueryRow(ctx, query, args).Scan(&category.ID, &category.Name, &category.PostCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.log.Debug("Category not found by id", slog.Int64("id", id))
			return nil, custom_errors.ErrCategoryNotFound
		}
		c.log.Error("Error getting category by id", slog.Int64("id", id), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	return &category, nil
}

func (c *CategoryRepository) Create(ctx context.Context, name string) (*model.Category, error) {
	// The unique index on lower(name) closes the check-then-insert race
	// between concurrent creations of the same category.
	query := `
		INSERT INTO categories(name)
		VALUES (@name)
		ON CONFLICT ((lower(name))) DO NOTHING
		RETURNING id, name`

	args := pgx.NamedArgs{"name": name}

	var category model.Category
	err := c.db.QueryRow(ctx, query, args).Scan(&category.ID, &category.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, custom_errors.ErrCategoryAlreadyExists
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, custom_errors.ErrCategoryAlreadyExists
		}
		c.log.Error("Error creating category", slog.String("name", name), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id int64) error {
	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM categories WHERE id = @id`

	result, err := c.db.Exec(ctx, query, args)
	if err != nil {
		c.log.Error("Error deleting category", slog.Int64("id", id), slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	if result.RowsAffected() == 0 {
		return custom_errors.ErrCategoryNotFound
	}
	return nil
}

func (c *CategoryRepository) PostCount(ctx context.Context, id int64) (int64, error) {
	args := pgx.NamedArgs{"id": id}
	query := `SELECT COUNT(*) FROM posts WHERE category_id = @id`

	var count int64
	if err := c.db.QueryRow(ctx, query, args).Scan(&count); err != nil {
		c.log.Error("Error counting posts for category", slog.Int64("id", id), slog.String("error", err.Error()))
		return 0, custom_errors.ErrDatabaseQuery
	}
	return count, nil
}
