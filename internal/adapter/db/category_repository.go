package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

const listCategoriesQuery = `
SELECT id, user_id, name, color, created_at
FROM categories
WHERE user_id = ?
ORDER BY created_at, id;
`

const getCategoryByIDQuery = `
SELECT id, user_id, name, color, created_at
FROM categories
WHERE user_id = ? AND id = ?;
`

const insertCategoryQuery = `
INSERT INTO categories (id, user_id, name, color) VALUES (?, ?, ?, ?);
`

type CategoryRepository struct {
	db *sqlx.DB
}

type categoryRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Name      string    `db:"name"`
	Color     string    `db:"color"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListForUser(ctx context.Context, userID string) ([]domain.Category, error) {
	var rows []categoryRow
	if err := r.db.SelectContext(ctx, &rows, listCategoriesQuery, userID); err != nil {
		return nil, err
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, mapCategoryRowToDomain(row))
	}

	return categories, nil
}

func (r *CategoryRepository) Create(ctx context.Context, userID, name, color string) (domain.Category, error) {
	categoryID := uuid.NewString()

	if _, err := r.db.ExecContext(ctx, insertCategoryQuery, categoryID, userID, name, color); err != nil {
		if isDuplicateKeyError(err) {
			return domain.Category{}, domain.ErrCategoryExists
		}
		return domain.Category{}, err
	}

	var row categoryRow
	if err := r.db.GetContext(ctx, &row, getCategoryByIDQuery, userID, categoryID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Category{}, domain.ErrCategoryNotFound
		}
		return domain.Category{}, err
	}

	return mapCategoryRowToDomain(row), nil
}

func mapCategoryRowToDomain(row categoryRow) domain.Category {
	return domain.Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		Color:     row.Color,
		CreatedAt: row.CreatedAt,
	}
}
