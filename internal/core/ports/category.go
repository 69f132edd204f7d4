package ports

import (
	"context"

	"taskflow/internal/core/domain"
)

type CategoryRepository interface {
	ListForUser(ctx context.Context, userID string) ([]domain.Category, error)
	Create(ctx context.Context, userID, name, color string) (domain.Category, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID, name, color string) (domain.Category, error)
}
