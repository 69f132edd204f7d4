package service

import (
	"context"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/ports"
)

type CategoryService struct {
	categoryRepository ports.CategoryRepository
}

func NewCategoryService(categoryRepository ports.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepository: categoryRepository}
}

func (s *CategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepository.ListForUser(ctx, userID)
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID, name, color string) (domain.Category, error) {
	return s.categoryRepository.Create(ctx, userID, name, color)
}

var _ ports.CategoryService = (*CategoryService)(nil)
