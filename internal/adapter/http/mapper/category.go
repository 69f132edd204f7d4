package mapper

import (
	"time"

	"taskflow/internal/adapter/http/dto"
	"taskflow/internal/core/domain"
)

func ToCategoryItems(categories []domain.Category) []dto.Category {
	items := make([]dto.Category, 0, len(categories))
	for _, category := range categories {
		items = append(items, ToCategoryItem(category))
	}
	return items
}

func ToCategoryItem(category domain.Category) dto.Category {
	return dto.Category{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
	}
}
