package category_repository

import (
	"context"

	"trivia-backend/internal/model/entity"
)

type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
