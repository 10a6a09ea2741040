package category_repository

import (
	"context"

	"trivia-backend/internal/model/entity"

	"gorm.io/gorm"
)

type CategoryRepositoryImpl struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &CategoryRepositoryImpl{DB: db}
}

// ListCategories returns every category ordered by id.
func (R *CategoryRepositoryImpl) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	var categories []*entity.Category
	if err := R.DB.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
