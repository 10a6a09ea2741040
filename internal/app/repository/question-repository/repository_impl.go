package question_repository

import (
	"context"
	"fmt"

	"trivia-backend/internal/model/entity"

	"gorm.io/gorm"
)

type QuestionRepositoryImpl struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &QuestionRepositoryImpl{DB: db}
}

func (R *QuestionRepositoryImpl) ListQuestions(ctx context.Context) ([]*entity.Question, error) {
	var questions []*entity.Question
	if err := R.DB.WithContext(ctx).Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// GetQuestionByID returns gorm.ErrRecordNotFound when no row has the id.
func (R *QuestionRepositoryImpl) GetQuestionByID(ctx context.Context, id int) (*entity.Question, error) {
	var question entity.Question
	if err := R.DB.WithContext(ctx).Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (R *QuestionRepositoryImpl) DeleteQuestion(ctx context.Context, question *entity.Question) error {
	result := R.DB.WithContext(ctx).Delete(question)
	if result.Error != nil {
		return fmt.Errorf("delete question %d: %w", question.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
