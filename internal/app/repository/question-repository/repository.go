package question_repository

import (
	"context"

	"trivia-backend/internal/model/entity"
)

type QuestionRepository interface {
	ListQuestions(ctx context.Context) ([]*entity.Question, error)
	GetQuestionByID(ctx context.Context, id int) (*entity.Question, error)
	DeleteQuestion(ctx context.Context, question *entity.Question) error
}
