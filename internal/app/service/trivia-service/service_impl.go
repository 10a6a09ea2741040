package trivia_service

import (
	"errors"
	"fmt"
	"net/http"

	category_repository "trivia-backend/internal/app/repository/category-repository"
	question_repository "trivia-backend/internal/app/repository/question-repository"
	"trivia-backend/internal/helper"
	"trivia-backend/internal/logger"
	"trivia-backend/internal/model/entity"
	"trivia-backend/internal/model/webresponse"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TriviaServiceImpl struct {
	CategoryRepository category_repository.CategoryRepository
	QuestionRepository question_repository.QuestionRepository
}

func (T *TriviaServiceImpl) ListCategories(c *gin.Context) (webresponse.CategoryListResponse, int) {
	categories, err := T.CategoryRepository.ListCategories(c.Request.Context())
	if err != nil {
		logger.AppLogger.Error().Err(err).Msg("list_categories_failed")
		return webresponse.CategoryListResponse{}, http.StatusInternalServerError
	}

	if len(categories) == 0 {
		return webresponse.CategoryListResponse{}, http.StatusNotFound
	}

	return webresponse.CategoryListResponse{
		Success:         true,
		Categories:      entity.CategoryMap(categories),
		TotalCategories: len(categories),
	}, http.StatusOK
}

func (T *TriviaServiceImpl) ListQuestions(c *gin.Context) (webresponse.QuestionListResponse, int) {
	ctx := c.Request.Context()

	questions, err := T.QuestionRepository.ListQuestions(ctx)
	if err != nil {
		logger.AppLogger.Error().Err(err).Msg("list_questions_failed")
		return webresponse.QuestionListResponse{}, http.StatusInternalServerError
	}
	current := helper.Paginate(helper.ParsePage(c.Query("page")), entity.FormatQuestions(questions))

	categories, err := T.CategoryRepository.ListCategories(ctx)
	if err != nil {
		logger.AppLogger.Error().Err(err).Msg("list_categories_failed")
		return webresponse.QuestionListResponse{}, http.StatusInternalServerError
	}

	// an empty table and a page past the end both answer 404
	if len(current) == 0 {
		return webresponse.QuestionListResponse{}, http.StatusNotFound
	}

	return webresponse.QuestionListResponse{
		Success:         true,
		Questions:       current,
		TotalQuestions:  len(questions),
		Categories:      entity.CategoryMap(categories),
		CurrentCategory: nil,
	}, http.StatusOK
}

// DeleteQuestion answers 422 for every failure, a missing question included.
func (T *TriviaServiceImpl) DeleteQuestion(c *gin.Context, questionID int) (webresponse.DeleteQuestionResponse, int) {
	response, err := T.deleteQuestion(c, questionID)
	if err != nil {
		logger.AppLogger.Error().Err(err).Int("question_id", questionID).Msg("delete_question_failed")
		return webresponse.DeleteQuestionResponse{}, http.StatusUnprocessableEntity
	}

	return response, http.StatusOK
}

func (T *TriviaServiceImpl) deleteQuestion(c *gin.Context, questionID int) (response webresponse.DeleteQuestionResponse, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()

	ctx := c.Request.Context()

	question, err := T.QuestionRepository.GetQuestionByID(ctx, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return response, fmt.Errorf("question %d: %w", questionID, ErrNotFound)
	}
	if err != nil {
		return response, fmt.Errorf("get question %d: %w", questionID, err)
	}

	if err := T.QuestionRepository.DeleteQuestion(ctx, question); err != nil {
		return response, err
	}

	remaining, err := T.QuestionRepository.ListQuestions(ctx)
	if err != nil {
		return response, fmt.Errorf("list questions: %w", err)
	}

	return webresponse.DeleteQuestionResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      helper.Paginate(helper.ParsePage(c.Query("page")), entity.FormatQuestions(remaining)),
		TotalQuestions: len(remaining),
	}, nil
}

func NewTriviaService(categoryRepository category_repository.CategoryRepository, questionRepository question_repository.QuestionRepository) TriviaService {
	return &TriviaServiceImpl{
		CategoryRepository: categoryRepository,
		QuestionRepository: questionRepository,
	}
}
