package trivia_handler

import (
	"net/http"
	"strconv"

	trivia_service "trivia-backend/internal/app/service/trivia-service"
	"trivia-backend/internal/helper"
	"trivia-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

type TriviaHandlerImpl struct {
	TriviaService trivia_service.TriviaService
}

func (T *TriviaHandlerImpl) GetCategoryList(c *gin.Context) {
	response, statusCode := T.TriviaService.ListCategories(c)
	helper.WriteJSON(c, statusCode, response)
}

func (T *TriviaHandlerImpl) GetQuestionList(c *gin.Context) {
	response, statusCode := T.TriviaService.ListQuestions(c)
	helper.WriteJSON(c, statusCode, response)
}

func (T *TriviaHandlerImpl) DeleteQuestion(c *gin.Context) {
	// only unsigned integer ids match the route
	rawID := c.Param("id")
	if !helper.IsNumeric(rawID) {
		c.AbortWithStatus(http.StatusNotFound)
		return
	}
	questionID, err := strconv.Atoi(rawID)
	if err != nil {
		// too large to be a stored id, so the lookup misses like any other unknown id
		logger.AppLogger.Error().Err(err).Str("question_id", rawID).Msg("delete_question_failed")
		c.AbortWithStatus(http.StatusUnprocessableEntity)
		return
	}

	response, statusCode := T.TriviaService.DeleteQuestion(c, questionID)
	helper.WriteJSON(c, statusCode, response)
}

func NewTriviaHandler(service trivia_service.TriviaService) TriviaHandler {
	return &TriviaHandlerImpl{
		TriviaService: service,
	}
}
