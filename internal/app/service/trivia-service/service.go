package trivia_service

import (
	"trivia-backend/internal/model/webresponse"

	"github.com/gin-gonic/gin"
)

type TriviaService interface {
	ListCategories(c *gin.Context) (webresponse.CategoryListResponse, int)
	ListQuestions(c *gin.Context) (webresponse.QuestionListResponse, int)
	DeleteQuestion(c *gin.Context, questionID int) (webresponse.DeleteQuestionResponse, int)
}
