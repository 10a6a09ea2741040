package trivia_handler

import "github.com/gin-gonic/gin"

type TriviaHandler interface {
	GetCategoryList(c *gin.Context)
	GetQuestionList(c *gin.Context)
	DeleteQuestion(c *gin.Context)
}
