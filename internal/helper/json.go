package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WriteJSON writes data as the JSON body when status is 200, otherwise it
// aborts the request with a bare status and the framework default body.
func WriteJSON(c *gin.Context, status int, data any) {
	if status != http.StatusOK {
		c.AbortWithStatus(status)
		return
	}
	c.JSON(status, data)
}
