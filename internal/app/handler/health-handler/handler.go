package health_handler

import "github.com/gin-gonic/gin"

type HealthHandler interface {
	Health(c *gin.Context)
}
