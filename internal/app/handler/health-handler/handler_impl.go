package health_handler

import (
	"net/http"

	"trivia-backend/internal/logger"
	"trivia-backend/internal/model/webresponse"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type HealthHandlerImpl struct {
	DB *gorm.DB
}

// Health reports 503 when the store does not answer a ping.
func (H *HealthHandlerImpl) Health(c *gin.Context) {
	sqlDB, err := H.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		logger.AppLogger.Warn().Err(err).Msg("health_check_database_unreachable")
		c.JSON(http.StatusServiceUnavailable, webresponse.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	c.JSON(http.StatusOK, webresponse.HealthResponse{Status: "ok", Database: "ok"})
}

func NewHealthHandler(db *gorm.DB) HealthHandler {
	return &HealthHandlerImpl{DB: db}
}
