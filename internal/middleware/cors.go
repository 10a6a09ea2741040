package middleware

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	allowedHeaders = []string{"Content-Type", "Authorization", "true"}
	allowedMethods = []string{"GET", "PATCH", "POST", "DELETE", "OPTIONS"}
)

// CORS allows every origin. Preflight requests are answered by
// gin-contrib/cors; every other response still carries the allowed headers
// and methods so the browser client sees them on plain requests too.
func CORS() []gin.HandlerFunc {
	preflight := cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    allowedMethods,
		AllowHeaders:    allowedHeaders,
		MaxAge:          1 * time.Hour,
	})

	return []gin.HandlerFunc{preflight, corsHeaders()}
}

func corsHeaders() gin.HandlerFunc {
	headers := strings.Join(allowedHeaders, ",")
	methods := strings.Join(allowedMethods, ",")

	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Headers", headers)
		c.Header("Access-Control-Allow-Methods", methods)
		c.Next()
	}
}
