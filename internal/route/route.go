package route

import (
	health_handler "trivia-backend/internal/app/handler/health-handler"
	trivia_handler "trivia-backend/internal/app/handler/trivia-handler"
	category_repository "trivia-backend/internal/app/repository/category-repository"
	question_repository "trivia-backend/internal/app/repository/question-repository"
	trivia_service "trivia-backend/internal/app/service/trivia-service"
	"trivia-backend/internal/config"
	"trivia-backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func InitRoutes(db *gorm.DB, cfg config.ServerConfig) *gin.Engine {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := middleware.NewHTTPMetrics(registry)

	router := gin.New()

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.HTTPLogger(),
		httpMetrics.Handler(),
	)
	router.Use(middleware.CORS()...)

	healthHandler := health_handler.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	categoryRepo := category_repository.NewCategoryRepository(db)
	questionRepo := question_repository.NewQuestionRepository(db)
	triviaService := trivia_service.NewTriviaService(categoryRepo, questionRepo)
	triviaHandler := trivia_handler.NewTriviaHandler(triviaService)

	router.GET("/categories", triviaHandler.GetCategoryList)

	questionRoute := router.Group("/questions")
	{
		questionRoute.GET("", triviaHandler.GetQuestionList)
		questionRoute.DELETE("/:id", triviaHandler.DeleteQuestion)
	}

	return router
}
