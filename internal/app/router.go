package app

import (
	"exam_coach_backend/docs"
	"exam_coach_backend/internal/config"
	"exam_coach_backend/internal/middleware"
	"exam_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
	}

	// Browsing the catalog and drilling questions needs no account. A token,
	// when present, is still parsed so drills can feed progress.
	coach := router.Group("/api/coach")
	coach.Use(middleware.TryAuthMiddleware(cfg))
	{
		coach.GET("/exams", c.exam.ListExams)
		coach.GET("/questions/:examCode", c.practice.GetRandomQuestion)
		coach.GET("/exams/:examCode/practice-session", c.practice.GetPracticeSession)
		coach.GET("/exams/:examCode/check", c.practice.CheckAnswer)
	}

	// Anything that writes per-user state requires identity.
	authorized := router.Group("/api/coach")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.POST("/answers/:examCode", c.progress.RecordAnswer)
		authorized.GET("/progress/:examCode", c.progress.GetProgress)
		authorized.POST("/exams/:examCode/score", c.practice.ScoreExam)
		authorized.GET("/history", c.practice.GetHistory)
		authorized.GET("/exams/:examCode/history", c.practice.GetExamHistory)
	}
}
