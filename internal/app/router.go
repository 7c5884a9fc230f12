package app

import (
	"ai_interview_backend/docs"
	"ai_interview_backend/internal/middleware"
	"ai_interview_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.AccessLog())
	{
		api.GET("/health", c.health.HealthCheck)

		// 写接口
		api.POST("/session/create", c.session.CreateSession)
		api.POST("/question/create", c.question.CreateQuestion)
		api.DELETE("/question/delete", c.question.DeleteQuestion)
		api.POST("/parse_resume", c.resume.ParseResume)
		api.POST("/generate", c.question.Generate)
		api.POST("/analyze", c.attempt.Analyze)

		// 读接口
		api.GET("/sessions", c.session.ListSessions)
		api.GET("/questions", c.question.ListQuestions)
		api.GET("/attempts", c.attempt.ListAttempts)
	}
}
