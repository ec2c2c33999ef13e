package server

import (
	"github.com/labstack/echo/v4"

	"example.com/wellbeing-wheel/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	sessionHandler *handlers.SessionHandler,
	scoreHandler *handlers.ScoreHandler,
	improvementHandler *handlers.ImprovementHandler,
	submitHandler *handlers.SubmitHandler,
	assessmentHandler *handlers.AssessmentHandler,
	eventHandler *handlers.EventHandler,
	identityMiddleware echo.MiddlewareFunc,
	submitRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	// Аудиторская запись произвольного документа сессии.
	e.POST("/assessments", assessmentHandler.Save, identityMiddleware, submitRateLimiter)

	api := e.Group("/api/v1")
	api.GET("/catalog", handlers.Catalog)

	assessments := api.Group("/assessments", identityMiddleware)
	assessments.GET("", assessmentHandler.List)
	assessments.GET("/:docId", assessmentHandler.Get)

	sessions := api.Group("/sessions")
	sessions.POST("", sessionHandler.Create)
	sessions.GET("/:id", sessionHandler.Get)
	sessions.POST("/:id/restart", sessionHandler.Restart)
	sessions.PUT("/:id/user-info", sessionHandler.SetUserInfo)
	sessions.PUT("/:id/stage", sessionHandler.SetStage)
	sessions.PUT("/:id/scores/:itemId", scoreHandler.Update)
	sessions.GET("/:id/percentages", scoreHandler.Percentages)
	sessions.POST("/:id/improvements/:itemId", improvementHandler.Select)
	sessions.DELETE("/:id/improvements/:itemId", improvementHandler.Deselect)
	sessions.PUT("/:id/improvements/:itemId/actions/:slot", improvementHandler.UpdateAction)
	sessions.DELETE("/:id/improvements/:itemId/actions/:slot", improvementHandler.ClearAction)
	sessions.POST("/:id/submit", submitHandler.Submit, identityMiddleware, submitRateLimiter)
	sessions.GET("/:id/export", submitHandler.Export)
	sessions.GET("/:id/events", eventHandler.Stream)
}
