package server

import (
	"github.com/labstack/echo/v4"

	"example.com/expense-tracker/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	expenseHandler *handlers.ExpenseHandler,
	journalHandler *handlers.JournalHandler,
	insightsHandler *handlers.InsightsHandler,
	notificationHandler *handlers.NotificationHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
) {
	e.GET("/health", handlers.Health)

	api := e.Group("/api/v1")
	authGroup := api.Group("/auth", authRateLimiter)

	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/refresh", authHandler.Refresh)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	expenses := api.Group("/expenses", authMiddleware)
	expenses.GET("", expenseHandler.List)
	expenses.POST("", expenseHandler.Create)
	expenses.DELETE("/:id", expenseHandler.Delete)

	journal := api.Group("/journal", authMiddleware)
	journal.GET("", journalHandler.List)
	journal.GET("/years/:year", journalHandler.Year)
	journal.GET("/:monthYear", journalHandler.Get)
	journal.PUT("/:monthYear", journalHandler.Upsert)
	journal.DELETE("/:monthYear", journalHandler.Delete)

	insights := api.Group("/insights", authMiddleware)
	insights.GET("/dashboard", insightsHandler.Dashboard)
	insights.GET("/years/:year", insightsHandler.Year)
	insights.GET("/years/:year/months/:month", insightsHandler.Month)
	insights.GET("/years/:year/export/json", insightsHandler.ExportJSON)
	insights.GET("/years/:year/export/csv", insightsHandler.ExportCSV)

	notifications := api.Group("/notifications", authMiddleware)
	notifications.GET("/stream", notificationHandler.Stream)
}
