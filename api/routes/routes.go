package routes

import (
	"github.com/firstlovecenter/fl-admin-backend/internal/config"
	"github.com/firstlovecenter/fl-admin-backend/internal/handlers"
	"github.com/firstlovecenter/fl-admin-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies groups the handlers the router wires up
type HandlerDependencies struct {
	AuthHandler         *handlers.AuthHandler
	BussingHandler      *handlers.BussingHandler
	TransactionHandler  *handlers.TransactionHandler
	PaymentHandler      *handlers.PaymentHandler
	NotificationHandler *handlers.NotificationHandler
	ReportHandler       *handlers.ReportHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.Default()

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		// Gateway webhooks authenticate by reference lookup, not by JWT
		public.POST("/webhooks/paystack", deps.PaymentHandler.Webhook)
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Bussing record routes
		records := protected.Group("/bussing-records")
		{
			records.GET("", deps.BussingHandler.GetRecordsByDateRange)
			records.POST("", deps.BussingHandler.CreateRecord)
			records.GET("/bacenta/:bacentaId", deps.BussingHandler.GetRecordsByBacenta)
			records.GET("/:id", deps.BussingHandler.GetRecordWithDate)
			records.POST("/:id/refresh-target", deps.BussingHandler.RefreshTarget)
			records.POST("/:id/attendance", deps.BussingHandler.RecordAttendance)
			records.POST("/:id/confirm", deps.BussingHandler.ConfirmRecord)
			records.POST("/:id/swell-top-up", deps.BussingHandler.SetSwellTopUp)
			records.POST("/:id/normal-top-up", deps.BussingHandler.SetNormalTopUp)

			// Transaction id routes
			records.POST("/:id/transaction-id", deps.TransactionHandler.SetTransactionID)
			records.DELETE("/:id/transaction-id", deps.TransactionHandler.RemoveTransactionID)
			records.GET("/:id/transaction-id/check", deps.TransactionHandler.CheckTransactionID)
		}

		// Service day routes
		protected.POST("/service-days/swell", deps.BussingHandler.SetSwellDate)

		// Notification routes
		notifications := protected.Group("/notifications")
		{
			notifications.GET("/count", deps.NotificationHandler.GetNotificationCount)
			notifications.GET("/status/:status", deps.NotificationHandler.GetNotificationsByStatus)
			notifications.POST("/send-sms", deps.NotificationHandler.SendSMS)
		}

		// Report routes; absent when the spreadsheet exporter is not configured
		if deps.ReportHandler != nil {
			protected.POST("/reports/weekly-summary", deps.ReportHandler.ExportWeeklySummary)
		}
	}

	return router
}
