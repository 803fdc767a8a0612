package routes

import (
	"leaseflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
)

func addContractRoutes(
	rg *gin.RouterGroup,
	contractHandler *handlers.ContractHandler,
	paymentHandler *handlers.PaymentHandler,
	documentHandler *handlers.DocumentHandler,
	notificationHandler *handlers.NotificationHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.CreateContract)
		contracts.GET("", contractHandler.SearchContracts)
		contracts.POST("/validate", contractHandler.ValidateContract)

		// Static segments before /:id so gin routes them first.
		contracts.GET("/templates", contractHandler.ListTemplates)
		contracts.GET("/templates/:id", contractHandler.GetTemplate)
		contracts.GET("/analytics", analyticsHandler.PortfolioAnalytics)
		contracts.GET("/notifications", notificationHandler.ListNotifications)
		contracts.PUT("/notifications/:id/read", notificationHandler.MarkNotificationRead)

		contracts.GET("/:id", contractHandler.GetContract)
		contracts.PUT("/:id", contractHandler.UpdateContract)
		contracts.DELETE("/:id", contractHandler.DeleteContract)

		contracts.POST("/:id/send-for-signatures", contractHandler.SendForSignatures)
		contracts.POST("/:id/sign", contractHandler.SignContract)
		contracts.POST("/:id/activate", contractHandler.ActivateContract)
		contracts.POST("/:id/terminate", contractHandler.TerminateContract)
		contracts.POST("/:id/renew", contractHandler.RenewContract)
		contracts.POST("/:id/cancel", contractHandler.CancelContract)

		contracts.GET("/:id/payments", paymentHandler.ListPayments)
		contracts.POST("/:id/payments", paymentHandler.RecordPayment)
		contracts.PUT("/:id/payments/:paymentId", paymentHandler.UpdatePayment)

		contracts.POST("/:id/documents", documentHandler.UploadDocument)
		contracts.DELETE("/:id/documents/:docId", documentHandler.DeleteDocument)
		contracts.GET("/:id/documents/:docId/download", documentHandler.DownloadDocument)

		contracts.GET("/:id/events", contractHandler.ListEvents)
		contracts.GET("/:id/pdf", documentHandler.RenderPDF)
	}
}
