package routes

import (
	"net/http"

	"payflow/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentsHandler *handlers.PaymentsHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentsHandler.CreatePayment)
		payments.POST("/redirect", paymentsHandler.SetupRedirect)
		payments.POST("/:id/authorise", paymentsHandler.Authorise)
		payments.GET("/:id", paymentsHandler.GetPayment)
		payments.GET("/:id/details", paymentsHandler.GetPaymentDetails)
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
