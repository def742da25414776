package routes

import (
	"log"
	"os"
	"strconv"
	"strings"

	_ "payflow/docs" // This will be auto-generated
	"payflow/internal/adapter/http/handlers"
	repository2 "payflow/internal/adapter/persistence/repository"
	"payflow/internal/infrastructure/database"
	"payflow/internal/infrastructure/payments"
	"payflow/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)

	// The gateway is bound exactly once, at startup. A misconfigured
	// deployment refuses to start instead of running with no gateway.
	gateway, err := payments.NewGatewayFromEnv()
	if err != nil {
		log.Fatalf("payment gateway initialization failed: %v", err)
	}
	log.Printf("[payment][routes] gateway bound api=%s testing=%t", os.Getenv("PAYMENT_API"), isTestingEnabled())

	paymentsUseCase := usecase.NewPaymentsUseCase(transactionRepo, gateway, isTestingEnabled())
	paymentsHandler := handlers.NewPaymentsHandler(paymentsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func isTestingEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENTS_TESTING"))) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}
