package routes

import (
	"context"
	"log"
	"strconv"

	_ "repairflow/docs" // This will be auto-generated
	"repairflow/internal/adapter/http/handlers"
	"repairflow/internal/adapter/persistence/repository"
	"repairflow/internal/infrastructure/database"
	"repairflow/internal/infrastructure/notifications"
	"repairflow/internal/infrastructure/rates"
	"repairflow/internal/usecase"
	"repairflow/internal/usecase/interfaces"

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

	jobRepo := repository.NewJobDynamoRepository(ddb)
	inventoryRepo := repository.NewInventoryDynamoRepository(ddb)
	shopRepo := repository.NewShopDynamoRepository(ddb)

	ledger := usecase.NewInventoryLedger(inventoryRepo)

	var notifier interfaces.INotificationDispatcher
	sqsDispatcher, err := notifications.NewSQSDispatcher(context.Background())
	if err != nil {
		log.Printf("Notification queue not configured: %v", err)
		notifier = notifications.NoopDispatcher{}
	} else {
		notifier = sqsDispatcher
	}

	workflowUseCase := usecase.NewJobWorkflowUseCase(jobRepo, shopRepo, ledger, notifier)
	itemsUseCase := usecase.NewJobItemsUseCase(jobRepo, shopRepo, ledger, rates.NewStaticProvider())

	jobHandler := handlers.NewJobHandler(workflowUseCase, itemsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addJobRoutes(v1, jobHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
