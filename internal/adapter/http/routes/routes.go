package routes

import (
	"context"
	"fmt"
	"log"

	_ "taller_central/docs" // swag generated docs
	"taller_central/internal/adapter/http/handlers"
	"taller_central/internal/adapter/persistence/repository"
	"taller_central/internal/config"
	"taller_central/internal/infrastructure/database"
	"taller_central/internal/infrastructure/payments"
	"taller_central/internal/usecase"
	"taller_central/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run loads the configuration, wires the application together and starts the
// HTTP server. It blocks until the server stops.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	router := gin.New()
	setMiddlewares(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(router, cfg); err != nil {
		return err
	}

	return router.Run(fmt.Sprintf(":%d", cfg.Server.Port))
}

func registerRoutes(router *gin.Engine, cfg *config.Config) error {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("connecting to dynamodb: %w", err)
	}

	counters := repository.NewIDCounter(ddb, cfg.Dynamo.Tables.Counters)
	customerRepo := repository.NewCustomerDynamoRepository(ddb, cfg.Dynamo.Tables.Customers, counters)
	orderRepo := repository.NewServiceOrderDynamoRepository(ddb, cfg.Dynamo.Tables.ServiceOrders, counters)
	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.Dynamo.Tables.Budgets, counters)
	partRepo := repository.NewSparePartDynamoRepository(ddb, cfg.Dynamo.Tables.SpareParts, counters)
	paymentRepo := repository.NewBudgetPaymentDynamoRepository(ddb, cfg.Dynamo.Tables.Payments)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	customerUseCase := usecase.NewCustomerUseCase(customerRepo, orderRepo, budgetRepo, partRepo)
	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, customerRepo, budgetRepo, partRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, orderRepo, partRepo)
	partUseCase := usecase.NewSparePartUseCase(partRepo, orderRepo)
	paymentUseCase := usecase.NewBudgetPaymentUseCase(paymentRepo, budgetRepo, paymentGateway)

	customerHandler := handlers.NewCustomerHandler(customerUseCase)
	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	partHandler := handlers.NewSparePartHandler(partUseCase)
	paymentHandler := handlers.NewBudgetPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkshopRoutes(v1, customerHandler, orderHandler, budgetHandler, partHandler, paymentHandler)

	return nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every request with an id, echoed in the X-Request-ID header.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
