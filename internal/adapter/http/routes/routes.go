package routes

import (
	"log"
	"os"

	_ "fieldflow/docs" // swagger docs
	request "fieldflow/internal/adapter/http/dto/request"
	"fieldflow/internal/adapter/http/handlers"
	"fieldflow/internal/adapter/http/middleware"
	"fieldflow/internal/adapter/persistence/repository"
	"fieldflow/internal/infrastructure/database"
	"fieldflow/internal/infrastructure/payments"
	"fieldflow/internal/usecase"
	"fieldflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = "8080"

// Run will start the server
func Run() {
	setMiddlewares()
	request.RegisterValidators()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	tables := database.TablesFromEnv()

	clientRepo := repository.NewClientDynamoRepository(ddb, tables.Clients)
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, tables.Quotes)
	workOrderRepo := repository.NewWorkOrderDynamoRepository(ddb, tables.WorkOrders, tables.Guards)
	equipmentRepo := repository.NewEquipmentDynamoRepository(ddb, tables.Equipments)
	checklistRepo := repository.NewChecklistDynamoRepository(ddb, tables.Checklists, tables.ChecklistTemplates)
	paymentRepo := repository.NewPaymentDynamoRepository(ddb, tables.Payments, tables.Guards)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, clientRepo, paymentGateway)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo)
	flowUseCase := usecase.NewServiceFlowUseCase(usecase.ServiceFlowDeps{
		Clients:    clientRepo,
		Quotes:     quoteRepo,
		WorkOrders: workOrderRepo,
		Equipments: equipmentRepo,
		Checklists: checklistRepo,
		Payments:   paymentRepo,
		Issuer:     paymentUseCase,
	})

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Rotas escopadas pelo tenant
	scoped := v1.Group("")
	scoped.Use(middleware.RequireOwner())
	addServiceFlowRoutes(scoped,
		handlers.NewServiceFlowHandler(flowUseCase),
		handlers.NewQuoteHandler(quoteUseCase),
		handlers.NewPaymentHandler(paymentUseCase),
	)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
