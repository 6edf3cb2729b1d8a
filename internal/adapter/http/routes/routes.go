package routes

import (
	"log"
	"os"
	"strconv"

	_ "smartsales365/docs" // This will be auto-generated
	"smartsales365/internal/adapter/http/handlers"
	"smartsales365/internal/adapter/persistence/repository"
	"smartsales365/internal/adapter/render"
	"smartsales365/internal/infrastructure/database"
	"smartsales365/internal/infrastructure/payments"
	"smartsales365/internal/usecase"
	"smartsales365/internal/usecase/interfaces"

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

	saleRepo := repository.NewSaleDynamoRepository(ddb)
	productRepo := repository.NewProductDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	cartRepo := repository.NewCartDynamoRepository(ddb)
	discountRepo := repository.NewDiscountDynamoRepository(ddb)
	maintenanceRepo := repository.NewMaintenanceDynamoRepository(ddb)
	reportRepo := repository.NewReportDynamoRepository(ddb)
	auditRepo := repository.NewAuditDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	reportUseCase := usecase.NewReportUseCase(saleRepo, productRepo, userRepo, reportRepo, auditRepo, render.Renderers())
	saleUseCase := usecase.NewSaleUseCase(saleRepo, cartRepo, productRepo, discountRepo, auditRepo, paymentGateway)
	cartUseCase := usecase.NewCartUseCase(cartRepo, productRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, auditRepo)
	discountUseCase := usecase.NewDiscountUseCase(discountRepo, auditRepo)
	maintenanceUseCase := usecase.NewMaintenanceUseCase(maintenanceRepo, saleRepo, userRepo, auditRepo)
	userUseCase := usecase.NewUserUseCase(userRepo, auditRepo)
	forecastUseCase := usecase.NewForecastUseCase(saleRepo)
	auditUseCase := usecase.NewAuditUseCase(auditRepo)

	reportHandler := handlers.NewReportHandler(reportUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	discountHandler := handlers.NewDiscountHandler(discountUseCase)
	maintenanceHandler := handlers.NewMaintenanceHandler(maintenanceUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	forecastHandler := handlers.NewForecastHandler(forecastUseCase)
	auditHandler := handlers.NewAuditHandler(auditUseCase)

	// Rutas públicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addReportRoutes(v1, reportHandler, forecastHandler)
	addStoreRoutes(v1, cartHandler, saleHandler)
	addBackofficeRoutes(v1, productHandler, discountHandler, maintenanceHandler, userHandler, auditHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
