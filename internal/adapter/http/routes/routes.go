package routes

import (
	"log"
	"os"
	"strconv"

	_ "cortinaria/docs" // This will be auto-generated
	"cortinaria/internal/adapter/http/handlers"
	"cortinaria/internal/adapter/persistence/cache"
	repository2 "cortinaria/internal/adapter/persistence/repository"
	"cortinaria/internal/infrastructure/database"
	"cortinaria/internal/infrastructure/payments"
	"cortinaria/internal/usecase"
	"cortinaria/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
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

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	accessoryRepo := repository2.NewAccessoryDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)

	var configRepo interfaces.IPricingConfigRepository = repository2.NewPricingConfigDynamoRepository(ddb)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		configRepo = cache.NewPricingConfigCache(rdb, configRepo)
		log.Printf("[config][cache] redis cache enabled addr=%s", addr)
	}

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, productRepo, accessoryRepo, configRepo)
	catalogUseCase := usecase.NewCatalogUseCase(productRepo, accessoryRepo, configRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	depositUseCase := usecase.NewDepositUseCase(depositRepo, budgetRepo, paymentGateway)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	depositHandler := handlers.NewDepositHandler(depositUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, budgetHandler)
	addCatalogRoutes(v1, catalogHandler)
	addDepositRoutes(v1, depositHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
