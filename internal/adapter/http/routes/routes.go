package routes

import (
	"context"
	"log"
	"strconv"

	_ "leaseflow/docs" // generated swagger spec
	"leaseflow/internal/adapter/http/handlers"
	"leaseflow/internal/adapter/persistence/repository"
	appconfig "leaseflow/internal/infrastructure/config"
	"leaseflow/internal/infrastructure/database"
	"leaseflow/internal/infrastructure/email"
	"leaseflow/internal/infrastructure/logger"
	"leaseflow/internal/infrastructure/payments"
	"leaseflow/internal/usecase"
	"leaseflow/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run wires the whole service together and starts the HTTP server.
func Run() {
	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	setMiddlewares(appLogger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes(cfg, appLogger)

	if err := router.Run(":" + strconv.Itoa(cfg.HTTP.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg *appconfig.Config, appLogger logger.Logger) {
	ctx := context.Background()

	ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	contractRepo := repository.NewContractDynamoRepository(ddb, cfg.Tables.Contracts, cfg.Tables.Events)
	templateRepo := repository.NewTemplateDynamoRepository(ddb, cfg.Tables.Templates)
	notificationRepo := repository.NewNotificationDynamoRepository(ddb, cfg.Tables.Notifications)
	documentStore := repository.NewDocumentDynamoStore(ddb, cfg.Tables.Documents)

	var emailSender interfaces.IEmailSender
	if cfg.Email.Enabled {
		sesSender, err := email.NewSESSender(ctx, cfg.Email.Region, cfg.Email.Sender)
		if err != nil {
			appLogger.Warn("email sender not configured", map[string]interface{}{"error": err.Error()})
		} else {
			emailSender = sesSender
		}
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPago.AccessToken, cfg.MercadoPago.Mock, appLogger)
	if err != nil {
		appLogger.Warn("payment gateway not configured", map[string]interface{}{"error": err.Error()})
	} else {
		paymentGateway = mpGateway
	}

	var analyticsCache interfaces.IAnalyticsCache
	if cfg.Redis.Address != "" {
		redisClient := database.NewRedis(cfg.Redis)
		if err := redisClient.Ping(ctx); err != nil {
			appLogger.Warn("analytics cache unavailable", map[string]interface{}{"error": err.Error()})
		} else {
			analyticsCache = redisClient
		}
	}

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, emailSender, appLogger)
	contractUseCase := usecase.NewContractUseCase(contractRepo, templateRepo, notificationUseCase)
	paymentUseCase := usecase.NewPaymentUseCase(contractRepo, paymentGateway)
	documentUseCase := usecase.NewDocumentUseCase(contractRepo, documentStore)
	analyticsUseCase := usecase.NewAnalyticsUseCase(contractRepo, analyticsCache, appLogger)

	contractHandler := handlers.NewContractHandler(contractUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	documentHandler := handlers.NewDocumentHandler(documentUseCase)
	notificationHandler := handlers.NewNotificationHandler(notificationUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addContractRoutes(v1, contractHandler, paymentHandler, documentHandler, notificationHandler, analyticsHandler)
}

func setMiddlewares(appLogger logger.Logger) {
	router.Use(gin.Logger())
	router.Use(requestMetrics())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		appLogger.Error("recovered from panic", map[string]interface{}{"panic": recovered})
		c.AbortWithStatus(500)
	}))
}
