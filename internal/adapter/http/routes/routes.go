package routes

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/vanhub/vendor-node/internal/adapter/http/handlers"
	"github.com/vanhub/vendor-node/internal/infrastructure/config"
	"github.com/vanhub/vendor-node/internal/infrastructure/feed"
	"github.com/vanhub/vendor-node/internal/infrastructure/insights"
	"github.com/vanhub/vendor-node/internal/usecase"
	"github.com/vanhub/vendor-node/internal/usecase/interfaces"
	"github.com/vanhub/vendor-node/pkg/metrics"
)

var router = gin.Default()

// Run wires the lifecycle engine and starts the server.
func Run() {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	getRoutes(settings)

	if err := router.Run(":" + strconv.Itoa(settings.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(settings config.Settings) {
	ctx := context.Background()
	consoleMetrics := metrics.NewConsoleMetrics("vendor_node")

	notifier := usecase.NewNotifierUseCase(settings.NotificationTTL)
	ledger := usecase.NewOrderLedgerUseCase(notifier, consoleMetrics)
	catalog := usecase.NewCatalogUseCase(notifier, consoleMetrics)

	var generator interfaces.IInsightGenerator
	gateway, err := insights.NewGeminiGateway(ctx, settings.GeminiAPIKey, settings.GeminiModel, settings.InsightMock)
	if err != nil {
		log.Warnf("Insight gateway not configured: %v", err)
	} else {
		generator = gateway
	}

	trigger := usecase.NewInsightUseCase(ledger, catalog, generator, consoleMetrics)
	ledger.RegisterObserver(trigger)
	catalog.RegisterObserver(trigger)

	if settings.SeedDemoData {
		if err := feed.Seed(ctx, ledger, catalog); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
	}

	orderHandler := handlers.NewOrderHandler(ledger, catalog, settings.StatsCompletedBaseline, settings.StatsAvgPrepMinutes)
	inventoryHandler := handlers.NewInventoryHandler(catalog)
	consoleHandler := handlers.NewConsoleHandler(trigger, notifier)

	v1 := router.Group("/v1")
	addPingRoutes(v1, settings.StoreName)
	addConsoleRoutes(v1, orderHandler, inventoryHandler, consoleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
