package routes

import (
	"log/slog"
	"os"
	"strconv"

	_ "orcaobra/docs" // generated swagger spec
	"orcaobra/internal/adapter/http/handlers"
	"orcaobra/internal/adapter/http/middleware"
	"orcaobra/internal/adapter/persistence/repository"
	"orcaobra/internal/infrastructure/ai"
	"orcaobra/internal/infrastructure/database"
	"orcaobra/internal/infrastructure/export"
	"orcaobra/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run wires the dependency graph and starts the server.
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	port := defaultPort
	if v, err := strconv.Atoi(os.Getenv("PORT")); err == nil && v > 0 {
		port = v
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		slog.Error("failed to start the application", "error", err)
		os.Exit(1)
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	docs := repository.NewDocumentDynamoRepository(ddb)
	quoteRepo := repository.NewQuoteDynamoRepository(docs)
	settingsRepo := repository.NewSettingsDynamoRepository(docs)

	// Missing model credentials is a fatal startup condition: refuse to boot
	// instead of failing on first use.
	aiClient, err := ai.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		slog.Error("generative client not configured", "error", err)
		os.Exit(1)
	}

	exporter := export.NewPDFExporter()

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, settingsRepo, aiClient, exporter)
	reportUseCase := usecase.NewReportUseCase(settingsRepo, aiClient, exporter)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	reportHandler := handlers.NewReportHandler(reportUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotingRoutes(v1, quoteHandler, reportHandler, settingsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}
