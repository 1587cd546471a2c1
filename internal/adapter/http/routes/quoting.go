package routes

import (
	"orcaobra/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathReports  = "/reports"
	PathSettings = "/settings"
)

func addQuotingRoutes(
	rg *gin.RouterGroup,
	quoteHandler *handlers.QuoteHandler,
	reportHandler *handlers.ReportHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("/generate", quoteHandler.GenerateQuote)
		quotes.POST("", quoteHandler.SaveQuote)
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PUT("/:id", quoteHandler.UpdateQuote)
		quotes.DELETE("/:id", quoteHandler.DeleteQuote)
		quotes.GET("/:id/pdf", quoteHandler.ExportQuotePDF)
	}

	reports := rg.Group(PathReports)
	{
		reports.POST("/generate", reportHandler.GenerateReport)
		reports.POST("/pdf", reportHandler.ExportReportPDF)
	}

	settings := rg.Group(PathSettings)
	{
		settings.GET("", settingsHandler.GetSettings)
		settings.PUT("", settingsHandler.SaveSettings)
	}
}
