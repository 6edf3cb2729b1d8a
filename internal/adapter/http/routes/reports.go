package routes

import (
	"smartsales365/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports  = "/reportes"
	PathForecast = "/prediccion-ventas"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler, forecastHandler *handlers.ForecastHandler) {
	reports := rg.Group(PathReports)
	{
		reports.POST("/interpretar-prompt", reportHandler.InterpretPrompt)
		reports.POST("/generar-dinamico", reportHandler.GenerateDynamic)
		reports.POST("/generar-por-voz", reportHandler.GenerateByVoice)
		reports.GET("/historial", reportHandler.History)
		reports.GET("/:id", reportHandler.GetReport)
		reports.DELETE("/:id", reportHandler.DeleteReport)
	}

	rg.GET(PathForecast, forecastHandler.ForecastSales)
}
