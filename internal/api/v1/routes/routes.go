package routes

import (
	"github.com/gin-gonic/gin"

	"audio-transcript/internal/api/v1/handlers"
	"audio-transcript/internal/api/v1/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptHandler := handlers.NewTranscriptHandler(container.TranscriptService, container.ExportService)

	transcripts := router.Group("/transcripts")
	{
		transcripts.POST("", transcriptHandler.Create)
	}
	router.GET("/capabilities", transcriptHandler.Capabilities)
}

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptService services.TranscriptService
	ExportService     services.ExportService
}
