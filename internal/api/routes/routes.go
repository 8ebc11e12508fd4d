// Package routes defines the HTTP routes for the stub research API.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/equityresearch/assistant/internal/api/handlers"
	"github.com/equityresearch/assistant/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	HealthHandler *handlers.HealthHandler
	UploadHandler *handlers.UploadHandler
	ChatHandler   *handlers.ChatHandler
	RAGHandler    *handlers.RAGHandler
	MarketHandler *handlers.MarketHandler
}

// Setup configures the backend contract routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	r.GET("/health", cfg.HealthHandler.Health)

	upload := r.Group("/upload")
	{
		upload.POST("/csv", cfg.UploadHandler.CSV)
		upload.POST("/excel", cfg.UploadHandler.Excel)
		upload.POST("/pdf", cfg.UploadHandler.PDF)
	}

	r.POST("/chat", cfg.ChatHandler.Chat)

	rag := r.Group("/rag")
	{
		rag.POST("/search", cfg.RAGHandler.Search)
		rag.GET("/stats", cfg.RAGHandler.Stats)
		rag.DELETE("/clear", cfg.RAGHandler.Clear)
	}

	r.GET("/analysis/market-overview", cfg.MarketHandler.Overview)
	r.POST("/stock/fetch", cfg.MarketHandler.StockFetch)

	r.NoRoute(middleware.NotFound())
}

// SetupWithMiddleware sets up routes with the common middleware stack.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware) {
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(gin.Recovery())

	Setup(r, cfg)
}
