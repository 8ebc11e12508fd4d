// Package main is the entry point for the equity research stub server.
// It implements the research backend contract with canned fixture data so
// the client can be developed and tested without the real analysis stack.
// @title Equity Research Stub API
// @version 1.0
// @description Development stub implementing the equity research backend contract with fixture data

// @host localhost:8000
// @BasePath /
// @schemes http
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/equityresearch/assistant/docs"
	"github.com/equityresearch/assistant/internal/api/handlers"
	"github.com/equityresearch/assistant/internal/api/middleware"
	"github.com/equityresearch/assistant/internal/api/routes"
	"github.com/equityresearch/assistant/internal/config"
	"github.com/equityresearch/assistant/internal/pkg/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := logging.Setup(cfg.Log)

	// Set Gin mode
	gin.SetMode(cfg.Stub.GinMode)

	// Setup router
	router := setupRouter(logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Stub.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("address", cfg.Stub.Address()).Msg("starting stub server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down stub server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("stub server exited")
}

// setupRouter creates and configures the Gin router.
func setupRouter(logger zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Shared in-memory document index state
	state := handlers.NewState(handlers.StateOptions{AgenticEnabled: true})

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()

	// Create handlers
	routesCfg := &routes.Config{
		HealthHandler: handlers.NewHealthHandler(state),
		UploadHandler: handlers.NewUploadHandler(state, logger),
		ChatHandler:   handlers.NewChatHandler(state),
		RAGHandler:    handlers.NewRAGHandler(state),
		MarketHandler: handlers.NewMarketHandler(),
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw)

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
