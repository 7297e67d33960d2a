package api

import (
	"net/http"

	"energy-peaks/internal/api/handlers"
	"energy-peaks/internal/api/middleware"
	"energy-peaks/internal/api/models"
	"energy-peaks/internal/config"
	"energy-peaks/internal/peaks"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter wires middleware and routes around store.
func NewRouter(cfg *config.Config, store *peaks.Store, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	healthHandler := handlers.NewHealthHandler(store)
	peakHandler := handlers.NewPeakHandler(store, logger)

	router.GET("/", healthHandler.Root)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.GET("/peaks", peakHandler.GetPeaks)
	router.GET("/markets", peakHandler.ListMarkets)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "Not found",
			},
		})
	})

	return router
}
