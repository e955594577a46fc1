package routes

import (
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	logHandler *handler.LogHandler,
	healthHandler *handler.HealthHandler,
	factory *logbuffer.Factory,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		// POST /api/v1/logs runs inside a fresh log scope
		v1.POST("/logs",
			middleware.LogScope(factory, logger),
			middleware.Logger(logger, factory),
			logHandler.Ingest,
		)

		// GET /api/v1/events
		v1.GET("/events", middleware.Logger(logger, nil), logHandler.ListEvents)

		// GET /api/v1/events/:id
		v1.GET("/events/:id", middleware.Logger(logger, nil), logHandler.GetEvent)
	}
}

// SetupMetricsRoute exposes the registry in the Prometheus text format
func SetupMetricsRoute(router *gin.Engine, path string, gatherer prometheus.Gatherer) {
	router.GET(path, gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, observer middleware.RequestObserver) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS())
	if observer != nil {
		router.Use(middleware.Metrics(observer))
	}
}
