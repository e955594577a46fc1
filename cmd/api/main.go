package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/relay"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/sink"
	timeProvider "github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	// Load configuration
	cfg, v, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production || cfg.Logger.Format == "json")
	appLogger.SetLevel(coreport.ParseLogLevel(cfg.Logger.Level))

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Metrics registry
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMetrics := metrics.NewPrometheusMetrics(registry)

	// Connect to the database
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		SlowThreshold:   200 * time.Millisecond,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
		MonitorInterval: time.Minute,
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancelStartup()

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(startupCtx); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(startupCtx, migration.DefaultSettings{
		CacheSize:          cfg.LogBuffer.CacheSize,
		DebugThreshold:     cfg.LogBuffer.DebugThreshold,
		ReportingThreshold: cfg.LogBuffer.ReportingThreshold,
	}); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Initialize repositories
	eventRepo := repository.NewLogEventRepository(dbManager.DB(), appLogger)
	settingsRepo := repository.NewLoggerSettingsRepository(dbManager.DB(), appLogger)

	// Event publishers
	eventPublisher, err := buildPublisher(startupCtx, cfg, eventRepo, appLogger)
	if err != nil {
		appLogger.Error("Failed to build event publisher", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := eventPublisher.Close(); err != nil {
			appLogger.Warn("Error closing event publishers", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Buffered logger factory
	debugThreshold, _ := entity.ParseSeverity(cfg.LogBuffer.DebugThreshold)
	reportingThreshold, _ := entity.ParseSeverity(cfg.LogBuffer.ReportingThreshold)

	opts := []logbuffer.Option{
		logbuffer.WithEventPublisher(eventPublisher),
		logbuffer.WithDebugThreshold(debugThreshold),
		logbuffer.WithReportingThreshold(reportingThreshold),
		logbuffer.WithTimeProvider(tp),
		logbuffer.WithDiagnostics(appLogger.With(map[string]any{"component": "logbuffer"})),
		logbuffer.WithMetrics(promMetrics),
		logbuffer.WithPublishTimeout(coreport.Duration(cfg.LogBuffer.PublishTimeout)),
	}
	if cfg.LogBuffer.DebugSink == "zap" {
		if zl, ok := appLogger.(*logger.ZapLogger); ok {
			opts = append(opts, logbuffer.WithDebugSink(sink.NewZapSink(zl.Zap()), "zap"))
		}
	}

	factory := logbuffer.NewFactory(
		cfg.LogBuffer.CacheSize,
		buildSettingsSource(cfg, v, settingsRepo),
		opts...,
	)

	// Initialize use cases
	relayUseCase := relay.NewService(factory, eventRepo, appLogger)

	// Initialize API handlers
	logHandler := handler.NewLogHandler(relayUseCase, appLogger)
	healthHandler := handler.NewHealthHandler(dbManager)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	var observer middleware.RequestObserver
	if cfg.Monitoring.MetricsEnabled {
		observer = promMetrics
	}
	routes.SetupMiddlewares(router, appLogger, observer)

	// Setup routes
	routes.SetupRoutes(router, logHandler, healthHandler, factory, appLogger)
	if cfg.Monitoring.MetricsEnabled {
		routes.SetupMetricsRoute(router, cfg.Monitoring.MetricsPath, registry)
	}

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port":    cfg.Server.Port,
			"env":     cfg.Environment,
			"targets": cfg.Publisher.Targets,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	// Validate server configuration
	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}

	if cfg.Server.ReadTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.readTimeout")
	}

	if cfg.Server.WriteTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.writeTimeout")
	}

	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	// Validate database configuration
	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or LR_DB_HOST environment variable)")
	}

	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or LR_DB_USERNAME environment variable)")
	}

	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or LR_DB_NAME environment variable)")
	}

	// Environment should be set with a valid value
	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	// Logger configuration
	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	// Publisher target settings
	if cfg.Publisher.HasTarget(targetRedis) && cfg.Publisher.Redis.Addr == "" {
		missingConfigs = append(missingConfigs, "publisher.redis.addr")
	}
	if cfg.Publisher.HasTarget(targetSentry) && cfg.Publisher.Sentry.DSN == "" {
		missingConfigs = append(missingConfigs, "publisher.sentry.dsn")
	}
	if cfg.Publisher.HasTarget(targetBeats) && cfg.Publisher.Beats.Endpoint == "" {
		missingConfigs = append(missingConfigs, "publisher.beats.endpoint")
	}

	// Return error with list of missing configurations
	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// Buffered logger defaults
	if cfg.LogBuffer.CacheSize < 0 {
		return fmt.Errorf("invalid logBuffer.cacheSize: %d", cfg.LogBuffer.CacheSize)
	}
	if _, err := entity.ParseSeverity(cfg.LogBuffer.DebugThreshold); err != nil {
		return fmt.Errorf("invalid logBuffer.debugThreshold: %w", err)
	}
	if _, err := entity.ParseSeverity(cfg.LogBuffer.ReportingThreshold); err != nil {
		return fmt.Errorf("invalid logBuffer.reportingThreshold: %w", err)
	}

	for _, t := range cfg.Publisher.Targets {
		switch t {
		case targetDatabase, targetRedis, targetSentry, targetBeats:
		default:
			return fmt.Errorf("unknown publisher target: %s", t)
		}
	}

	switch cfg.LogBuffer.SettingsSource {
	case settingsDatabase, settingsConfig, settingsNone:
	default:
		return fmt.Errorf("unknown logBuffer.settingsSource: %s", cfg.LogBuffer.SettingsSource)
	}

	// If we're in production, do additional validation for sensitive settings
	if cfg.Environment == config.Production {
		var warnings []string

		// Check database security settings
		sslMode := strings.ToLower(cfg.Database.SSLMode)
		if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
			warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
		}

		// Check timeout settings
		if cfg.Server.ReadTimeout < 5*time.Second {
			warnings = append(warnings, "server.readTimeout is too low for production")
		}

		if cfg.Server.WriteTimeout < 5*time.Second {
			warnings = append(warnings, "server.writeTimeout is too low for production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential security issues in production configuration: %v", warnings)
		}
	}

	return nil
}
