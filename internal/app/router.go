// Package app provides router configuration.
package app

import (
	"github.com/guttosm/tour-service/config"
	"github.com/guttosm/tour-service/internal/catalog"
	"github.com/guttosm/tour-service/internal/http"
	"github.com/guttosm/tour-service/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Groups        []http.RouteGroup
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
	// AsyncLogger is nil when MongoDB is disabled.
	AsyncLogger *middleware.AsyncLogger
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(services *ServiceComponents, dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	var (
		sink        middleware.LogSink
		asyncLogger *middleware.AsyncLogger
	)
	if dbComponents != nil && dbComponents.LoggingService != nil {
		asyncLogger = middleware.NewAsyncLogger(dbComponents.LoggingService, middleware.DefaultAsyncLoggerConfig())
		sink = asyncLogger
	}

	pricingHandler := http.NewPricingHandler(services.Calculator, services.Defaults, sink)
	catalogHandler := http.NewCatalogHandler(
		services.Catalog,
		services.Comparison,
		catalog.DefaultItinerary(),
		services.Defaults.MarginPercent,
		sink,
	)

	healthHandler := http.NewHealthHandler()
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", dbComponents.DB)
		}
		if dbComponents.TourPackagesCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_tour_packages", dbComponents.TourPackagesCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		LogSink:        sink,
	}

	return &RouterComponents{
		Groups: []http.RouteGroup{
			http.NewPricingRoutes(pricingHandler),
			http.NewCatalogRoutes(catalogHandler),
		},
		HealthHandler: healthHandler,
		Config:        routerCfg,
		AsyncLogger:   asyncLogger,
	}
}
