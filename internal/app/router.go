// Package app provides router configuration.
package app

import (
	"time"

	"github.com/decorline/quantity-service/config"
	"github.com/decorline/quantity-service/internal/http"
	"github.com/decorline/quantity-service/internal/metrics"
	"github.com/decorline/quantity-service/internal/service"
	"github.com/decorline/quantity-service/internal/service/cache"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	calculator service.UnitCalculator,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	var catalogService service.CatalogService

	if dbComponents != nil {
		loggingService = dbComponents.LoggingService

		var catalogOpts []service.CatalogOption
		if cfg.Cache.Size > 0 {
			parameterCache := service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards)
			catalogOpts = append(catalogOpts, service.WithParameterCache(parameterCache))
			go publishCacheMetrics(parameterCache, 30*time.Second)
		}
		catalogService = service.NewCatalogService(dbComponents.ProductParametersRepo, catalogOpts...)
	}

	handler := http.NewHandler(calculator, catalogService)
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		healthHandler.RegisterChecker("database", mongoChecker{db: dbComponents.DB})
		if dbComponents.CatalogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_catalog", dbComponents.CatalogCircuitBreaker)
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
		LoggingService: loggingService,
		CatalogService: catalogService,
		Calculator:     calculator,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

// publishCacheMetrics periodically exports cache occupancy to the Prometheus
// gauges. Runs for the lifetime of the process.
func publishCacheMetrics(c cache.CacheWithMetrics, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		m := c.Metrics()
		metrics.UpdateCacheMetrics(m.Size, m.Capacity)
	}
}
