package app

import (
	"github.com/guttosm/xslt-messages/catalog"
	"github.com/guttosm/xslt-messages/config"
	"github.com/guttosm/xslt-messages/internal/http"
	"github.com/guttosm/xslt-messages/internal/middleware"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	bundle *catalog.Bundle,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Messages)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("catalog", http.CatalogChecker(bundle))
	if dbComponents != nil {
		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckerFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.LookupsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_lookups", dbComponents.LookupsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}
	if cfg.Server.RateLimit > 0 {
		routerCfg.RateLimiter = middleware.NewRateLimiter(cfg.Server.RateLimit, cfg.Server.RateWindow)
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
