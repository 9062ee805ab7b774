package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/metrics"
	"github.com/guttosm/xslt-messages/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit      int
	RateWindow     time.Duration
	RequestTimeout time.Duration
	APIKeys        map[string]bool
	EnableAuth     bool
	CORSOrigins    []string
	SwaggerUser    string
	SwaggerPass    string
	// RateLimiter, when set, replaces the limiter built from RateLimit and RateWindow.
	RateLimiter *middleware.RateLimiter
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:      100,
		RateWindow:     time.Minute,
		RequestTimeout: middleware.DefaultTimeout,
		EnableAuth:     false,
	}
}

// NewRouter creates and configures the Gin router for the message service.
func NewRouter(handler *Handler, healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	if handler == nil {
		return router
	}

	api := router.Group("/api")
	api.Use(middleware.Timeout(cfg.RequestTimeout))

	NewMessageRoutes(handler).RegisterPublicRoutes(api)

	admin := api.Group("")
	configureAdminMiddleware(admin, &cfg)
	NewAdminRoutes(handler).RegisterProtectedRoutes(admin)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	router.Use(
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	limiter := cfg.RateLimiter
	if limiter == nil && cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		cfg.RateLimiter = limiter
	}
	if limiter != nil {
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	if healthHandler != nil {
		healthHandler.Register(router)
	}
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAdminMiddleware protects the admin group with API keys when auth is enabled.
func configureAdminMiddleware(admin *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableAuth && len(cfg.APIKeys) > 0 {
		admin.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}
