package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigins are allowed when no origins are configured.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORS allows browser clients from origins to read the catalog API.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding",
			"Accept-Language", "Cache-Control", "X-Requested-With", APIKeyHeader, RequestIDHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
