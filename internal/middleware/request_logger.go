package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/logger"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request, at a level that follows the status code.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		statusCode := c.Writer.Status()
		log := logger.Component("http").With().
			Str("request_id", GetRequestID(c)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status_code", statusCode).
			Int64("duration_ms", time.Since(start).Milliseconds()).
			Int("bytes", c.Writer.Size()).
			Str("ip", c.ClientIP()).
			Str("user_agent", c.Request.UserAgent()).
			Logger()

		log.WithLevel(levelForStatus(statusCode)).Msg("HTTP request")
	}
}

func levelForStatus(statusCode int) zerolog.Level {
	switch {
	case statusCode >= 500:
		return zerolog.ErrorLevel
	case statusCode >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
