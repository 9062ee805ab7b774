package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/i18n"
	"github.com/guttosm/xslt-messages/internal/logger"
)

// Recovery turns a handler panic into a logged 500 response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.Component("http")
				log.Error().
					Str("request_id", requestID).
					Interface("panic", err).
					Str("path", c.Request.URL.Path).
					Msg("PANIC recovered")

				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
			}
		}()
		c.Next()
	}
}
