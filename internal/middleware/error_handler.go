package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/i18n"
	"github.com/guttosm/xslt-messages/internal/logger"
)

// ErrorHandler logs errors attached with c.Error and answers 500 when the
// handler wrote nothing.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Component("http")
		log.Error().
			Str("request_id", requestID).
			Err(err.Err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Int("status_code", c.Writer.Status()).
			Msg("Request error")

		if !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, i18n.GetLocale(c))
			c.JSON(http.StatusInternalServerError, dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
		}
	}
}
