package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/i18n"
)

// DefaultTimeout bounds a request when no timeout is configured.
const DefaultTimeout = 10 * time.Second

// Timeout attaches a deadline to the request context and answers 504 when the
// handler chain returns after it without having written a response.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
			c.AbortWithStatusJSON(http.StatusGatewayTimeout,
				dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(GetRequestID(c)))
		}
	}
}
