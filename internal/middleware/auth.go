package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/xslt-messages/internal/domain/dto"
	"github.com/guttosm/xslt-messages/internal/i18n"
)

const (
	// APIKeyHeader is the header carrying the API key.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is the query parameter accepted when the header is absent.
	APIKeyQuery = "api_key"
)

// APIKeyAuth rejects requests without one of validKeys.
// An empty key set disables the check.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(validKeys) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}

		switch {
		case key == "":
			abortUnauthorized(c, i18n.ErrKeyAPIKeyRequired)
		case !validAPIKey(validKeys, key):
			abortUnauthorized(c, i18n.ErrKeyInvalidAPIKey)
		default:
			c.Next()
		}
	}
}

func validAPIKey(validKeys map[string]bool, key string) bool {
	found := false
	for k, enabled := range validKeys {
		if enabled && subtle.ConstantTimeCompare([]byte(k), []byte(key)) == 1 {
			found = true
		}
	}
	return found
}

func abortUnauthorized(c *gin.Context, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewError(dto.ErrCodeUnauthorized, message).WithRequestID(GetRequestID(c)))
}
