// Package middleware provides the gin middleware of the message service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// ContextKey types gin context keys set by this package.
type ContextKey string

// RequestIDKey is the gin context key holding the request ID.
const RequestIDKey ContextKey = "request_id"

// maxRequestIDLength bounds client-supplied IDs; longer ones are replaced.
const maxRequestIDLength = 128

// RequestID keeps the client's X-Request-ID or generates a UUID v4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID returns the request ID stored by RequestID, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}
