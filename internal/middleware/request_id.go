// Package middleware provides the gin middleware stack of the tour service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// ContextKey namespaces values stored on the gin context.
type ContextKey string

// RequestIDKey is where RequestID stores the ID.
const RequestIDKey ContextKey = "request_id"

const maxRequestIDLength = 128

// RequestID reuses a client supplied X-Request-ID when it is short and
// printable, and otherwise generates a UUID v4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}

		c.Set(string(RequestIDKey), requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}

// GetRequestID returns the request ID or "" outside the middleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(RequestIDKey))
}
