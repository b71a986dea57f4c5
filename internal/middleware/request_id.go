package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// requestIDKey is the gin context key the access logger reads the id from
const requestIDKey = "request_id"

// requestIDHeader carries the id on both request and response
const requestIDHeader = "X-Request-ID"

// RequestID tags every request with an id for log correlation. An inbound
// X-Request-ID is kept so gate clients can thread their own ids through;
// otherwise a fresh UUID is issued. The id is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID; empty if the middleware
// did not run
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
