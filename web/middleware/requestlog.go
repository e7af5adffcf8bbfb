package middleware

import (
	"time"

	"github.com/lingochat/lingochat/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"
	requestIDKey    = "request_id"
)

// RequestLogMiddleware tags each request with an id (kept from the client when
// it sends one) and writes an access log line once the handler returns.
func RequestLogMiddleware(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		start := time.Now()
		c.Next()

		if _, ok := skip[c.Request.URL.Path]; ok {
			return
		}
		logger.Debugf("[%s] %s %s %d %s %s", id, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start).Round(time.Microsecond), c.ClientIP())
		for _, err := range c.Errors {
			logger.Warningf("[%s] %v", id, err)
		}
	}
}

// GetRequestID returns the id assigned by RequestLogMiddleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
