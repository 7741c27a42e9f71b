package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger emits one line per request: route, outcome, duration, payload size
// and the request id for correlating with service-level events.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Printf("[HTTP] %s %s status=%d dur=%s bytes=%d ip=%s request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(10*time.Microsecond),
			c.Writer.Size(),
			c.ClientIP(),
			GetRequestID(c),
		)
	}
}
