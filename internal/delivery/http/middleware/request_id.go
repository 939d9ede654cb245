package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestID attaches a unique id to every request so log lines and
// error responses can be correlated. Honors an incoming X-Request-ID
// from trusted proxies.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader("X-Request-ID")
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Set("RequestID", reqID)
		c.Header("X-Request-ID", reqID)

		c.Next()
	}
}
