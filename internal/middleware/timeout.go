package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/timeout"
	"github.com/gin-gonic/gin"
)

// RequestTimeout bounds how long a caller waits. The handler chain runs
// with a deadlined context behind a buffered response writer; when the
// deadline fires first the caller gets the timeout envelope and the
// in-flight work is abandoned, not cancelled retroactively.
func RequestTimeout(d time.Duration) gin.HandlerFunc {
	if d <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}
	guard := timeout.New(
		timeout.WithTimeout(d),
		timeout.WithHandler(func(c *gin.Context) {
			c.Next()
		}),
		timeout.WithResponse(func(c *gin.Context) {
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"status": "error",
				"kind":   "timeout",
			})
		}),
	)
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		guard(c)
	}
}
