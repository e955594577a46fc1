package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// RequestObserver records HTTP request metrics
type RequestObserver interface {
	ObserveRequest(path, method string, status int, elapsed coreport.Duration)
}

// Metrics records every request under its route pattern
func Metrics(observer RequestObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		observer.ObserveRequest(path, c.Request.Method, c.Writer.Status(), coreport.Duration(time.Since(start)))
	}
}
