package middleware

import (
	"time"

	"github.com/amirhossein-jamali/logrelay/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	"github.com/gin-gonic/gin"
)

// HTTPContext is the context identifier of request lines written into the log scope
const HTTPContext = "http"

// Logger middleware logs incoming requests and their responses.
// When factory is set and the request carries a log scope, the request is also
// recorded in the scope under the "http" context: a DEBUG line before the handler
// and an INFO, WARN or ERROR line after it depending on the status.
func Logger(logger coreport.Logger, factory *logbuffer.Factory) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		scoped := scopedLogger(c, factory, logger)
		if scoped != nil {
			logScoped(logger, scoped.Debug("{0} {1} from {2}", method, path, ip))
		}

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()

		if scoped != nil {
			logScoped(logger, scoped.Log(severityForStatus(statusCode),
				"{0} {1} -> {2} in {3}ms", method, path, statusCode, latency.Milliseconds()))
		}

		logger.Info("Request processed", map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  latency.Milliseconds(),
			"ip":          ip,
			"request_id":  c.GetString(RequestIDKey),
			"user_agent":  c.Request.UserAgent(),
			"errors":      c.Errors.Errors(),
			"status_text": statusText(statusCode),
		})
	}
}

func scopedLogger(c *gin.Context, factory *logbuffer.Factory, logger coreport.Logger) *logbuffer.Logger {
	if factory == nil {
		return nil
	}
	scope, err := logbuffer.ScopeFromContext(c.Request.Context())
	if err != nil {
		return nil
	}
	l, err := factory.Logger(c.Request.Context(), scope, HTTPContext)
	if err != nil {
		logger.Warn("Failed to create request logger", map[string]any{
			"error":    err.Error(),
			"scope_id": scope.ID().String(),
		})
		return nil
	}
	return l
}

// logScoped reports a publish failure triggered by a request line; the response is not affected
func logScoped(logger coreport.Logger, err error) {
	if err != nil {
		logger.Warn("Request log report failed", map[string]any{
			"error": err.Error(),
		})
	}
}

func severityForStatus(code int) entity.Severity {
	switch {
	case code >= 500:
		return entity.SeverityError
	case code >= 400:
		return entity.SeverityWarn
	default:
		return entity.SeverityInfo
	}
}

// statusText returns the text for the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
