package middleware

import (
	"net/http"

	domainerr "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	coreport "github.com/amirhossein-jamali/logrelay/internal/domain/port/core"
	"github.com/amirhossein-jamali/logrelay/internal/domain/usecase/logbuffer"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ScopeHeader carries the ID of the request's log scope
const ScopeHeader = "X-Log-Scope"

// LogScope starts one log scope per request and attaches it to the request context.
// Every buffered logger used while serving the request shares its buffer.
func LogScope(factory *logbuffer.Factory, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := factory.NewScope(c.Request.Context())
		if err != nil {
			logger.Error("Failed to start log scope", map[string]any{
				"error":      err.Error(),
				"request_id": c.GetString(RequestIDKey),
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
			return
		}

		c.Request = c.Request.WithContext(logbuffer.WithScope(c.Request.Context(), scope))
		c.Header(ScopeHeader, scope.ID().String())
		c.Next()
	}
}
