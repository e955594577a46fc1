package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/amirhossein-jamali/logrelay/internal/domain/error"
	"github.com/amirhossein-jamali/logrelay/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidRequest),
		errors.Is(err, domainerr.ErrUnknownLevel),
		errors.Is(err, domainerr.ErrInvalidCacheSize):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrEventNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrPublishFailed):
		return http.StatusBadGateway
	case errors.Is(err, domainerr.ErrDatabaseConnection):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError sends err as a dto.ErrorResponse. Server errors get a generic message.
func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}
