package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/irankiai/cinema-admin/internal/service"
)

// Every response carries the uniform envelope: status plus, on failure, a
// machine-readable kind. Callers that only look at status keep working.

func respondError(c *gin.Context, logger *zap.Logger, op string, err error) {
	code, kind := classify(err)
	logger.Error("request failed",
		zap.String("op", op), zap.String("kind", kind), zap.Error(err))
	c.JSON(code, gin.H{
		"status": "error",
		"kind":   kind,
	})
}

func respondInvalid(c *gin.Context, logger *zap.Logger, op string, err error) {
	logger.Warn("invalid request body", zap.String("op", op), zap.Error(err))
	c.JSON(http.StatusBadRequest, gin.H{
		"status": "error",
		"kind":   "validation_failed",
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, "unauthenticated"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, service.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, "validation_failed"
	case errors.Is(err, service.ErrInFlight):
		return http.StatusConflict, "in_flight"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timeout"
	default:
		return http.StatusInternalServerError, "store_failure"
	}
}
