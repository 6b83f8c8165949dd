package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/cyclehub/inventoryman/internal/domain/apperror"
)

// respondError maps the shared error taxonomy onto HTTP statuses. Store and
// imaging failures are logged with their cause and surface as a generic
// message; validation problems echo their reason back to the caller.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, apperror.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperror.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": "record already exists"})
	case errors.Is(err, apperror.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, apperror.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, apperror.ErrImaging):
		logger.Error("label rendering failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "label rendering failed"})
	default:
		logger.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
