package response

import (
	"errors"
	"log/slog"
	"net/http"

	"adboard/internal/api/apperrors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse terminates the request with the uniform
// {"message": <string|list>} envelope. Every failure kind maps to its
// status here and nowhere else; anything outside the taxonomy is a 500
// that exposes no detail.
func ErrorResponse(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if !errors.As(err, &appErr) {
		slog.ErrorContext(c.Request.Context(), "unclassified error reached the response boundary", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		return
	}

	switch appErr.Kind {
	case apperrors.KindValidation:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": appErr.Violations})
	case apperrors.KindConflict:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": appErr.Message})
	case apperrors.KindNotFound:
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": appErr.Message})
	case apperrors.KindUnauthorized:
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": appErr.Message})
	case apperrors.KindForbidden:
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": appErr.Message})
	default:
		slog.ErrorContext(c.Request.Context(), "internal error", "error", appErr)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}
