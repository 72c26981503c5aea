package handlers

import (
	"errors"
	"net/http"

	"alfatih-backend/internal/domain"
	"alfatih-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, code, message string, details any) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, gin.H{
		"error":      message,
		"code":       code,
		"details":    details,
		"request_id": middleware.GetRequestID(c),
		"message":    message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. Persistence
// errors keep their backend-provided message; nothing retries anything.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsPartialSync(err):
		var partial domain.PartialSyncError
		errors.As(err, &partial)
		respondError(c, http.StatusInternalServerError, "partial_sync",
			err.Error(), gin.H{"order_id": partial.OrderID, "step": partial.Step})
	case domain.IsUpload(err):
		respondError(c, http.StatusBadGateway, "upload_error", err.Error(), nil)
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error(), nil)
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), nil)
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", err.Error(), nil)
	}
}
