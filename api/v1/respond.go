package v1

import (
	"errors"
	"net/http"

	"github.com/botadmin/services"
	"github.com/gin-gonic/gin"
)

// respondData wraps a successful payload in the standard envelope
func respondData(ctx *gin.Context, status int, data interface{}) {
	ctx.JSON(status, gin.H{
		"status": "success",
		"data":   data,
	})
}

// respondError maps service errors onto HTTP status codes
func respondError(ctx *gin.Context, err error) {
	switch {
	case services.IsValidationError(err):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case services.IsConflictError(err):
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "record not found"})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// respondNotFound reports a missing record by entity name
func respondNotFound(ctx *gin.Context, entity string) {
	ctx.JSON(http.StatusNotFound, gin.H{"error": entity + " not found"})
}

// respondBadRequest reports a malformed request body or query string
func respondBadRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
