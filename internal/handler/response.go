package handler

import (
	"errors"
	"net/http"

	"pesona/internal/domain"
	"pesona/internal/service"

	"github.com/gin-gonic/gin"
)

// Every endpoint shares one envelope: {success, data, error?, total?,
// totalPages?}. No handler returns a bare {error} body.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondPage(c *gin.Context, data any, total int64, totalPages int) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"total":      total,
		"totalPages": totalPages,
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// respondDomainError maps the error taxonomy to HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		respondError(c, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrValidation):
		respondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCreds):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrStorageUnavailable):
		respondError(c, http.StatusServiceUnavailable, "storage unavailable")
	case errors.Is(err, domain.ErrUpstream):
		respondError(c, http.StatusBadGateway, "upstream service failed")
	default:
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}
