package handler

import (
	"net/http"

	"pesona/internal/repository"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	repo *repository.ActivityRepository
}

func NewActivityHandler(repo *repository.ActivityRepository) *ActivityHandler {
	return &ActivityHandler{repo: repo}
}

// Recent pages through the audit trail, newest first.
func (h *ActivityHandler) Recent(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", repository.DefaultAdminLimit)
	entries, total, err := h.repo.Recent(page, limit)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if limit < 1 || limit > repository.MaxLimit {
		limit = repository.DefaultAdminLimit
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       entries,
		"total":      total,
		"totalPages": repository.TotalPages(total, limit),
	})
}
