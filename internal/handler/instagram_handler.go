package handler

import (
	"net/http"
	"strconv"

	"pesona/internal/domain"
	"pesona/internal/middleware"
	"pesona/internal/models"
	"pesona/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type InstagramHandler struct {
	repo     *repository.InstagramRepository
	activity *repository.ActivityRepository
	log      *zap.Logger
}

func NewInstagramHandler(repo *repository.InstagramRepository, activity *repository.ActivityRepository, log *zap.Logger) *InstagramHandler {
	return &InstagramHandler{repo: repo, activity: activity, log: log}
}

// Feed lists the active posts shown on the public site, in display order.
func (h *InstagramHandler) Feed(c *gin.Context) {
	posts, err := h.repo.Active()
	if err != nil {
		h.log.Error("instagram feed failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"success": false, "error": "storage unavailable", "data": []models.InstagramPost{}})
		return
	}
	respondData(c, http.StatusOK, posts)
}

func (h *InstagramHandler) AdminList(c *gin.Context) {
	posts, err := h.repo.All()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, posts)
}

func (h *InstagramHandler) Create(c *gin.Context) {
	var post models.InstagramPost
	if err := c.ShouldBindJSON(&post); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	post.ID = 0
	if err := h.repo.Create(&post); err != nil {
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionCreate, &post)
	respondData(c, http.StatusCreated, post)
}

func (h *InstagramHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := h.repo.GetByID(uint(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	var post models.InstagramPost
	if err := c.ShouldBindJSON(&post); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	post.ID = existing.ID
	post.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&post); err != nil {
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionUpdate, &post)
	respondData(c, http.StatusOK, post)
}

func (h *InstagramHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	existing, err := h.repo.GetByID(uint(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if err := h.repo.Delete(uint(id)); err != nil {
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionDelete, existing)
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *InstagramHandler) logActivity(c *gin.Context, action string, post *models.InstagramPost) {
	_ = h.activity.Append(&models.ActivityLog{
		Action:      action,
		EntityKind:  domain.EntityInstagram,
		EntityID:    post.ID,
		EntityTitle: post.PostURL,
		ActorID:     middleware.CurrentUserID(c),
		ActorName:   c.GetString("email"),
	})
}
