package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"pesona/internal/domain"
	"pesona/internal/middleware"
	"pesona/internal/models"
	"pesona/internal/repository"
	"pesona/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentHandler serves the public listing/detail endpoints and the admin
// CRUD endpoints for one content type. The six types differ only in their
// model, sort order and category enum, all fixed at construction.
type ContentHandler[T any, P repository.ContentPtr[T]] struct {
	repo     *repository.ContentRepository[T, P]
	activity *repository.ActivityRepository
	entity   string
	log      *zap.Logger

	// extraFilters lets a type add query-string driven scopes, e.g. the
	// events upcoming filter.
	extraFilters func(c *gin.Context) []repository.Scope
}

func NewContentHandler[T any, P repository.ContentPtr[T]](
	repo *repository.ContentRepository[T, P],
	activity *repository.ActivityRepository,
	entity string,
	log *zap.Logger,
) *ContentHandler[T, P] {
	return &ContentHandler[T, P]{repo: repo, activity: activity, entity: entity, log: log}
}

// WithFilters installs the per-type extra query scopes.
func (h *ContentHandler[T, P]) WithFilters(f func(c *gin.Context) []repository.Scope) *ContentHandler[T, P] {
	h.extraFilters = f
	return h
}

func queryInt(c *gin.Context, key string, fallback int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return fallback
	}
	return v
}

func (h *ContentHandler[T, P]) listParams(c *gin.Context, defaultLimit int) repository.ListParams {
	params := repository.ListParams{
		Category:     c.DefaultQuery("category", domain.CategoryAll),
		Search:       c.Query("q"),
		Page:         queryInt(c, "page", 1),
		Limit:        queryInt(c, "limit", defaultLimit),
		FeaturedOnly: c.Query("featured") == "true",
	}
	if h.extraFilters != nil {
		params.Scopes = h.extraFilters(c)
	}
	params.Normalize(defaultLimit)
	return params
}

// List is the public listing: published items only. A storage failure
// degrades to an empty page with success=false so the frontend can render
// its "nothing found" state, while callers can still tell the cases apart.
func (h *ContentHandler[T, P]) List(c *gin.Context) {
	params := h.listParams(c, repository.DefaultPublicLimit)
	items, total, err := h.repo.List(params)
	if err != nil {
		h.log.Error("public list failed", zap.String("entity", h.entity), zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"success":    false,
			"error":      "storage unavailable",
			"data":       []T{},
			"total":      0,
			"totalPages": 0,
		})
		return
	}
	respondPage(c, items, total, repository.TotalPages(total, params.Limit))
}

// GetBySlug is the public detail endpoint; unpublished items 404.
func (h *ContentHandler[T, P]) GetBySlug(c *gin.Context) {
	item, err := h.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// AdminList includes unpublished items and uses the larger page size.
func (h *ContentHandler[T, P]) AdminList(c *gin.Context) {
	params := h.listParams(c, repository.DefaultAdminLimit)
	params.IncludeUnpublished = true
	items, total, err := h.repo.List(params)
	if err != nil {
		h.log.Error("admin list failed", zap.String("entity", h.entity), zap.Error(err))
		respondDomainError(c, err)
		return
	}
	respondPage(c, items, total, repository.TotalPages(total, params.Limit))
}

func (h *ContentHandler[T, P]) AdminGet(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	item, err := h.repo.GetByID(uint(id))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

// Create allocates a unique slug from the title and inserts the item.
func (h *ContentHandler[T, P]) Create(c *gin.Context) {
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	p := P(&item)
	f := p.Content()
	if !domain.ValidCategory(h.entity, f.Category) {
		respondError(c, http.StatusBadRequest, "unknown category: "+f.Category)
		return
	}
	f.ID = 0
	f.CreatedAt = time.Time{}
	f.UpdatedAt = time.Time{}

	_, err := service.AllocateSlug(f.Title, func(s string) error {
		f.Slug = s
		return h.repo.Create(p)
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("create failed", zap.String("entity", h.entity), zap.Error(err))
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionCreate, f)
	respondData(c, http.StatusCreated, item)
}

// Update replaces the mutable fields; id, slug and creation time survive.
func (h *ContentHandler[T, P]) Update(c *gin.Context) {
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
	var item T
	if err := c.ShouldBindJSON(&item); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	p := P(&item)
	f := p.Content()
	if !domain.ValidCategory(h.entity, f.Category) {
		respondError(c, http.StatusBadRequest, "unknown category: "+f.Category)
		return
	}
	prev := existing.Content()
	f.ID = prev.ID
	f.Slug = prev.Slug // slugs are stable once allocated
	f.CreatedAt = prev.CreatedAt

	if err := h.repo.Update(p); err != nil {
		h.log.Error("update failed", zap.String("entity", h.entity), zap.Error(err))
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionUpdate, f)
	respondData(c, http.StatusOK, item)
}

func (h *ContentHandler[T, P]) Delete(c *gin.Context) {
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
	h.logActivity(c, domain.ActionDelete, existing.Content())
	respondData(c, http.StatusOK, gin.H{"deleted": id})
}

func (h *ContentHandler[T, P]) logActivity(c *gin.Context, action string, f *models.ContentFields) {
	entry := &models.ActivityLog{
		Action:      action,
		EntityKind:  h.entity,
		EntityID:    f.ID,
		EntityTitle: f.Title.Preferred(),
		ActorID:     middleware.CurrentUserID(c),
		ActorName:   c.GetString("email"),
	}
	if err := h.activity.Append(entry); err != nil {
		h.log.Warn("activity log write failed", zap.Error(err))
	}
}
