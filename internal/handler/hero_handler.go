package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pesona/internal/domain"
	"pesona/internal/middleware"
	"pesona/internal/models"
	"pesona/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// heroDefaults backs pages that have no active slide configured yet.
var heroDefaults = map[string]models.HeroSlide{
	domain.PageHome: {
		PageKey:  domain.PageHome,
		Title:    models.LocalizedText{ID: "Jelajahi Tana Toraja", EN: "Explore Tana Toraja"},
		Subtitle: models.LocalizedText{ID: "Negeri di atas awan", EN: "The land above the clouds"},
		ImageURL: "/images/hero/home-default.jpg",
	},
	domain.PageDestinations: {
		PageKey:  domain.PageDestinations,
		Title:    models.LocalizedText{ID: "Destinasi Wisata", EN: "Destinations"},
		Subtitle: models.LocalizedText{ID: "Alam, budaya, dan sejarah Toraja", EN: "Toraja's nature, culture and history"},
		ImageURL: "/images/hero/destinations-default.jpg",
	},
	domain.PageEvents: {
		PageKey:  domain.PageEvents,
		Title:    models.LocalizedText{ID: "Acara & Festival", EN: "Events & Festivals"},
		Subtitle: models.LocalizedText{ID: "Agenda budaya sepanjang tahun", EN: "Cultural agenda all year round"},
		ImageURL: "/images/hero/events-default.jpg",
	},
	domain.PageCulinary: {
		PageKey:  domain.PageCulinary,
		Title:    models.LocalizedText{ID: "Kuliner Khas", EN: "Local Cuisine"},
		Subtitle: models.LocalizedText{ID: "Cita rasa dataran tinggi", EN: "Flavors of the highlands"},
		ImageURL: "/images/hero/culinary-default.jpg",
	},
	domain.PageAccommodations: {
		PageKey:  domain.PageAccommodations,
		Title:    models.LocalizedText{ID: "Penginapan", EN: "Places to Stay"},
		Subtitle: models.LocalizedText{ID: "Dari homestay hingga hotel", EN: "From homestays to hotels"},
		ImageURL: "/images/hero/accommodations-default.jpg",
	},
	domain.PageTransport: {
		PageKey:  domain.PageTransport,
		Title:    models.LocalizedText{ID: "Transportasi", EN: "Getting Around"},
		Subtitle: models.LocalizedText{ID: "Menuju dan berkeliling Toraja", EN: "To and around Toraja"},
		ImageURL: "/images/hero/transport-default.jpg",
	},
	domain.PageArticles: {
		PageKey:  domain.PageArticles,
		Title:    models.LocalizedText{ID: "Artikel", EN: "Articles"},
		Subtitle: models.LocalizedText{ID: "Cerita dan panduan perjalanan", EN: "Stories and travel guides"},
		ImageURL: "/images/hero/articles-default.jpg",
	},
}

type HeroHandler struct {
	repo     *repository.HeroRepository
	activity *repository.ActivityRepository
	log      *zap.Logger
}

func NewHeroHandler(repo *repository.HeroRepository, activity *repository.ActivityRepository, log *zap.Logger) *HeroHandler {
	return &HeroHandler{repo: repo, activity: activity, log: log}
}

// Resolve returns the banner for a page. The home page gets the full ordered
// slide list; every other page gets its single current slide, falling back
// to the built-in default when none is active.
func (h *HeroHandler) Resolve(c *gin.Context) {
	pageKey := c.Param("page")
	def, known := heroDefaults[pageKey]
	if !known {
		respondError(c, http.StatusNotFound, "unknown page")
		return
	}
	if pageKey == domain.PageHome {
		slides, err := h.repo.ActiveSlides(pageKey)
		if err != nil {
			h.log.Error("hero slides failed", zap.Error(err))
			slides = nil
		}
		if len(slides) == 0 {
			slides = []models.HeroSlide{def}
		}
		respondData(c, http.StatusOK, slides)
		return
	}
	slide, err := h.repo.Current(pageKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Error("hero current failed", zap.Error(err))
		}
		respondData(c, http.StatusOK, def)
		return
	}
	respondData(c, http.StatusOK, slide)
}

func (h *HeroHandler) AdminList(c *gin.Context) {
	slides, err := h.repo.All()
	if err != nil {
		respondDomainError(c, err)
		return
	}
	respondData(c, http.StatusOK, slides)
}

func (h *HeroHandler) Create(c *gin.Context) {
	var slide models.HeroSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, known := heroDefaults[slide.PageKey]; !known {
		respondError(c, http.StatusBadRequest, "unknown page key: "+slide.PageKey)
		return
	}
	slide.ID = 0
	if err := h.repo.Create(&slide); err != nil {
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionCreate, &slide)
	respondData(c, http.StatusCreated, slide)
}

func (h *HeroHandler) Update(c *gin.Context) {
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
	var slide models.HeroSlide
	if err := c.ShouldBindJSON(&slide); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if _, known := heroDefaults[slide.PageKey]; !known {
		respondError(c, http.StatusBadRequest, "unknown page key: "+slide.PageKey)
		return
	}
	slide.ID = existing.ID
	slide.CreatedAt = existing.CreatedAt
	if err := h.repo.Update(&slide); err != nil {
		respondDomainError(c, err)
		return
	}
	h.logActivity(c, domain.ActionUpdate, &slide)
	respondData(c, http.StatusOK, slide)
}

func (h *HeroHandler) Delete(c *gin.Context) {
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

func (h *HeroHandler) logActivity(c *gin.Context, action string, slide *models.HeroSlide) {
	_ = h.activity.Append(&models.ActivityLog{
		Action:      action,
		EntityKind:  domain.EntityHeroSlide,
		EntityID:    slide.ID,
		EntityTitle: slide.Title.Preferred(),
		ActorID:     middleware.CurrentUserID(c),
		ActorName:   c.GetString("email"),
	})
}
