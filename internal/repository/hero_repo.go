package repository

import (
	"errors"

	"pesona/internal/domain"
	"pesona/internal/models"

	"gorm.io/gorm"
)

type HeroRepository struct {
	db *gorm.DB
}

func NewHeroRepository(db *gorm.DB) *HeroRepository {
	return &HeroRepository{db: db}
}

// Current returns the active slide with the lowest display order for a page,
// or domain.ErrNotFound so the handler can fall back to the page default.
func (r *HeroRepository) Current(pageKey string) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	err := r.db.Where("page_key = ? AND is_active = ?", pageKey, true).
		Order("display_order ASC, id ASC").
		First(&slide).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, storageErr("hero current", err)
	}
	return &slide, nil
}

// ActiveSlides returns every active slide for a page in display order. Used
// by the home page carousel.
func (r *HeroRepository) ActiveSlides(pageKey string) ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.Where("page_key = ? AND is_active = ?", pageKey, true).
		Order("display_order ASC, id ASC").
		Find(&slides).Error
	if err != nil {
		return nil, storageErr("hero slides", err)
	}
	return slides, nil
}

// All lists every slide, active or not, for the dashboard.
func (r *HeroRepository) All() ([]models.HeroSlide, error) {
	var slides []models.HeroSlide
	err := r.db.Order("page_key ASC, display_order ASC").Find(&slides).Error
	if err != nil {
		return nil, storageErr("hero all", err)
	}
	return slides, nil
}

func (r *HeroRepository) GetByID(id uint) (*models.HeroSlide, error) {
	var slide models.HeroSlide
	if err := r.db.First(&slide, id).Error; err != nil {
		return nil, lookupErr(err)
	}
	return &slide, nil
}

func (r *HeroRepository) Create(s *models.HeroSlide) error {
	if err := r.db.Create(s).Error; err != nil {
		return storageErr("hero create", err)
	}
	return nil
}

func (r *HeroRepository) Update(s *models.HeroSlide) error {
	if err := r.db.Save(s).Error; err != nil {
		return storageErr("hero update", err)
	}
	return nil
}

func (r *HeroRepository) Delete(id uint) error {
	res := r.db.Delete(&models.HeroSlide{}, id)
	if res.Error != nil {
		return storageErr("hero delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
