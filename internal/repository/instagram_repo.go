package repository

import (
	"pesona/internal/domain"
	"pesona/internal/models"

	"gorm.io/gorm"
)

type InstagramRepository struct {
	db *gorm.DB
}

func NewInstagramRepository(db *gorm.DB) *InstagramRepository {
	return &InstagramRepository{db: db}
}

// Active returns the posts shown on the public feed, in display order.
func (r *InstagramRepository) Active() ([]models.InstagramPost, error) {
	var posts []models.InstagramPost
	err := r.db.Where("is_active = ?", true).
		Order("display_order ASC, id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, storageErr("instagram active", err)
	}
	return posts, nil
}

func (r *InstagramRepository) All() ([]models.InstagramPost, error) {
	var posts []models.InstagramPost
	err := r.db.Order("display_order ASC, id ASC").Find(&posts).Error
	if err != nil {
		return nil, storageErr("instagram all", err)
	}
	return posts, nil
}

func (r *InstagramRepository) GetByID(id uint) (*models.InstagramPost, error) {
	var post models.InstagramPost
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, lookupErr(err)
	}
	return &post, nil
}

func (r *InstagramRepository) Create(p *models.InstagramPost) error {
	if err := r.db.Create(p).Error; err != nil {
		return storageErr("instagram create", err)
	}
	return nil
}

func (r *InstagramRepository) Update(p *models.InstagramPost) error {
	if err := r.db.Save(p).Error; err != nil {
		return storageErr("instagram update", err)
	}
	return nil
}

func (r *InstagramRepository) Delete(id uint) error {
	res := r.db.Delete(&models.InstagramPost{}, id)
	if res.Error != nil {
		return storageErr("instagram delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
