package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

type AdminUserRepository struct {
	db *gorm.DB
}

func NewAdminUserRepository(db *gorm.DB) *AdminUserRepository {
	return &AdminUserRepository{db: db}
}

func (r *AdminUserRepository) GetByEmail(email string) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, lookupErr(err)
	}
	return &u, nil
}

func (r *AdminUserRepository) GetByID(id uint) (*models.AdminUser, error) {
	var u models.AdminUser
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, lookupErr(err)
	}
	return &u, nil
}
