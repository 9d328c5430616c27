package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Append writes an audit row. Callers ignore the error on the mutation path;
// a failed log line must not fail the mutation itself.
func (r *ActivityRepository) Append(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// Recent returns one page of the trail, newest first.
func (r *ActivityRepository) Recent(page, limit int) ([]models.ActivityLog, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultAdminLimit
	}
	var total int64
	if err := r.db.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, storageErr("activity count", err)
	}
	var entries []models.ActivityLog
	err := r.db.Order("created_at DESC, id DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, storageErr("activity list", err)
	}
	return entries, total, nil
}
