package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

// TransportRepository lists featured operators first, then newest.
type TransportRepository = ContentRepository[models.Transport, *models.Transport]

func NewTransportRepository(db *gorm.DB) *TransportRepository {
	return newContentRepository[models.Transport, *models.Transport](db, "is_featured DESC, created_at DESC, id DESC")
}
