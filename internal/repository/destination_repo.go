package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

// DestinationRepository sorts by visitor rating, best first.
type DestinationRepository = ContentRepository[models.Destination, *models.Destination]

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return newContentRepository[models.Destination, *models.Destination](db, "rating DESC, id ASC")
}
