package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

type AccommodationRepository = ContentRepository[models.Accommodation, *models.Accommodation]

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return newContentRepository[models.Accommodation, *models.Accommodation](db, "rating DESC, id ASC")
}
