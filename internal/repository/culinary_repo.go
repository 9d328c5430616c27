package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

type CulinaryRepository = ContentRepository[models.Culinary, *models.Culinary]

func NewCulinaryRepository(db *gorm.DB) *CulinaryRepository {
	return newContentRepository[models.Culinary, *models.Culinary](db, "rating DESC, id ASC")
}
