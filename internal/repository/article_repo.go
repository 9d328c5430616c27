package repository

import (
	"pesona/internal/models"

	"gorm.io/gorm"
)

type ArticleRepository = ContentRepository[models.Article, *models.Article]

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return newContentRepository[models.Article, *models.Article](db, "published_at DESC, id DESC")
}
