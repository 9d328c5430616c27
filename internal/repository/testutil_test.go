package repository

import (
	"fmt"
	"strings"
	"testing"

	"pesona/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database. A single connection keeps
// the named memory store alive for the test's lifetime.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.AdminUser{},
		&models.Destination{},
		&models.Event{},
		&models.Culinary{},
		&models.Accommodation{},
		&models.Transport{},
		&models.Article{},
		&models.HeroSlide{},
		&models.InstagramPost{},
		&models.ActivityLog{},
	))
	return db
}

func makeDestination(i int, published bool) *models.Destination {
	return &models.Destination{
		ContentFields: models.ContentFields{
			Slug:        fmt.Sprintf("dest-%02d", i),
			Title:       models.LocalizedText{ID: fmt.Sprintf("Destinasi %02d", i), EN: fmt.Sprintf("Destination %02d", i)},
			Description: models.LocalizedText{ID: "Objek wisata di Toraja", EN: "A sight in Toraja"},
			Category:    "nature",
			IsPublished: published,
		},
		Rating: float64(i % 5),
	}
}
