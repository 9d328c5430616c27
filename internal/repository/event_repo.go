package repository

import (
	"time"

	"pesona/internal/models"

	"gorm.io/gorm"
)

// EventRepository sorts by start date so the nearest event lists first.
type EventRepository = ContentRepository[models.Event, *models.Event]

func NewEventRepository(db *gorm.DB) *EventRepository {
	return newContentRepository[models.Event, *models.Event](db, "start_date ASC, id ASC")
}

// Upcoming keeps events whose end date has not passed, or that have no end
// date and whose start date has not passed. "Passed" is measured against
// local midnight of now, so an event ending today still counts.
func Upcoming(now time.Time) Scope {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("end_date >= ? OR (end_date IS NULL AND start_date >= ?)", today, today)
	}
}
