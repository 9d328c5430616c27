package models

import (
	"time"
)

// ContentFields is the shape shared by every public content type: a unique
// slug, localized title/description, a category from the type's enum and the
// publish/feature flags that gate public visibility.
type ContentFields struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	Slug        string        `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Title       LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title" binding:"required,locale_pair"`
	Description LocalizedText `gorm:"embedded;embeddedPrefix:description_" json:"description" binding:"locale_pair"`
	Category    string        `gorm:"size:50;index" json:"category" binding:"required"`
	ImageURL    string        `gorm:"size:512" json:"imageUrl"`
	IsPublished bool          `gorm:"index" json:"isPublished"`
	IsFeatured  bool          `json:"isFeatured"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Content exposes the shared fields to the generic repository and handlers.
func (c *ContentFields) Content() *ContentFields { return c }

type Destination struct {
	ContentFields
	Rating   float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	Location string  `gorm:"size:255" json:"location"`
	MapURL   string  `gorm:"size:512" json:"mapUrl"`
}

func (Destination) TableName() string { return "destinations" }

type Event struct {
	ContentFields
	StartDate time.Time  `json:"startDate" binding:"required"`
	EndDate   *time.Time `json:"endDate"`
	Location  string     `gorm:"size:255" json:"location"`
	CTALink   string     `gorm:"size:512" json:"ctaLink"`
}

func (Event) TableName() string { return "events" }

type Culinary struct {
	ContentFields
	Rating     float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	PriceRange string  `gorm:"size:100" json:"priceRange"`
	Location   string  `gorm:"size:255" json:"location"`
}

func (Culinary) TableName() string { return "culinaries" }

type Accommodation struct {
	ContentFields
	Rating     float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	PriceRange string  `gorm:"size:100" json:"priceRange"`
	Address    string  `gorm:"size:512" json:"address"`
	Phone      string  `gorm:"size:50" json:"phone"`
}

func (Accommodation) TableName() string { return "accommodations" }

type Transport struct {
	ContentFields
	PriceInfo string `gorm:"size:255" json:"priceInfo"`
	WhatsApp  string `gorm:"size:50" json:"whatsapp"`
}

func (Transport) TableName() string { return "transports" }

type Article struct {
	ContentFields
	Body        LocalizedText `gorm:"embedded;embeddedPrefix:body_" json:"body"`
	Author      string        `gorm:"size:255" json:"author"`
	PublishedAt time.Time     `json:"publishedAt"`
	Tags        string        `gorm:"size:512" json:"tags"` // comma-separated
}

func (Article) TableName() string { return "articles" }
