package models

import "time"

// HeroSlide is a page-level banner. Single-hero pages show the active slide
// with the lowest display order; the home page renders every active slide in
// order.
type HeroSlide struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	PageKey      string        `gorm:"size:50;index;not null" json:"pageKey" binding:"required"`
	Title        LocalizedText `gorm:"embedded;embeddedPrefix:title_" json:"title" binding:"required,locale_pair"`
	Subtitle     LocalizedText `gorm:"embedded;embeddedPrefix:subtitle_" json:"subtitle"`
	ImageURL     string        `gorm:"size:512;not null" json:"imageUrl" binding:"required"`
	CTAText      LocalizedText `gorm:"embedded;embeddedPrefix:cta_text_" json:"ctaText"`
	CTALink      string        `gorm:"size:512" json:"ctaLink"`
	DisplayOrder int           `gorm:"index" json:"displayOrder"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

func (HeroSlide) TableName() string { return "hero_slides" }
