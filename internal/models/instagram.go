package models

import "time"

// InstagramPost references a post embedded on the public site. The embed
// itself is rendered client-side from the URL.
type InstagramPost struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	PostURL      string    `gorm:"size:512;not null" json:"postUrl" binding:"required,url"`
	DisplayOrder int       `gorm:"index" json:"displayOrder"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (InstagramPost) TableName() string { return "instagram_posts" }
