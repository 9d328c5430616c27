package models

import "strings"

// LocalizedText carries both supported locale variants of a string. It is
// embedded into gorm models with a column prefix, e.g. title_id / title_en.
type LocalizedText struct {
	ID string `gorm:"type:text" json:"id"`
	EN string `gorm:"type:text" json:"en"`
}

// In resolves the variant for a locale, falling back to the other variant
// when the requested one is empty. Records are supposed to carry both
// locales, but old data may not.
func (t LocalizedText) In(locale string) string {
	switch locale {
	case "en":
		if t.EN != "" {
			return t.EN
		}
		return t.ID
	default:
		if t.ID != "" {
			return t.ID
		}
		return t.EN
	}
}

// Preferred returns the Indonesian variant when present, otherwise English.
// Slugs are derived from this.
func (t LocalizedText) Preferred() string {
	if strings.TrimSpace(t.ID) != "" {
		return t.ID
	}
	return t.EN
}

// Complete reports whether both locale variants are non-empty.
func (t LocalizedText) Complete() bool {
	return strings.TrimSpace(t.ID) != "" && strings.TrimSpace(t.EN) != ""
}
