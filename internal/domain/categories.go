package domain

// Category values are a fixed enum per content type; writes carrying
// anything else are rejected as validation errors.
var categories = map[string][]string{
	EntityDestination:   {"nature", "culture", "history", "adventure"},
	EntityEvent:         {"festival", "ceremony", "music", "market"},
	EntityCulinary:      {"food", "beverage", "snack"},
	EntityAccommodation: {"hotel", "guesthouse", "homestay", "villa"},
	EntityTransport:     {"rental", "shuttle", "bus", "guide"},
	EntityArticle:       {"news", "culture", "tips", "travel"},
}

func CategoriesFor(entity string) []string {
	return categories[entity]
}

func ValidCategory(entity, category string) bool {
	for _, c := range categories[entity] {
		if c == category {
			return true
		}
	}
	return false
}
