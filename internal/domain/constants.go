package domain

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)

const (
	LocaleIndonesian = "id"
	LocaleEnglish    = "en"
)

// Locales lists the supported locales in fallback order.
var Locales = []string{LocaleIndonesian, LocaleEnglish}

const (
	EntityDestination   = "destination"
	EntityEvent         = "event"
	EntityCulinary      = "culinary"
	EntityAccommodation = "accommodation"
	EntityTransport     = "transport"
	EntityArticle       = "article"
	EntityHeroSlide     = "hero_slide"
	EntityInstagram     = "instagram_post"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionLogin  = "login"
)

// CategoryAll disables category filtering on list queries.
const CategoryAll = "all"

// Hero page keys. Home is the only page that renders an ordered multi-slide
// sequence; every other page shows a single current slide.
const (
	PageHome           = "home"
	PageDestinations   = "destinations"
	PageEvents         = "events"
	PageCulinary       = "culinary"
	PageAccommodations = "accommodations"
	PageTransport      = "transport"
	PageArticles       = "articles"
)
