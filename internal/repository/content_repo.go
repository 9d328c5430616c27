package repository

import (
	"errors"
	"fmt"
	"strings"

	"pesona/internal/domain"
	"pesona/internal/models"

	"gorm.io/gorm"
)

const (
	// DefaultPublicLimit is the page size for public listings.
	DefaultPublicLimit = 8
	// DefaultAdminLimit is the page size for dashboard listings.
	DefaultAdminLimit = 50
	// MaxLimit caps the page size a query string can request.
	MaxLimit = 100
)

// Scope is an extra query predicate applied on top of the standard filters.
type Scope = func(*gorm.DB) *gorm.DB

// ListParams is the filter object for content listings. Build one, call
// Normalize, then pass it to List.
type ListParams struct {
	Category           string // domain.CategoryAll (or empty) disables the filter
	Search             string // case-insensitive substring over both locales
	Page               int
	Limit              int
	FeaturedOnly       bool
	IncludeUnpublished bool // admin listings only
	Scopes             []Scope
}

// Normalize clamps page and limit. Bad query-string values degrade to
// defaults instead of erroring so public pages never 500 on a weird URL.
func (p *ListParams) Normalize(defaultLimit int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// TotalPages derives the page count for a filtered total.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// ContentPtr constrains P to a pointer to a content model.
type ContentPtr[T any] interface {
	*T
	Content() *models.ContentFields
}

// ContentRepository is the shared query layer for the six content types.
// The per-type constructors fix the sort expression; everything else
// (publish gate, category filter, bilingual search, pagination) is common.
type ContentRepository[T any, P ContentPtr[T]] struct {
	db   *gorm.DB
	sort string
}

func newContentRepository[T any, P ContentPtr[T]](db *gorm.DB, sort string) *ContentRepository[T, P] {
	return &ContentRepository[T, P]{db: db, sort: sort}
}

func (r *ContentRepository[T, P]) scope(params ListParams) *gorm.DB {
	q := r.db.Model(P(new(T)))
	if !params.IncludeUnpublished {
		q = q.Where("is_published = ?", true)
	}
	if params.Category != "" && params.Category != domain.CategoryAll {
		q = q.Where("category = ?", params.Category)
	}
	if params.FeaturedOnly {
		q = q.Where("is_featured = ?", true)
	}
	if term := strings.TrimSpace(params.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where(
			"LOWER(title_id) LIKE ? OR LOWER(title_en) LIKE ? OR LOWER(description_id) LIKE ? OR LOWER(description_en) LIKE ?",
			like, like, like, like,
		)
	}
	for _, s := range params.Scopes {
		q = s(q)
	}
	return q
}

// List returns one page of matching items plus the total match count.
// A page past the end yields an empty slice, not an error.
func (r *ContentRepository[T, P]) List(params ListParams) ([]T, int64, error) {
	params.Normalize(DefaultPublicLimit)
	q := r.scope(params)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, storageErr("count", err)
	}
	items := make([]T, 0, params.Limit)
	err := q.Order(r.sort).
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, storageErr("list", err)
	}
	return items, total, nil
}

// GetBySlug returns a published item by slug.
func (r *ContentRepository[T, P]) GetBySlug(slug string) (P, error) {
	return r.getBySlug(slug, false)
}

// GetBySlugAny also returns unpublished items; dashboard use only.
func (r *ContentRepository[T, P]) GetBySlugAny(slug string) (P, error) {
	return r.getBySlug(slug, true)
}

func (r *ContentRepository[T, P]) getBySlug(slug string, includeUnpublished bool) (P, error) {
	var item T
	q := r.db.Where("slug = ?", slug)
	if !includeUnpublished {
		q = q.Where("is_published = ?", true)
	}
	if err := q.First(&item).Error; err != nil {
		var zero P
		return zero, lookupErr(err)
	}
	return &item, nil
}

func (r *ContentRepository[T, P]) GetByID(id uint) (P, error) {
	var item T
	if err := r.db.First(&item, id).Error; err != nil {
		var zero P
		return zero, lookupErr(err)
	}
	return &item, nil
}

// Create inserts the item. A slug collision surfaces as
// gorm.ErrDuplicatedKey for the allocator to retry on.
func (r *ContentRepository[T, P]) Create(item P) error {
	err := r.db.Create(item).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return storageErr("create", err)
	}
	return err
}

func (r *ContentRepository[T, P]) Update(item P) error {
	if err := r.db.Save(item).Error; err != nil {
		return storageErr("update", err)
	}
	return nil
}

func (r *ContentRepository[T, P]) Delete(id uint) error {
	res := r.db.Delete(P(new(T)), id)
	if res.Error != nil {
		return storageErr("delete", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// PublishedSlugs lists every published slug for sitemap generation.
func (r *ContentRepository[T, P]) PublishedSlugs() ([]string, error) {
	var slugs []string
	err := r.db.Model(P(new(T))).
		Where("is_published = ?", true).
		Order("id ASC").
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, storageErr("slugs", err)
	}
	return slugs, nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}

func lookupErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return storageErr("get", err)
}
