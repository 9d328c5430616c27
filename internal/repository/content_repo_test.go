package repository

import (
	"testing"

	"pesona/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExcludesUnpublished(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)

	require.NoError(t, repo.Create(makeDestination(1, true)))
	require.NoError(t, repo.Create(makeDestination(2, false)))

	items, total, err := repo.List(ListParams{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "dest-01", items[0].Slug)
}

func TestListPagination(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)
	for i := 1; i <= 20; i++ {
		require.NoError(t, repo.Create(makeDestination(i, true)))
	}

	var seen []string
	for page := 1; page <= 3; page++ {
		items, total, err := repo.List(ListParams{Page: page, Limit: 8})
		require.NoError(t, err)
		assert.EqualValues(t, 20, total)
		assert.Equal(t, 3, TotalPages(total, 8))
		if page < 3 {
			assert.Len(t, items, 8)
		} else {
			assert.Len(t, items, 4)
		}
		for _, it := range items {
			seen = append(seen, it.Slug)
		}
	}
	// Stable sort key means no item repeats across pages.
	unique := map[string]bool{}
	for _, s := range seen {
		assert.False(t, unique[s], "slug %s appeared twice", s)
		unique[s] = true
	}
	assert.Len(t, unique, 20)
}

func TestListPageBeyondEnd(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)
	require.NoError(t, repo.Create(makeDestination(1, true)))

	items, total, err := repo.List(ListParams{Page: 99, Limit: 8})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Empty(t, items)
}

func TestListClampsBadPageAndLimit(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)
	require.NoError(t, repo.Create(makeDestination(1, true)))

	for _, params := range []ListParams{
		{Page: 0, Limit: 0},
		{Page: -3, Limit: -1},
	} {
		items, _, err := repo.List(params)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	}

	params := ListParams{Page: 1, Limit: 5000}
	params.Normalize(DefaultPublicLimit)
	assert.Equal(t, MaxLimit, params.Limit)
}

func TestSearchMatchesBothLocales(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)

	require.NoError(t, repo.Create(&models.Destination{
		ContentFields: models.ContentFields{
			Slug:        "kete-kesu",
			Title:       models.LocalizedText{ID: "Ke'te Kesu", EN: "Kete Kesu Village"},
			Description: models.LocalizedText{ID: "Desa adat dengan tongkonan", EN: "Ancient village with boat houses"},
			Category:    "culture",
			IsPublished: true,
		},
	}))
	require.NoError(t, repo.Create(&models.Destination{
		ContentFields: models.ContentFields{
			Slug:        "londa",
			Title:       models.LocalizedText{ID: "Londa", EN: "Londa"},
			Description: models.LocalizedText{ID: "Kuburan gua", EN: "Cliff burial site"},
			Category:    "culture",
			IsPublished: true,
		},
	}))

	tests := []struct {
		term string
		want []string
	}{
		{"KESU", []string{"kete-kesu"}},        // case-insensitive, id title
		{"boat", []string{"kete-kesu"}},        // en description
		{"tongkonan", []string{"kete-kesu"}},   // id description
		{"londa", []string{"londa"}},           // both locales
		{"o", []string{"kete-kesu", "londa"}},  // substring in all
		{"waterfall", nil},                     // no match
	}
	for _, tt := range tests {
		items, total, err := repo.List(ListParams{Search: tt.term, Page: 1, Limit: 10})
		require.NoError(t, err)
		assert.EqualValues(t, len(tt.want), total, "term %q", tt.term)
		var slugs []string
		for _, it := range items {
			slugs = append(slugs, it.Slug)
		}
		assert.ElementsMatch(t, tt.want, slugs, "term %q", tt.term)
	}
}

func TestCategoryAndFeaturedFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)

	nature := makeDestination(1, true)
	culture := makeDestination(2, true)
	culture.Category = "culture"
	culture.IsFeatured = true
	require.NoError(t, repo.Create(nature))
	require.NoError(t, repo.Create(culture))

	items, total, err := repo.List(ListParams{Category: "culture", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "dest-02", items[0].Slug)

	items, _, err = repo.List(ListParams{Category: "all", FeaturedOnly: true, Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "dest-02", items[0].Slug)
}

func TestGetBySlug(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)

	require.NoError(t, repo.Create(makeDestination(1, true)))
	hidden := makeDestination(2, false)
	require.NoError(t, repo.Create(hidden))

	got, err := repo.GetBySlug("dest-01")
	require.NoError(t, err)
	assert.Equal(t, "Destinasi 01", got.Title.ID)

	_, err = repo.GetBySlug("dest-02")
	assert.Error(t, err)

	got, err = repo.GetBySlugAny("dest-02")
	require.NoError(t, err)
	assert.False(t, got.IsPublished)
}

func TestPublishedSlugs(t *testing.T) {
	db := newTestDB(t)
	repo := NewDestinationRepository(db)
	require.NoError(t, repo.Create(makeDestination(1, true)))
	require.NoError(t, repo.Create(makeDestination(2, false)))
	require.NoError(t, repo.Create(makeDestination(3, true)))

	slugs, err := repo.PublishedSlugs()
	require.NoError(t, err)
	assert.Equal(t, []string{"dest-01", "dest-03"}, slugs)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(20, 8))
	assert.Equal(t, 1, TotalPages(8, 8))
	assert.Equal(t, 2, TotalPages(9, 8))
	assert.Equal(t, 0, TotalPages(0, 8))
	assert.Equal(t, 0, TotalPages(10, 0))
}
