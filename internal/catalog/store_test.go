package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Lookups(t *testing.T) {
	s := NewStore()

	c, ok := s.CategoryByID("grafiti")
	require.True(t, ok)
	assert.Equal(t, "Grafiti & Arte Urbano", c.Name)

	c, ok = s.CategoryBySlug("tattoo")
	require.True(t, ok)
	assert.Equal(t, "tattoo", c.ID)

	sub, ok := s.Subcategory("grafiti", "sprays")
	require.True(t, ok)
	assert.Equal(t, "Latas de Spray", sub.Name)

	p, ok := s.ProductByID("montana-94-negro")
	require.True(t, ok)
	assert.Equal(t, "GRA-SPR-001", p.SKU)

	p, ok = s.ProductBySlug("montana-94-negro")
	require.True(t, ok)
	assert.Equal(t, "montana-94-negro", p.ID)
}

func TestStore_AbsenceIsNotAnError(t *testing.T) {
	s := NewStore()

	_, ok := s.CategoryByID("nope")
	assert.False(t, ok)
	_, ok = s.CategoryBySlug("nope")
	assert.False(t, ok)
	_, ok = s.Subcategory("grafiti", "nope")
	assert.False(t, ok)
	_, ok = s.Subcategory("nope", "sprays")
	assert.False(t, ok)
	_, ok = s.ProductByID("nope")
	assert.False(t, ok)
	_, ok = s.ProductBySlug("nope")
	assert.False(t, ok)
	_, ok = s.ProductWithCategory("nope")
	assert.False(t, ok)
}

func TestStore_ProductWithCategory(t *testing.T) {
	s := NewStore()

	pc, ok := s.ProductWithCategory("cheyenne-hawk-pen")
	require.True(t, ok)
	assert.Equal(t, "tattoo", pc.Category.ID)
	require.NotNil(t, pc.Subcategory)
	assert.Equal(t, "maquinas", pc.Subcategory.ID)
}

func TestStore_DerivesMissingSlugs(t *testing.T) {
	s := NewStore()

	// Seeded without a slug; derived from the name.
	p, ok := s.ProductBySlug("set-de-caps-pro-50-piezas")
	require.True(t, ok)
	assert.Equal(t, "set-caps-pro-50", p.ID)

	for _, p := range s.Products() {
		assert.NotEmpty(t, p.Slug, "product %s", p.ID)
	}
}

func TestStore_SeedIntegrity(t *testing.T) {
	s := NewStore()

	// Subcategory slugs are unique per category, and every product
	// reference resolves; newStore would panic otherwise, but pin the
	// joined view anyway.
	for _, p := range s.Products() {
		pc, ok := s.ProductWithCategory(p.ID)
		require.True(t, ok, "product %s", p.ID)
		assert.Equal(t, p.CategoryID, pc.Category.ID)
		if p.SubcategoryID != "" {
			require.NotNil(t, pc.Subcategory, "product %s", p.ID)
			assert.Equal(t, p.SubcategoryID, pc.Subcategory.ID)
		}
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.Positive(t, p.Price)
	}
}

func TestNewStore_RejectsBadSeed(t *testing.T) {
	categories := []Category{{ID: "A", Name: "A", Slug: "a"}}

	cases := []struct {
		name     string
		products []Product
	}{
		{"duplicate product id", []Product{
			{ID: "p", Name: "P", Slug: "p", CategoryID: "A"},
			{ID: "p", Name: "P2", Slug: "p2", CategoryID: "A"},
		}},
		{"duplicate product slug", []Product{
			{ID: "p1", Name: "P", Slug: "p", CategoryID: "A"},
			{ID: "p2", Name: "P2", Slug: "p", CategoryID: "A"},
		}},
		{"unknown category", []Product{
			{ID: "p", Name: "P", Slug: "p", CategoryID: "B"},
		}},
		{"unknown subcategory", []Product{
			{ID: "p", Name: "P", Slug: "p", CategoryID: "A", SubcategoryID: "missing"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { newStore(categories, tc.products) })
		})
	}
}
