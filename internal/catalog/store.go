package catalog

import (
	"fmt"

	gslug "github.com/gosimple/slug"
)

// Store holds the catalog. It is built once at startup and never written
// afterwards, so lookups need no locking. Slices keep declaration order,
// which is the order the query engine falls back to when no sort is given.
type Store struct {
	categories []Category
	products   []Product

	categoryByID   map[string]int
	categoryBySlug map[string]int
	productByID    map[string]int
	productBySlug  map[string]int
}

func NewStore() *Store {
	return newStore(seedCategories(), seedProducts())
}

func newStore(categories []Category, products []Product) *Store {
	s := &Store{
		categories:     categories,
		products:       products,
		categoryByID:   make(map[string]int, len(categories)),
		categoryBySlug: make(map[string]int, len(categories)),
		productByID:    make(map[string]int, len(products)),
		productBySlug:  make(map[string]int, len(products)),
	}

	for i, c := range categories {
		if _, dup := s.categoryByID[c.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate category id %q", c.ID))
		}
		if _, dup := s.categoryBySlug[c.Slug]; dup {
			panic(fmt.Sprintf("catalog: duplicate category slug %q", c.Slug))
		}
		s.categoryByID[c.ID] = i
		s.categoryBySlug[c.Slug] = i

		subSlugs := make(map[string]bool, len(c.Subcategories))
		for _, sub := range c.Subcategories {
			if subSlugs[sub.Slug] {
				panic(fmt.Sprintf("catalog: duplicate subcategory slug %q in category %q", sub.Slug, c.ID))
			}
			subSlugs[sub.Slug] = true
		}
	}

	for i := range s.products {
		p := &s.products[i]
		if p.Slug == "" {
			p.Slug = gslug.Make(p.Name)
		}

		if _, dup := s.productByID[p.ID]; dup {
			panic(fmt.Sprintf("catalog: duplicate product id %q", p.ID))
		}
		if _, dup := s.productBySlug[p.Slug]; dup {
			panic(fmt.Sprintf("catalog: duplicate product slug %q", p.Slug))
		}
		s.productByID[p.ID] = i
		s.productBySlug[p.Slug] = i

		c, ok := s.CategoryByID(p.CategoryID)
		if !ok {
			panic(fmt.Sprintf("catalog: product %q references unknown category %q", p.ID, p.CategoryID))
		}
		if p.SubcategoryID != "" && !hasSubcategoryID(c, p.SubcategoryID) {
			panic(fmt.Sprintf("catalog: product %q references unknown subcategory %q", p.ID, p.SubcategoryID))
		}
	}

	return s
}

func hasSubcategoryID(c Category, id string) bool {
	for _, sub := range c.Subcategories {
		if sub.ID == id {
			return true
		}
	}
	return false
}

func (s *Store) Categories() []Category { return s.categories }

func (s *Store) Products() []Product { return s.products }

func (s *Store) CategoryByID(id string) (Category, bool) {
	i, ok := s.categoryByID[id]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

func (s *Store) CategoryBySlug(slug string) (Category, bool) {
	i, ok := s.categoryBySlug[slug]
	if !ok {
		return Category{}, false
	}
	return s.categories[i], true
}

// Subcategory looks a subcategory up by slug inside one category.
// Subcategory slugs are unique per category, not globally.
func (s *Store) Subcategory(categoryID, slug string) (Subcategory, bool) {
	c, ok := s.CategoryByID(categoryID)
	if !ok {
		return Subcategory{}, false
	}
	for _, sub := range c.Subcategories {
		if sub.Slug == slug {
			return sub, true
		}
	}
	return Subcategory{}, false
}

func (s *Store) ProductByID(id string) (Product, bool) {
	i, ok := s.productByID[id]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

func (s *Store) ProductBySlug(slug string) (Product, bool) {
	i, ok := s.productBySlug[slug]
	if !ok {
		return Product{}, false
	}
	return s.products[i], true
}

func (s *Store) ProductWithCategory(id string) (ProductWithCategory, bool) {
	p, ok := s.ProductByID(id)
	if !ok {
		return ProductWithCategory{}, false
	}
	c, ok := s.CategoryByID(p.CategoryID)
	if !ok {
		return ProductWithCategory{}, false
	}

	out := ProductWithCategory{Product: p, Category: c}
	if p.SubcategoryID != "" {
		for i := range c.Subcategories {
			if c.Subcategories[i].ID == p.SubcategoryID {
				out.Subcategory = &c.Subcategories[i]
				break
			}
		}
	}
	return out, true
}
