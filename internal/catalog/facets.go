package catalog

import (
	"sort"
	"strings"
)

func (s *Store) CategoriesWithProductCount() []CategoryWithProductCount {
	out := make([]CategoryWithProductCount, 0, len(s.categories))
	for _, c := range s.categories {
		count := 0
		for _, p := range s.products {
			if p.CategoryID == c.ID {
				count++
			}
		}
		out = append(out, CategoryWithProductCount{Category: c, ProductCount: count})
	}
	return out
}

// Brands returns the distinct defined brands, sorted ascending.
func (s *Store) Brands() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range s.products {
		if p.Brand != "" && !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	sort.Strings(out)
	return out
}

func (s *Store) AllTags() []string {
	seen := make(map[string]bool)
	out := make([]string, 0)
	for _, p := range s.products {
		for _, t := range p.Tags {
			if !seen[t] {
				seen[t] = true
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// PopularTags counts every tag across the catalog and returns the top
// `limit` by count. Equal counts keep first-seen order.
func (s *Store) PopularTags(limit int) []TagCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, p := range s.products {
		for _, t := range p.Tags {
			if counts[t] == 0 {
				order = append(order, t)
			}
			counts[t]++
		}
	}

	out := make([]TagCount, 0, len(order))
	for _, t := range order {
		out = append(out, TagCount{Tag: t, Count: counts[t]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func (s *Store) FeaturedProducts(limit int) []Product {
	out := make([]Product, 0, limit)
	for _, p := range s.products {
		if p.Featured {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (s *Store) NewProducts(limit int) []Product {
	out := make([]Product, 0, limit)
	for _, p := range s.products {
		if p.IsNew {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// RelatedProducts returns up to `limit` products sharing the category of
// the given product, excluding the product itself, in catalog order.
func (s *Store) RelatedProducts(productID string, limit int) []Product {
	product, ok := s.ProductByID(productID)
	if !ok {
		return []Product{}
	}

	out := make([]Product, 0, limit)
	for _, p := range s.products {
		if p.ID == productID || p.CategoryID != product.CategoryID {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// ProductsByCategory returns the category's products in catalog order,
// all of them when limit is <= 0.
func (s *Store) ProductsByCategory(categoryID string, limit int) []Product {
	out := make([]Product, 0)
	for _, p := range s.products {
		if p.CategoryID != categoryID {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

// SearchProducts is the broad search used by the search views: it matches
// name, short description, tags and brand, case-insensitively.
func (s *Store) SearchProducts(query string, limit int) []Product {
	q := strings.ToLower(query)
	out := make([]Product, 0)
	for _, p := range s.products {
		if !matchesBroadSearch(p, q) {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}

func matchesBroadSearch(p Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.ShortDescription), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return p.Brand != "" && strings.Contains(strings.ToLower(p.Brand), q)
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
	Avg int64 `json:"avg"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

type Stats struct {
	TotalProducts int             `json:"totalProducts"`
	TotalStock    int             `json:"totalStock"`
	OutOfStock    int             `json:"outOfStock"`
	LowStock      int             `json:"lowStock"`
	FeaturedCount int             `json:"featuredCount"`
	NewCount      int             `json:"newCount"`
	PriceRange    PriceRange      `json:"priceRange"`
	ByCategory    []CategoryCount `json:"byCategory"`
}

func (s *Store) Stats() Stats {
	st := Stats{TotalProducts: len(s.products)}

	var priceSum int64
	for i, p := range s.products {
		st.TotalStock += p.Stock
		if p.Stock == 0 {
			st.OutOfStock++
		} else if p.Stock <= lowStockThreshold {
			st.LowStock++
		}
		if p.Featured {
			st.FeaturedCount++
		}
		if p.IsNew {
			st.NewCount++
		}

		priceSum += p.Price
		if i == 0 || p.Price < st.PriceRange.Min {
			st.PriceRange.Min = p.Price
		}
		if p.Price > st.PriceRange.Max {
			st.PriceRange.Max = p.Price
		}
	}
	if len(s.products) > 0 {
		st.PriceRange.Avg = int64(float64(priceSum)/float64(len(s.products)) + 0.5)
	}

	for _, c := range s.CategoriesWithProductCount() {
		st.ByCategory = append(st.ByCategory, CategoryCount{Category: c.Name, Count: c.ProductCount})
	}
	return st
}
