package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Filters struct {
	CategoryID    string
	SubcategoryID string
	Featured      *bool
	IsNew         *bool
	MinPrice      *int64
	MaxPrice      *int64
	Search        string
	Tags          []string
	Brand         string
	InStock       bool
}

type SortField string

const (
	SortByPrice     SortField = "price"
	SortByName      SortField = "name"
	SortByCreatedAt SortField = "createdAt"
	SortByStock     SortField = "stock"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type SortOptions struct {
	Field SortField
	Order SortOrder
}

type Pagination struct {
	Page  int
	Limit int
}

const (
	DefaultPage  = 1
	DefaultLimit = 12
	MaxLimit     = 50
)

type PaginatedResult[T any] struct {
	Data        []T  `json:"data"`
	Total       int  `json:"total"`
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

// Query filters, sorts and paginates in that fixed order. It is a pure
// function: the input slice is never mutated and identical inputs give
// identical results. Empty results and out-of-range pages are normal
// outcomes, not errors. Limit clamping is the caller's job.
func Query(products []Product, filters *Filters, sortOpts *SortOptions, page *Pagination) PaginatedResult[Product] {
	filtered := applyFilters(products, filters)

	if sortOpts != nil {
		applySort(filtered, *sortOpts)
	}

	p, limit := DefaultPage, DefaultLimit
	if page != nil {
		p, limit = page.Page, page.Limit
	}
	return Paginate(filtered, p, limit)
}

func applyFilters(products []Product, f *Filters) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f == nil || f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func (f *Filters) matches(p Product) bool {
	if f.CategoryID != "" && p.CategoryID != f.CategoryID {
		return false
	}
	if f.SubcategoryID != "" && p.SubcategoryID != f.SubcategoryID {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	if f.IsNew != nil && p.IsNew != *f.IsNew {
		return false
	}
	if f.MinPrice != nil && p.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	if f.Search != "" && !matchesSearch(p, f.Search) {
		return false
	}
	if len(f.Tags) > 0 && !hasAnyTag(p, f.Tags) {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

// matchesSearch is the narrow search used by list filtering: name,
// description and tags. The broad variant (SearchProducts) also looks at
// the short description and brand.
func matchesSearch(p Product, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), q) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func hasAnyTag(p Product, tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

func applySort(products []Product, opts SortOptions) {
	var less func(a, b Product) int

	switch opts.Field {
	case SortByPrice:
		less = func(a, b Product) int { return compareInt64(a.Price, b.Price) }
	case SortByName:
		// Catalog copy is Spanish, so collate accordingly. A collator is
		// not safe for concurrent use; build one per sort.
		coll := collate.New(language.Spanish)
		less = func(a, b Product) int { return coll.CompareString(a.Name, b.Name) }
	case SortByCreatedAt:
		less = func(a, b Product) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case SortByStock:
		less = func(a, b Product) int { return compareInt64(int64(a.Stock), int64(b.Stock)) }
	default:
		return
	}

	sort.SliceStable(products, func(i, j int) bool {
		c := less(products[i], products[j])
		if opts.Order == SortDesc {
			return c > 0
		}
		return c < 0
	})
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Paginate slices items into one page. totalPages is 0 for an empty set,
// and a page past the end yields empty data rather than an error.
func Paginate[T any](items []T, page, limit int) PaginatedResult[T] {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])

	return PaginatedResult[T]{
		Data:        data,
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
