package catalog

import "time"

type Product struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	Price            int64     `json:"price"`
	CompareAtPrice   int64     `json:"compareAtPrice,omitempty"`
	Images           []string  `json:"images"`
	CategoryID       string    `json:"categoryId"`
	SubcategoryID    string    `json:"subcategoryId,omitempty"`
	Stock            int       `json:"stock"`
	SKU              string    `json:"sku"`
	Tags             []string  `json:"tags"`
	Brand            string    `json:"brand,omitempty"`
	Featured         bool      `json:"featured"`
	IsNew            bool      `json:"isNew"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// ProductWithCategory is the detail view: a product joined with its
// resolved category and, when set, subcategory.
type ProductWithCategory struct {
	Product
	Category    Category     `json:"category"`
	Subcategory *Subcategory `json:"subcategory,omitempty"`
}
