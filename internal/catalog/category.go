package catalog

type Subcategory struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Icon          string        `json:"icon,omitempty"`
	Subcategories []Subcategory `json:"subcategories"`
}

type CategoryWithProductCount struct {
	Category
	ProductCount int `json:"productCount"`
}
