package cache

// Cache tag vocabulary. Tags are the unit of invalidation: list content
// carries a collection tag, single entities carry both the collection tag
// and their own.

const (
	TagProducts   = "products"
	TagCategories = "categories"
	TagSearch     = "search"
)

func TagProduct(id string) string      { return "product-" + id }
func TagProductPrice(id string) string { return "product-price-" + id }
func TagProductStock(id string) string { return "product-stock-" + id }
func TagCategory(slug string) string   { return "category-" + slug }
