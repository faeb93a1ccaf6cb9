package catalog

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"UrbanStore/internal/cache"
	"UrbanStore/pkg/kit"
)

type Server struct {
	Store *Store
	Cache cache.Store
	Log   *zap.Logger

	RevalidateSecret string

	// CacheMW caches list responses when set; nil disables caching.
	CacheMW *cache.Middleware
	// RateLimit guards the search and revalidate routes when set.
	RateLimit func(http.Handler) http.Handler
	// LatencyEnabled injects the demo feed latency on cache misses.
	LatencyEnabled bool

	// Now is the clock for the live simulation; nil means time.Now.
	Now func() time.Time

	validate *validator.Validate
}

func (s *Server) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Server) Routes() http.Handler {
	s.validate = validator.New()
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 1*time.Second)
		defer cancel()

		if err := s.Cache.Ping(ctx); err != nil {
			if s.Log != nil {
				s.Log.Warn("readyz failed", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready")
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	listLatency := s.latency(300*time.Millisecond, 800*time.Millisecond)
	liveLatency := s.latency(800*time.Millisecond, 1500*time.Millisecond)
	searchLatency := s.latency(400*time.Millisecond, 1000*time.Millisecond)

	productsPolicy := cache.Policy{
		Fresh: 60 * time.Second, Stale: 300 * time.Second,
		Tags: func(*http.Request) []string { return []string{cache.TagProducts} },
	}
	productPolicy := cache.Policy{
		Fresh: 60 * time.Second, Stale: 300 * time.Second,
		Tags: func(r *http.Request) []string {
			return []string{cache.TagProducts, cache.TagProduct(chi.URLParam(r, "id"))}
		},
	}
	categoriesPolicy := cache.Policy{
		Fresh: 300 * time.Second, Stale: 600 * time.Second,
		Tags: func(r *http.Request) []string {
			if slug := r.URL.Query().Get("slug"); slug != "" {
				return []string{cache.TagCategories, cache.TagCategory(slug)}
			}
			return []string{cache.TagCategories}
		},
	}
	searchPolicy := cache.Policy{
		Fresh: 30 * time.Second, Stale: 60 * time.Second,
		Tags: func(*http.Request) []string { return []string{cache.TagSearch} },
	}

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/products",
			s.cached(productsPolicy, listLatency(http.HandlerFunc(s.listProducts))))
		r.Method(http.MethodGet, "/products/{id}",
			s.cached(productPolicy, listLatency(http.HandlerFunc(s.getProduct))))

		// Live feeds are never cached.
		r.Method(http.MethodGet, "/products/{id}/price", liveLatency(http.HandlerFunc(s.livePrice)))
		r.Method(http.MethodGet, "/products/{id}/stock", liveLatency(http.HandlerFunc(s.liveStock)))

		r.Method(http.MethodGet, "/categories",
			s.cached(categoriesPolicy, listLatency(http.HandlerFunc(s.listCategories))))

		r.Method(http.MethodGet, "/search",
			s.rateLimited(s.cached(searchPolicy, searchLatency(http.HandlerFunc(s.search)))))

		r.Get("/stats", s.stats)

		r.Method(http.MethodPost, "/revalidate", s.rateLimited(http.HandlerFunc(s.revalidate)))
	})

	return r
}

func (s *Server) cached(p cache.Policy, h http.Handler) http.Handler {
	if s.CacheMW == nil {
		return h
	}
	return s.CacheMW.Wrap(p, h)
}

func (s *Server) rateLimited(h http.Handler) http.Handler {
	if s.RateLimit == nil {
		return h
	}
	return s.RateLimit(h)
}

func (s *Server) latency(min, max time.Duration) func(http.Handler) http.Handler {
	if !s.LatencyEnabled {
		return func(h http.Handler) http.Handler { return h }
	}
	return kit.Latency(min, max)
}

type productListResponse struct {
	Success bool `json:"success"`
	PaginatedResult[Product]
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	filters := filtersFromQuery(r)
	sortOpts := sortFromToken(r.URL.Query().Get("sort"))
	page := paginationFromQuery(r)

	result := Query(s.Store.Products(), filters, sortOpts, &page)
	kit.WriteJSON(w, http.StatusOK, productListResponse{Success: true, PaginatedResult: result})
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Store.ProductWithCategory(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found")
		return
	}
	kit.WriteData(w, p)
}

type livePriceResponse struct {
	ProductID          string    `json:"productId"`
	Price              int64     `json:"price"`
	Variation          float64   `json:"variation"`
	CompareAtPrice     int64     `json:"compareAtPrice,omitempty"`
	Currency           string    `json:"currency"`
	HasDiscount        bool      `json:"hasDiscount"`
	DiscountPercentage int       `json:"discountPercentage"`
	Timestamp          time.Time `json:"timestamp"`
}

func (s *Server) livePrice(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Store.ProductByID(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found")
		return
	}

	now := s.now()
	live := LivePriceAt(p.ID, p.Price, now)

	resp := livePriceResponse{
		ProductID:      p.ID,
		Price:          live.Price,
		Variation:      live.Variation,
		CompareAtPrice: p.CompareAtPrice,
		Currency:       "COP",
		Timestamp:      now,
	}
	if p.CompareAtPrice > 0 {
		resp.HasDiscount = live.Price < p.CompareAtPrice
		resp.DiscountPercentage = int(float64(100)*(1-float64(live.Price)/float64(p.CompareAtPrice)) + 0.5)
	}

	w.Header().Set("Cache-Control", "no-store, must-revalidate")
	kit.WriteData(w, resp)
}

type liveStockResponse struct {
	ProductID         string      `json:"productId"`
	Stock             int         `json:"stock"`
	Status            StockStatus `json:"status"`
	IsAvailable       bool        `json:"isAvailable"`
	LowStockThreshold int         `json:"lowStockThreshold"`
	Timestamp         time.Time   `json:"timestamp"`
}

func (s *Server) liveStock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok := s.Store.ProductByID(id)
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "product not found")
		return
	}

	now := s.now()
	live := LiveStockAt(p.ID, p.Stock, now)

	w.Header().Set("Cache-Control", "no-store, must-revalidate")
	kit.WriteData(w, liveStockResponse{
		ProductID:         p.ID,
		Stock:             live.Stock,
		Status:            live.Status,
		IsAvailable:       live.Stock > 0,
		LowStockThreshold: lowStockThreshold,
		Timestamp:         now,
	})
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	if slug := r.URL.Query().Get("slug"); slug != "" {
		c, ok := s.Store.CategoryBySlug(slug)
		if !ok {
			kit.WriteError(w, r, http.StatusNotFound, "category not found")
			return
		}
		kit.WriteData(w, c)
		return
	}

	categories := s.Store.CategoriesWithProductCount()
	kit.WriteDataTotal(w, categories, len(categories))
}

type searchFacets struct {
	Categories  []CategoryWithProductCount `json:"categories"`
	Brands      []string                   `json:"brands"`
	PopularTags []TagCount                 `json:"popularTags"`
}

type searchResponse struct {
	Success bool   `json:"success"`
	Query   string `json:"query"`
	PaginatedResult[Product]
	Facets searchFacets `json:"facets"`
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	query := strings.TrimSpace(q.Get("q"))
	if query == "" {
		query = strings.TrimSpace(q.Get("query"))
	}
	if query == "" {
		kit.WriteError(w, r, http.StatusBadRequest, `search term required (parameter "q")`)
		return
	}

	filters := filtersFromQuery(r)
	filters.Search = query

	// Unknown or missing sort falls back to name ascending, the closest
	// thing to relevance this catalog has.
	sortOpts := sortFromSearchToken(q.Get("sort"))
	page := paginationFromQuery(r)

	result := Query(s.Store.Products(), filters, sortOpts, &page)

	kit.WriteJSON(w, http.StatusOK, searchResponse{
		Success:         true,
		Query:           query,
		PaginatedResult: result,
		Facets: searchFacets{
			Categories:  s.Store.CategoriesWithProductCount(),
			Brands:      s.Store.Brands(),
			PopularTags: s.Store.PopularTags(15),
		},
	})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	kit.WriteData(w, s.Store.Stats())
}

type revalidateRequest struct {
	Secret string `json:"secret" validate:"required"`
	Tag    string `json:"tag"`
	Type   string `json:"type"`
	ID     string `json:"id"`
}

type revalidateResponse struct {
	Success     bool      `json:"success"`
	Revalidated []string  `json:"revalidated"`
	Dropped     int       `json:"dropped"`
	EventID     string    `json:"eventId"`
	Timestamp   time.Time `json:"timestamp"`
}

func (s *Server) revalidate(w http.ResponseWriter, r *http.Request) {
	var req revalidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "secret is required")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Secret), []byte(s.RevalidateSecret)) != 1 {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid revalidation secret")
		return
	}

	tags := make([]string, 0, 3)
	if req.Tag != "" {
		tags = append(tags, req.Tag)
	}

	typeTags, err := tagsForType(req.Type, req.ID)
	if err != "" {
		kit.WriteError(w, r, http.StatusBadRequest, err)
		return
	}
	tags = append(tags, typeTags...)

	if len(tags) == 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "nothing to revalidate: provide tag or type")
		return
	}

	dropped, cerr := s.Cache.Invalidate(r.Context(), tags...)
	if cerr != nil {
		if s.Log != nil {
			s.Log.Error("revalidation failed", zap.Strings("tags", tags), zap.Error(cerr))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "revalidation failed")
		return
	}

	resp := revalidateResponse{
		Success:     true,
		Revalidated: tags,
		Dropped:     dropped,
		EventID:     uuid.NewString(),
		Timestamp:   time.Now(),
	}
	if s.Log != nil {
		s.Log.Info("cache revalidated",
			zap.Strings("tags", tags),
			zap.Int("dropped", dropped),
			zap.String("event_id", resp.EventID),
		)
	}
	kit.WriteJSON(w, http.StatusOK, resp)
}

// tagsForType maps a content-type keyword to cache tags. The second
// return is a bad-request message, empty on success.
func tagsForType(typ, id string) ([]string, string) {
	switch typ {
	case "":
		return nil, ""
	case "products":
		return []string{cache.TagProducts}, ""
	case "product":
		if id == "" {
			return nil, `"id" is required to revalidate a single product`
		}
		return []string{cache.TagProduct(id)}, ""
	case "product-price":
		if id == "" {
			return nil, `"id" is required to revalidate a product price`
		}
		return []string{cache.TagProductPrice(id)}, ""
	case "product-stock":
		if id == "" {
			return nil, `"id" is required to revalidate a product stock`
		}
		return []string{cache.TagProductStock(id)}, ""
	case "categories":
		return []string{cache.TagCategories}, ""
	case "category":
		if id == "" {
			return nil, `"id" (slug) is required to revalidate a category`
		}
		return []string{cache.TagCategory(id)}, ""
	case "search":
		return []string{cache.TagSearch}, ""
	case "all":
		return []string{cache.TagProducts, cache.TagCategories, cache.TagSearch}, ""
	default:
		return nil, "unknown revalidation type " + strconv.Quote(typ)
	}
}

func filtersFromQuery(r *http.Request) *Filters {
	q := r.URL.Query()
	f := &Filters{}

	f.CategoryID = q.Get("category")
	f.SubcategoryID = q.Get("subcategory")

	if q.Get("featured") == "true" {
		t := true
		f.Featured = &t
	}
	if q.Get("new") == "true" {
		t := true
		f.IsNew = &t
	}
	if v := q.Get("minPrice"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MinPrice = &n
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			f.MaxPrice = &n
		}
	}
	f.Search = q.Get("search")
	if v := q.Get("tags"); v != "" {
		for _, t := range strings.Split(v, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}
	f.Brand = q.Get("brand")
	f.InStock = q.Get("inStock") == "true"

	return f
}

// sortFromToken maps a list sort token; unknown tokens mean catalog order.
func sortFromToken(token string) *SortOptions {
	switch token {
	case "price-asc":
		return &SortOptions{Field: SortByPrice, Order: SortAsc}
	case "price-desc":
		return &SortOptions{Field: SortByPrice, Order: SortDesc}
	case "name-asc":
		return &SortOptions{Field: SortByName, Order: SortAsc}
	case "name-desc":
		return &SortOptions{Field: SortByName, Order: SortDesc}
	case "newest":
		return &SortOptions{Field: SortByCreatedAt, Order: SortDesc}
	case "stock":
		return &SortOptions{Field: SortByStock, Order: SortDesc}
	default:
		return nil
	}
}

func sortFromSearchToken(token string) *SortOptions {
	switch token {
	case "price-asc":
		return &SortOptions{Field: SortByPrice, Order: SortAsc}
	case "price-desc":
		return &SortOptions{Field: SortByPrice, Order: SortDesc}
	case "newest":
		return &SortOptions{Field: SortByCreatedAt, Order: SortDesc}
	default:
		return &SortOptions{Field: SortByName, Order: SortAsc}
	}
}

func paginationFromQuery(r *http.Request) Pagination {
	q := r.URL.Query()

	page := DefaultPage
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 1 {
		page = n
	}

	limit := DefaultLimit
	if n, err := strconv.Atoi(q.Get("limit")); err == nil {
		switch {
		case n < 1:
			limit = 1
		case n > MaxLimit:
			limit = MaxLimit
		default:
			limit = n
		}
	}

	return Pagination{Page: page, Limit: limit}
}
