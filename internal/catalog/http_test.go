package catalog_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"UrbanStore/internal/cache"
	"UrbanStore/internal/catalog"
)

const testSecret = "test-secret-0123456789"

func newStorefrontTS(t *testing.T) *httptest.Server {
	t.Helper()

	s := &catalog.Server{
		Store:            catalog.NewStore(),
		Cache:            cache.NewMemStore(),
		Log:              zap.NewNop(),
		RevalidateSecret: testSecret,
		Now:              func() time.Time { return time.UnixMilli(1_700_000_000_000) },
	}

	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:     zap.NewNop(),
		Service: "storefront",
	})

	return httptest.NewServer(h)
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s: %v", url, err)
		}
	}
	return resp
}

type listBody struct {
	Success     bool              `json:"success"`
	Data        []catalog.Product `json:"data"`
	Total       int               `json:"total"`
	Page        int               `json:"page"`
	Limit       int               `json:"limit"`
	TotalPages  int               `json:"totalPages"`
	HasNextPage bool              `json:"hasNextPage"`
	HasPrevPage bool              `json:"hasPrevPage"`
}

func TestProductsEndpoint_Defaults(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var body listBody
	resp := getJSON(t, ts.URL+"/api/products", &body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !body.Success {
		t.Fatal("success = false")
	}
	if body.Page != 1 || body.Limit != 12 {
		t.Fatalf("page/limit = %d/%d, want 1/12", body.Page, body.Limit)
	}
	if len(body.Data) != 12 {
		t.Fatalf("len(data) = %d, want 12", len(body.Data))
	}
	if body.Total <= 12 || !body.HasNextPage || body.HasPrevPage {
		t.Fatalf("unexpected pagination: total=%d next=%v prev=%v",
			body.Total, body.HasNextPage, body.HasPrevPage)
	}
}

func TestProductsEndpoint_FiltersAndSort(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var body listBody
	getJSON(t, ts.URL+"/api/products?category=grafiti&inStock=true&sort=price-asc&limit=50", &body)

	if len(body.Data) == 0 {
		t.Fatal("expected grafiti products")
	}
	for i, p := range body.Data {
		if p.CategoryID != "grafiti" {
			t.Errorf("data[%d].categoryId = %s", i, p.CategoryID)
		}
		if p.Stock <= 0 {
			t.Errorf("data[%d].stock = %d", i, p.Stock)
		}
		if i > 0 && body.Data[i-1].Price > p.Price {
			t.Errorf("data[%d] price out of order", i)
		}
	}
}

func TestProductsEndpoint_LimitClamped(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var body listBody
	getJSON(t, ts.URL+"/api/products?limit=500", &body)
	if body.Limit != 50 {
		t.Fatalf("limit = %d, want 50", body.Limit)
	}

	getJSON(t, ts.URL+"/api/products?limit=0&page=-3", &body)
	if body.Limit != 1 || body.Page != 1 {
		t.Fatalf("limit/page = %d/%d, want 1/1", body.Limit, body.Page)
	}
}

func TestProductEndpoint_DetailAndNotFound(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var body struct {
		Success bool                        `json:"success"`
		Data    catalog.ProductWithCategory `json:"data"`
	}
	resp := getJSON(t, ts.URL+"/api/products/cheyenne-hawk-pen", &body)
	if resp.StatusCode != http.StatusOK || !body.Success {
		t.Fatalf("status = %d success = %v", resp.StatusCode, body.Success)
	}
	if body.Data.Category.ID != "tattoo" {
		t.Fatalf("category = %s, want tattoo", body.Data.Category.ID)
	}
	if body.Data.Subcategory == nil || body.Data.Subcategory.ID != "maquinas" {
		t.Fatal("subcategory not resolved")
	}

	var errBody struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	resp = getJSON(t, ts.URL+"/api/products/no-such-product", &errBody)
	if resp.StatusCode != http.StatusNotFound || errBody.Success {
		t.Fatalf("status = %d success = %v", resp.StatusCode, errBody.Success)
	}
}

func TestCategoriesEndpoint(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var body struct {
		Success bool                                `json:"success"`
		Data    []catalog.CategoryWithProductCount `json:"data"`
		Total   int                                 `json:"total"`
	}
	getJSON(t, ts.URL+"/api/categories", &body)
	if body.Total != 8 || len(body.Data) != 8 {
		t.Fatalf("total = %d len = %d, want 8", body.Total, len(body.Data))
	}
	if body.Data[0].ProductCount == 0 {
		t.Fatal("grafiti has no counted products")
	}

	var one struct {
		Success bool             `json:"success"`
		Data    catalog.Category `json:"data"`
	}
	getJSON(t, ts.URL+"/api/categories?slug=musica", &one)
	if one.Data.ID != "musica" {
		t.Fatalf("id = %s, want musica", one.Data.ID)
	}

	resp := getJSON(t, ts.URL+"/api/categories?slug=nope", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSearchEndpoint(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	resp := getJSON(t, ts.URL+"/api/search", nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status without q = %d, want 400", resp.StatusCode)
	}

	var body struct {
		Success bool              `json:"success"`
		Query   string            `json:"query"`
		Data    []catalog.Product `json:"data"`
		Facets  struct {
			Categories  []catalog.CategoryWithProductCount `json:"categories"`
			Brands      []string                           `json:"brands"`
			PopularTags []catalog.TagCount                 `json:"popularTags"`
		} `json:"facets"`
	}
	getJSON(t, ts.URL+"/api/search?q=montana", &body)

	if body.Query != "montana" {
		t.Fatalf("query = %q", body.Query)
	}
	if len(body.Data) == 0 {
		t.Fatal("expected results for montana")
	}
	if len(body.Facets.Categories) != 8 || len(body.Facets.Brands) == 0 || len(body.Facets.PopularTags) == 0 {
		t.Fatal("facets missing")
	}
	// Default sort is name ascending.
	for i := 1; i < len(body.Data); i++ {
		if strings.ToLower(body.Data[i-1].Name) > strings.ToLower(body.Data[i].Name) {
			t.Errorf("data[%d] name out of order", i)
		}
	}
}

func TestLiveEndpoints_DeterministicWithinBucket(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var price1, price2 struct {
		Success bool `json:"success"`
		Data    struct {
			ProductID string  `json:"productId"`
			Price     int64   `json:"price"`
			Variation float64 `json:"variation"`
			Currency  string  `json:"currency"`
		} `json:"data"`
	}
	resp := getJSON(t, ts.URL+"/api/products/montana-94-negro/price", &price1)
	if cc := resp.Header.Get("Cache-Control"); cc != "no-store, must-revalidate" {
		t.Fatalf("Cache-Control = %q", cc)
	}
	getJSON(t, ts.URL+"/api/products/montana-94-negro/price", &price2)

	if price1.Data != price2.Data {
		t.Fatalf("price not deterministic: %+v vs %+v", price1.Data, price2.Data)
	}
	if price1.Data.Currency != "COP" || price1.Data.ProductID != "montana-94-negro" {
		t.Fatalf("unexpected payload: %+v", price1.Data)
	}
	if v := price1.Data.Variation; v < -0.05 || v >= 0.05 {
		t.Fatalf("variation %v out of range", v)
	}

	var stock struct {
		Success bool `json:"success"`
		Data    struct {
			Stock             int    `json:"stock"`
			Status            string `json:"status"`
			IsAvailable       bool   `json:"isAvailable"`
			LowStockThreshold int    `json:"lowStockThreshold"`
		} `json:"data"`
	}
	getJSON(t, ts.URL+"/api/products/montana-94-negro/stock", &stock)
	if stock.Data.LowStockThreshold != 5 {
		t.Fatalf("lowStockThreshold = %d", stock.Data.LowStockThreshold)
	}
	switch stock.Data.Status {
	case "in_stock", "low_stock", "out_of_stock":
	default:
		t.Fatalf("status = %q", stock.Data.Status)
	}
	if stock.Data.IsAvailable != (stock.Data.Stock > 0) {
		t.Fatalf("isAvailable inconsistent: %+v", stock.Data)
	}

	resp = getJSON(t, ts.URL+"/api/products/nope/price", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func postRevalidate(t *testing.T, ts *httptest.Server, body map[string]any) *http.Response {
	t.Helper()

	raw, _ := json.Marshal(body)
	resp, err := http.Post(ts.URL+"/api/revalidate", "application/json", bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("POST /api/revalidate: %v", err)
	}
	return resp
}

func TestRevalidateEndpoint(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	cases := []struct {
		name   string
		body   map[string]any
		status int
	}{
		{"wrong secret", map[string]any{"secret": "nope", "type": "products"}, http.StatusUnauthorized},
		{"missing secret", map[string]any{"type": "products"}, http.StatusBadRequest},
		{"missing id", map[string]any{"secret": testSecret, "type": "product"}, http.StatusBadRequest},
		{"unknown type", map[string]any{"secret": testSecret, "type": "orders"}, http.StatusBadRequest},
		{"nothing to do", map[string]any{"secret": testSecret}, http.StatusBadRequest},
		{"products", map[string]any{"secret": testSecret, "type": "products"}, http.StatusOK},
		{"custom tag", map[string]any{"secret": testSecret, "tag": "my-tag"}, http.StatusOK},
		{"all", map[string]any{"secret": testSecret, "type": "all"}, http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := postRevalidate(t, ts, tc.body)
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.status)
			}
		})
	}

	resp := postRevalidate(t, ts, map[string]any{"secret": testSecret, "type": "product", "id": "montana-94-negro"})
	defer resp.Body.Close()
	var body struct {
		Success     bool     `json:"success"`
		Revalidated []string `json:"revalidated"`
		EventID     string   `json:"eventId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !body.Success || body.EventID == "" {
		t.Fatalf("body = %+v", body)
	}
	if len(body.Revalidated) != 1 || body.Revalidated[0] != "product-montana-94-negro" {
		t.Fatalf("revalidated = %v", body.Revalidated)
	}
}

func TestProductsEndpoint_CachedAndRevalidated(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	resp := getJSON(t, ts.URL+"/api/products", nil)
	if xc := resp.Header.Get("X-Cache"); xc != "MISS" {
		t.Fatalf("first X-Cache = %q, want MISS", xc)
	}
	if cc := resp.Header.Get("Cache-Control"); cc != "public, s-maxage=60, stale-while-revalidate=300" {
		t.Fatalf("Cache-Control = %q", cc)
	}

	resp = getJSON(t, ts.URL+"/api/products", nil)
	if xc := resp.Header.Get("X-Cache"); xc != "HIT" {
		t.Fatalf("second X-Cache = %q, want HIT", xc)
	}

	// A different query string is a different cache entry.
	resp = getJSON(t, ts.URL+"/api/products?page=2", nil)
	if xc := resp.Header.Get("X-Cache"); xc != "MISS" {
		t.Fatalf("page 2 X-Cache = %q, want MISS", xc)
	}

	rv := postRevalidate(t, ts, map[string]any{"secret": testSecret, "type": "products"})
	rv.Body.Close()
	if rv.StatusCode != http.StatusOK {
		t.Fatalf("revalidate status = %d", rv.StatusCode)
	}

	resp = getJSON(t, ts.URL+"/api/products", nil)
	if xc := resp.Header.Get("X-Cache"); xc != "MISS" {
		t.Fatalf("post-revalidation X-Cache = %q, want MISS", xc)
	}
}

func TestHealthEndpoints(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	for _, path := range []string{"/healthz", "/readyz"} {
		resp := getJSON(t, ts.URL+path, nil)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s status = %d", path, resp.StatusCode)
		}
	}
}

func TestStatsEndpoint(t *testing.T) {
	ts := newStorefrontTS(t)
	defer ts.Close()

	var body struct {
		Success bool          `json:"success"`
		Data    catalog.Stats `json:"data"`
	}
	getJSON(t, ts.URL+"/api/stats", &body)

	if body.Data.TotalProducts == 0 || len(body.Data.ByCategory) != 8 {
		t.Fatalf("stats = %+v", body.Data)
	}
	if body.Data.OutOfStock == 0 {
		t.Fatal("seed should contain an out-of-stock product")
	}
}
