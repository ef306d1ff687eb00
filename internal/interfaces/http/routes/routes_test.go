package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/infrastructure/session"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// client drives the API as one browser session, carrying the session cookie
// across requests.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newClient(t *testing.T) *client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Session: config.SessionConfig{
			CookieName:    "session_id",
			TTL:           time.Hour,
			SweepInterval: time.Minute,
		},
		Upload: config.UploadConfig{
			MaxSize:           1024,
			AllowedExtensions: []string{"jpg", "png"},
		},
	}
	registry := session.NewRegistry(cfg)

	router := gin.New()
	api := router.Group("/api/v1")
	api.Use(middleware.Session(registry, cfg))
	SetupRoutes(api, cfg)

	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body any) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			c.t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session_id" {
			c.cookie = cookie
		}
	}
	return w
}

func (c *client) decode(w *httptest.ResponseRecorder) map[string]any {
	c.t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		c.t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestShopperCartFlow(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/cart/items", gin.H{"product_id": 1, "quantity": 2})
	if w.Code != http.StatusOK {
		t.Fatalf("add to cart status = %d, body %s", w.Code, w.Body.String())
	}

	// Re-adding the same product merges into the existing line.
	c.do(http.MethodPost, "/cart/items", gin.H{"product_id": 1, "quantity": 3})

	w = c.do(http.MethodGet, "/cart", nil)
	data := c.decode(w)["data"].(map[string]any)
	items := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("got %d cart lines, want 1", len(items))
	}
	if qty := items[0].(map[string]any)["quantity"].(float64); qty != 5 {
		t.Errorf("quantity = %v, want 5", qty)
	}

	w = c.do(http.MethodGet, "/cart/count", nil)
	if count := c.decode(w)["data"].(map[string]any)["count"].(float64); count != 5 {
		t.Errorf("badge count = %v, want 5", count)
	}

	// Setting quantity to zero removes the line.
	w = c.do(http.MethodPut, "/cart/items/1", gin.H{"quantity": 0})
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d", w.Code)
	}
	w = c.do(http.MethodGet, "/cart/count", nil)
	if count := c.decode(w)["data"].(map[string]any)["count"].(float64); count != 0 {
		t.Errorf("badge count after removal = %v, want 0", count)
	}
}

func TestAddUnknownProductToCart(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodPost, "/cart/items", gin.H{"product_id": 999, "quantity": 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestAdminGateAndProductManagement(t *testing.T) {
	c := newClient(t)

	w := c.do(http.MethodGet, "/admin/products", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated admin status = %d, want 401", w.Code)
	}

	w = c.do(http.MethodPost, "/admin/login", gin.H{"username": "yasirperfume", "password": "wrong"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad credentials status = %d, want 401", w.Code)
	}

	w = c.do(http.MethodPost, "/admin/login", gin.H{"username": "yasirperfume", "password": "yasir@313"})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	w = c.do(http.MethodPost, "/admin/products", gin.H{
		"name":        "Midnight Oud",
		"description": "Smoky oud over vanilla",
		"price":       12000,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	created := c.decode(w)["data"].(map[string]any)
	if id := created["id"].(float64); id != 7 {
		t.Errorf("created id = %v, want 7 after the six seeded products", id)
	}

	// The new product is visible on the storefront of the same session.
	w = c.do(http.MethodGet, "/products/7", nil)
	if w.Code != http.StatusOK {
		t.Errorf("storefront lookup status = %d, want 200", w.Code)
	}

	w = c.do(http.MethodPut, "/admin/products/999", gin.H{
		"name":        "Ghost",
		"description": "Missing",
		"price":       100,
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("update absent status = %d, want 404", w.Code)
	}

	// Logout closes the gate again.
	c.do(http.MethodPost, "/admin/logout", nil)
	w = c.do(http.MethodGet, "/admin/products", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("post-logout status = %d, want 401", w.Code)
	}
}

func TestDraftPublishFlow(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodPost, "/admin/login", gin.H{"username": "yasirperfume", "password": "yasir@313"})

	w := c.do(http.MethodGet, "/admin/settings/draft", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("draft status = %d", w.Code)
	}
	draft := c.decode(w)["data"].(map[string]any)
	draft["hero_title"] = "Autumn Collection"

	w = c.do(http.MethodPut, "/admin/settings/draft", draft)
	if w.Code != http.StatusOK {
		t.Fatalf("replace draft status = %d, body %s", w.Code, w.Body.String())
	}

	// Shoppers still see the committed title.
	w = c.do(http.MethodGet, "/settings", nil)
	committed := c.decode(w)["data"].(map[string]any)
	if committed["hero_title"] == "Autumn Collection" {
		t.Fatal("draft edit visible on the storefront before publish")
	}

	w = c.do(http.MethodPost, "/admin/settings/publish", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("publish status = %d, body %s", w.Code, w.Body.String())
	}

	w = c.do(http.MethodGet, "/settings", nil)
	committed = c.decode(w)["data"].(map[string]any)
	if committed["hero_title"] != "Autumn Collection" {
		t.Error("published title not visible on the storefront")
	}
}

func TestPublishRejectsInvalidDraft(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodPost, "/admin/login", gin.H{"username": "yasirperfume", "password": "yasir@313"})

	w := c.do(http.MethodGet, "/admin/settings/draft", nil)
	draft := c.decode(w)["data"].(map[string]any)
	before := draft["container_width"]
	draft["container_width"] = "max-w-9xl"

	c.do(http.MethodPut, "/admin/settings/draft", draft)
	w = c.do(http.MethodPost, "/admin/settings/publish", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("publish status = %d, want 400", w.Code)
	}

	// Committed settings survive the failed publish.
	w = c.do(http.MethodGet, "/settings", nil)
	committed := c.decode(w)["data"].(map[string]any)
	if committed["container_width"] != before {
		t.Error("committed container width changed after a rejected publish")
	}
}

func TestBannerDraftEndpoints(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodPost, "/admin/login", gin.H{"username": "yasirperfume", "password": "yasir@313"})

	w := c.do(http.MethodPost, "/admin/settings/draft/banners", gin.H{
		"title":     "Eid Sale",
		"image_url": "https://example.com/eid.jpg",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add banner status = %d, body %s", w.Code, w.Body.String())
	}
	banner := c.decode(w)["data"].(map[string]any)
	if enabled := banner["enabled"].(bool); !enabled {
		t.Error("new banner not enabled")
	}

	id := int64(banner["id"].(float64))
	path := "/admin/settings/draft/banners/" + strconv.FormatInt(id, 10)

	w = c.do(http.MethodPost, path+"/toggle", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle status = %d", w.Code)
	}
	toggled := c.decode(w)["data"].(map[string]any)
	if toggled["enabled"].(bool) {
		t.Error("banner still enabled after toggle")
	}

	w = c.do(http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	// Idempotent delete.
	w = c.do(http.MethodDelete, path, nil)
	if w.Code != http.StatusOK {
		t.Errorf("second delete status = %d, want 200", w.Code)
	}

	w = c.do(http.MethodPut, "/admin/settings/draft/banners/12345", gin.H{
		"title":     "Ghost",
		"image_url": "https://example.com/x.jpg",
	})
	if w.Code != http.StatusNotFound {
		t.Errorf("update absent banner status = %d, want 404", w.Code)
	}
}

func TestCheckoutClearsCart(t *testing.T) {
	c := newClient(t)
	c.do(http.MethodPost, "/cart/items", gin.H{"product_id": 2, "quantity": 1})

	w := c.do(http.MethodPost, "/checkout", gin.H{
		"name":        "Amina Khan",
		"address":     "12 Garden Road",
		"city":        "Karachi",
		"postal_code": "74000",
		"phone":       "0300-1234567",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout status = %d, body %s", w.Code, w.Body.String())
	}

	w = c.do(http.MethodGet, "/cart/count", nil)
	if count := c.decode(w)["data"].(map[string]any)["count"].(float64); count != 0 {
		t.Errorf("cart count after checkout = %v, want 0", count)
	}

	// A second checkout on the now-empty cart fails.
	w = c.do(http.MethodPost, "/checkout", gin.H{
		"name":        "Amina Khan",
		"address":     "12 Garden Road",
		"city":        "Karachi",
		"postal_code": "74000",
		"phone":       "0300-1234567",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty cart checkout status = %d, want 400", w.Code)
	}
}

func TestSessionsDoNotShareState(t *testing.T) {
	a := newClient(t)
	// Second browser against the same server: same router, no cookie.
	b := &client{t: t, router: a.router}

	a.do(http.MethodPost, "/cart/items", gin.H{"product_id": 1, "quantity": 2})

	w := b.do(http.MethodGet, "/cart/count", nil)
	if count := b.decode(w)["data"].(map[string]any)["count"].(float64); count != 0 {
		t.Errorf("second session sees a cart count of %v, want 0", count)
	}
}
