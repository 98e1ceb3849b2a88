package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shopmart/models"
	"shopmart/services"
)

type fakeCartStore struct {
	mu    sync.Mutex
	carts map[string]models.Cart
}

func (s *fakeCartStore) Get(_ context.Context, userID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[userID]
	if !ok {
		return nil, nil
	}
	cp := cart
	cp.Items = append([]models.CartItem{}, cart.Items...)
	return &cp, nil
}

func (s *fakeCartStore) Upsert(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *cart
	cp.Items = append([]models.CartItem{}, cart.Items...)
	s.carts[cart.UserID] = cp
	return nil
}

type fakePrices map[string]float64

func (p fakePrices) PricesByIDs(_ context.Context, ids []string) (map[string]float64, error) {
	out := map[string]float64{}
	for _, id := range ids {
		if price, ok := p[id]; ok {
			out[id] = price
		}
	}
	return out, nil
}

func newCartRouter(userID string, prices fakePrices) *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := &fakeCartStore{carts: map[string]models.Cart{}}
	ctrl := NewCartController(services.NewCartService(store, prices, false))

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	router.POST("/cart/add", ctrl.AddToCart)
	router.GET("/cart", ctrl.GetCart)
	router.POST("/cart/reduce", ctrl.ReduceQuantity)
	router.POST("/cart/remove", ctrl.RemoveFromCart)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartEndpoints(t *testing.T) {
	user := uuid.NewString()
	product := uuid.NewString()
	router := newCartRouter(user, fakePrices{product: 25})

	w := doJSON(t, router, http.MethodPost, "/cart/add", models.AddToCartRequest{ProductID: product, Quantity: 2})
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	var resp struct {
		Success bool        `json:"success"`
		Data    models.Cart `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.Data.TotalCost != 50 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	w = doJSON(t, router, http.MethodPost, "/cart/reduce", models.ReduceQuantityRequest{ProductID: product, Quantity: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("reduce status = %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodPost, "/cart/remove", models.RemoveFromCartRequest{ProductID: product})
	if w.Code != http.StatusOK {
		t.Fatalf("remove status = %d", w.Code)
	}
}

func TestAddToCartUnknownProductReturns404(t *testing.T) {
	router := newCartRouter(uuid.NewString(), fakePrices{})

	w := doJSON(t, router, http.MethodPost, "/cart/add", models.AddToCartRequest{ProductID: uuid.NewString(), Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAddToCartRejectsMalformedBody(t *testing.T) {
	router := newCartRouter(uuid.NewString(), fakePrices{})

	w := doJSON(t, router, http.MethodPost, "/cart/add", map[string]any{"quantity": 0})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetCartBeforeFirstAddReturns404(t *testing.T) {
	router := newCartRouter(uuid.NewString(), fakePrices{})

	w := doJSON(t, router, http.MethodGet, "/cart", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestReduceAbsentLineReturns404(t *testing.T) {
	user := uuid.NewString()
	product := uuid.NewString()
	other := uuid.NewString()
	router := newCartRouter(user, fakePrices{product: 10, other: 5})

	w := doJSON(t, router, http.MethodPost, "/cart/add", models.AddToCartRequest{ProductID: product, Quantity: 1})
	if w.Code != http.StatusOK {
		t.Fatalf("add status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/cart/reduce", models.ReduceQuantityRequest{ProductID: other, Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
