package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"goodsoil/models"
	"goodsoil/repositories"
	"goodsoil/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memCartStore struct {
	lines map[int]int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{lines: map[int]int{}}
}

func (s *memCartStore) GetOrCreateCart(ctx context.Context, userID int) (int, error) {
	return 1, nil
}

func (s *memCartStore) ListItems(ctx context.Context, cartID int) ([]models.CartLine, error) {
	out := []models.CartLine{}
	for productID, qty := range s.lines {
		out = append(out, models.CartLine{ProductID: productID, Quantity: qty, Price: decimal.NewFromInt(10)})
	}
	return out, nil
}

func (s *memCartStore) AddItem(ctx context.Context, userID, productID, quantity int) (bool, error) {
	_, existed := s.lines[productID]
	s.lines[productID] += quantity
	return !existed, nil
}

func (s *memCartStore) UpdateItemQuantity(ctx context.Context, userID, productID, quantity int) error {
	if _, ok := s.lines[productID]; !ok {
		return repositories.ErrItemNotFound
	}
	s.lines[productID] = quantity
	return nil
}

func (s *memCartStore) RemoveItem(ctx context.Context, userID, productID int) error {
	if _, ok := s.lines[productID]; !ok {
		return repositories.ErrItemNotFound
	}
	delete(s.lines, productID)
	return nil
}

func cartTestRouter(store *memCartStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewCartController(services.NewCartService(store))

	router := gin.New()
	router.Use(func(c *gin.Context) { c.Set("user_id", 1) })
	router.GET("/api/cart", ctrl.GetCart)
	router.POST("/api/cart/add", ctrl.AddItem)
	router.PUT("/api/cart/update-item", ctrl.UpdateItem)
	router.DELETE("/api/cart/remove-item/:productId", ctrl.RemoveItem)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAddItemCreatedThenUpdated(t *testing.T) {
	router := cartTestRouter(newMemCartStore())

	w := doJSON(t, router, "POST", "/api/cart/add", `{"productId": 5, "quantity": 2}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, "POST", "/api/cart/add", `{"productId": 5, "quantity": 3}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAddItemRejectsBadInput(t *testing.T) {
	router := cartTestRouter(newMemCartStore())

	w := doJSON(t, router, "POST", "/api/cart/add", `{"productId": 0, "quantity": 2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, "POST", "/api/cart/add", `{"productId": 5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateItemNotInCart(t *testing.T) {
	router := cartTestRouter(newMemCartStore())

	w := doJSON(t, router, "PUT", "/api/cart/update-item", `{"productId": 5, "quantity": 2}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItemNotInCart(t *testing.T) {
	router := cartTestRouter(newMemCartStore())

	w := doJSON(t, router, "DELETE", "/api/cart/remove-item/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCartReflectsAdds(t *testing.T) {
	store := newMemCartStore()
	router := cartTestRouter(store)

	doJSON(t, router, "POST", "/api/cart/add", `{"productId": 5, "quantity": 2}`)
	doJSON(t, router, "POST", "/api/cart/add", `{"productId": 5, "quantity": 1}`)

	w := doJSON(t, router, "GET", "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool              `json:"success"`
		Items   []models.CartLine `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].Quantity)
}

func TestGetCartPayloadKeyIsItems(t *testing.T) {
	router := cartTestRouter(newMemCartStore())

	w := doJSON(t, router, "GET", "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"items":[]`)
}
