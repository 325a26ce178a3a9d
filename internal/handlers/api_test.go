package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"velora_back_end/internal/checkout"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/models"
	"velora_back_end/internal/routes"
)

type testEnv struct {
	router   *gin.Engine
	products *memProductStore
	cart     *memCartStore
	orders   *memOrderStore
}

func newTestEnv(products ...models.Product) *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		products: newMemProductStore(products...),
		cart:     newMemCartStore(),
		orders:   &memOrderStore{},
	}

	svc := checkout.NewService(env.products, env.cart, env.orders, nil)

	env.router = gin.New()
	routes.RegisterRoutes(env.router,
		handlers.NewProductHandler(env.products),
		handlers.NewCartHandler(svc),
		handlers.NewCheckoutHandler(svc),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, into any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), into))
}

func twoProducts() []models.Product {
	return []models.Product{
		{Name: "Product A", Price: 100},
		{Name: "Product B", Price: 250},
	}
}

func TestHealthRoute(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "E-Commerce API is running", body["message"])
}

func TestListProducts(t *testing.T) {
	env := newTestEnv(twoProducts()...)

	w := env.do(t, http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	decode(t, w, &products)
	require.Len(t, products, 2)
	assert.Equal(t, "Product A", products[0].Name)
	assert.Equal(t, int64(250), products[1].Price)
}

func TestGetProductByID(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	w := env.do(t, http.MethodGet, "/api/products/"+idA, "")
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Product
	decode(t, w, &p)
	assert.Equal(t, "Product A", p.Name)

	w = env.do(t, http.MethodGet, "/api/products/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProduct(t *testing.T) {
	env := newTestEnv()

	w := env.do(t, http.MethodPost, "/api/products",
		`{"name": "Desk Lamp", "price": 450, "image": "https://example.com/lamp.jpg"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Product
	decode(t, w, &p)
	assert.Equal(t, "Desk Lamp", p.Name)
	assert.Equal(t, int64(450), p.Price)

	w = env.do(t, http.MethodPost, "/api/products", `{"name": "", "price": 10}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/products", `{"name": "Bad", "price": -5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProductKeepsOmittedFields(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	w := env.do(t, http.MethodPut, "/api/products/"+idA, `{"price": 175}`)

	require.Equal(t, http.StatusOK, w.Code)
	var p models.Product
	decode(t, w, &p)
	assert.Equal(t, "Product A", p.Name)
	assert.Equal(t, int64(175), p.Price)
}

func TestDeleteProduct(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	w := env.do(t, http.MethodDelete, "/api/products/"+idA, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/products/"+idA, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReseedProducts(t *testing.T) {
	env := newTestEnv(twoProducts()...)

	w := env.do(t, http.MethodPut, "/api/products", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Message  string           `json:"message"`
		Products []models.Product `json:"products"`
	}
	decode(t, w, &body)
	assert.Equal(t, "Products seeded successfully", body.Message)
	assert.Len(t, body.Products, 6)
}

func TestSearchFallsBackToCatalogScan(t *testing.T) {
	// No Elasticsearch in tests, the handler scans the catalog instead
	env := newTestEnv(twoProducts()...)

	w := env.do(t, http.MethodGet, "/api/products/search?q=product%20a", "")

	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	decode(t, w, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "Product A", products[0].Name)

	w = env.do(t, http.MethodGet, "/api/products/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	// Add, then overwrite the quantity
	w := env.do(t, http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId": %q, "qty": 3}`, idA))
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.do(t, http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId": %q, "qty": 5}`, idA))
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items []models.CartItem `json:"items"`
		Total int64             `json:"total"`
	}
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Qty)
	assert.Equal(t, int64(500), cart.Total)

	// Remove by line id
	w = env.do(t, http.MethodDelete, "/api/cart/"+cart.Items[0].ID, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodDelete, "/api/cart/"+cart.Items[0].ID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddToCartErrors(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	w := env.do(t, http.MethodPost, "/api/cart", `{"productId": "ghost-id", "qty": 1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId": %q, "qty": 0}`, idA))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartSessionsAreIsolated(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	w := env.do(t, http.MethodPost, "/api/cart",
		fmt.Sprintf(`{"productId": %q, "qty": 1}`, idA), "X-Session-ID", "alice")
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/cart", "", "X-Session-ID", "bob")
	require.Equal(t, http.StatusOK, w.Code)
	var cart struct {
		Items []models.CartItem `json:"items"`
	}
	decode(t, w, &cart)
	assert.Empty(t, cart.Items)
}

func TestCheckoutEndpoint(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]
	idB := env.products.order[1]

	// Fill the cart first so the clear is observable
	w := env.do(t, http.MethodPost, "/api/cart", fmt.Sprintf(`{"productId": %q, "qty": 2}`, idA))
	require.Equal(t, http.StatusCreated, w.Code)

	body := fmt.Sprintf(`{
		"cartItems": [
			{"productId": %q, "qty": 2, "price": 1},
			{"productId": %q, "qty": 1}
		],
		"user": {"name": "Sam", "email": "sam@x.com"}
	}`, idA, idB)

	w = env.do(t, http.MethodPost, "/api/checkout", body)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp struct {
		Receipt models.Receipt `json:"receipt"`
	}
	decode(t, w, &resp)
	// Smuggled client price ignored: 100*2 + 250*1
	assert.Equal(t, int64(450), resp.Receipt.Total)
	assert.Equal(t, "Checkout successful", resp.Receipt.Message)

	// Cart is empty afterwards
	w = env.do(t, http.MethodGet, "/api/cart", "")
	var cart struct {
		Items []models.CartItem `json:"items"`
	}
	decode(t, w, &cart)
	assert.Empty(t, cart.Items)

	require.Len(t, env.orders.orders, 1)
}

func TestCheckoutValidationErrors(t *testing.T) {
	env := newTestEnv(twoProducts()...)
	idA := env.products.order[0]

	w := env.do(t, http.MethodPost, "/api/checkout", fmt.Sprintf(`{
		"cartItems": [{"productId": %q, "qty": 1}],
		"user": {"name": "", "email": "sam@x.com"}
	}`, idA))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	decode(t, w, &body)
	assert.Equal(t, "Name and email are required", body["message"])

	w = env.do(t, http.MethodPost, "/api/checkout", fmt.Sprintf(`{
		"cartItems": [{"productId": %q, "qty": 1}, {"productId": "ghost-id", "qty": 1}],
		"user": {"name": "Sam", "email": "sam@x.com"}
	}`, idA))
	require.Equal(t, http.StatusBadRequest, w.Code)
	decode(t, w, &body)
	assert.Equal(t, "Product with ID ghost-id not found", body["message"])
	assert.Empty(t, env.orders.orders)
}
