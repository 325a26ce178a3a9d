package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/models"
	"velora_back_end/internal/services"
	"velora_back_end/internal/store"
)

type ProductHandler struct {
	Products store.ProductStore
}

func NewProductHandler(products store.ProductStore) *ProductHandler {
	return &ProductHandler{Products: products}
}

// 🟢 GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if products == nil {
		products = []models.Product{}
	}
	c.JSON(http.StatusOK, products)
}

// 🟢 GET /api/products/:id
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if signed, err := services.GenerateSignedURL(c.Request.Context(), product.Image, 24*time.Hour); err == nil {
		product.Image = signed
	}

	c.JSON(http.StatusOK, product)
}

// 🟢 POST /api/products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
		Image string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if input.Name == "" || input.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Name and a non-negative price are required"})
		return
	}

	p := models.Product{
		Name:  input.Name,
		Price: input.Price,
		Image: input.Image,
	}

	if err := h.Products.Insert(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// 🔄 Elasticsearch indexing
	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

// 🟡 PUT /api/products/:id
//
// Omitted or zero fields keep their previous value.
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	var input struct {
		Name  string `json:"name"`
		Price int64  `json:"price"`
		Image string `json:"image"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	product, err := h.Products.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	if input.Name != "" {
		product.Name = input.Name
	}
	if input.Price > 0 {
		product.Price = input.Price
	}
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := h.Products.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	go services.IndexProduct(*product)

	c.JSON(http.StatusOK, product)
}

// ❌ DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.Products.Get(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	go services.RemoveProductFromIndex(id)

	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

// 🌱 PUT /api/products (reseed the mock catalog)
func (h *ProductHandler) SeedProducts(c *gin.Context) {
	products, err := store.Reseed(c.Request.Context(), h.Products)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	for _, p := range products {
		go services.IndexProduct(p)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Products seeded successfully",
		"products": products,
	})
}

// 🔎 GET /api/products/search?q=
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing 'q' parameter"})
		return
	}

	// 1️⃣ Elasticsearch first
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		signImages(c.Request.Context(), results)
		c.JSON(http.StatusOK, results)
		return
	}

	// 2️⃣ Fallback: full ScyllaDB scan filtered in memory
	products, err := h.Products.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	matches := []models.Product{}
	for _, p := range products {
		if containsIgnoreCase(p.Name, query) {
			matches = append(matches, p)
		}
	}

	signImages(c.Request.Context(), matches)
	c.JSON(http.StatusOK, matches)
}

func signImages(ctx context.Context, products []models.Product) {
	for i := range products {
		if signed, err := services.GenerateSignedURL(ctx, products[i].Image, 24*time.Hour); err == nil {
			products[i].Image = signed
		}
	}
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
