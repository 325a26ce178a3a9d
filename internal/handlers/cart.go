package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/checkout"
	"velora_back_end/internal/store"
)

type CartHandler struct {
	Service *checkout.Service
}

func NewCartHandler(service *checkout.Service) *CartHandler {
	return &CartHandler{Service: service}
}

// sessionID scopes every cart operation. Clients without a session header
// share the guest cart, which matches the legacy single-cart clients.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-ID"); sid != "" {
		return sid
	}
	return "guest"
}

// 🟢 GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	items, total, err := h.Service.CartView(c.Request.Context(), sessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": total,
	})
}

// 🟢 POST /api/cart
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	_, err := h.Service.SetCartLine(c.Request.Context(), sessionID(c), input.ProductID, input.Qty)
	switch {
	case errors.Is(err, checkout.ErrInvalidCartLine):
		c.JSON(http.StatusBadRequest, gin.H{"message": checkout.ErrInvalidCartLine.Error()})
	case errors.Is(err, store.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	default:
		c.JSON(http.StatusCreated, gin.H{"message": "Item added to cart"})
	}
}

// ❌ DELETE /api/cart/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	err := h.Service.RemoveCartLine(c.Request.Context(), sessionID(c), c.Param("id"))
	switch {
	case errors.Is(err, store.ErrLineNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Item not found in cart"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// 🧹 DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Service.ClearCart(c.Request.Context(), sessionID(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
