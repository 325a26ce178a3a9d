package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/checkout"
	"velora_back_end/internal/models"
)

type CheckoutHandler struct {
	Service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Service: service}
}

// 💳 POST /api/checkout
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req struct {
		CartItems []checkout.ProposedLine `json:"cartItems"`
		User      models.Buyer            `json:"user"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	receipt, err := h.Service.Checkout(c.Request.Context(), sessionID(c), req.CartItems, req.User)
	if err != nil {
		var notFound *checkout.ProductNotFoundError
		switch {
		case errors.Is(err, checkout.ErrInvalidBuyerInfo),
			errors.Is(err, checkout.ErrInvalidCartLine),
			errors.As(err, &notFound):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"receipt": receipt})
}
