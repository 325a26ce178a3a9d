package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/services"
	"velora_back_end/internal/store"
)

// 🖼️ POST /api/products/:id/image
//
// Multipart upload ("image" field) stored in MinIO, URL recorded on the
// product.
func (h *ProductHandler) UploadProductImage(c *gin.Context) {
	id := c.Param("id")

	product, err := h.Products.Get(c.Request.Context(), id)
	if errors.Is(err, store.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing 'image' file"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), id, file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Image upload failed"})
		return
	}

	product.Image = url
	if err := h.Products.Update(c.Request.Context(), product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	go services.IndexProduct(*product)

	c.JSON(http.StatusOK, gin.H{
		"message": "Image uploaded",
		"image":   url,
	})
}
