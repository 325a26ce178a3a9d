package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"velora_back_end/internal/handlers"
	"velora_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, products *handlers.ProductHandler, cart *handlers.CartHandler, co *handlers.CheckoutHandler) {
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "E-Commerce API is running"})
	})

	api := r.Group("/api", middleware.APIRateLimit())

	// Products
	api.GET("/products", products.GetProducts)
	api.POST("/products", products.CreateProduct)
	api.PUT("/products", products.SeedProducts)
	api.GET("/products/search", products.SearchProducts)
	api.GET("/products/:id", products.GetProductByID)
	api.PUT("/products/:id", products.UpdateProduct)
	api.DELETE("/products/:id", products.DeleteProduct)
	api.POST("/products/:id/image", products.UploadProductImage)

	// Cart
	api.GET("/cart", cart.GetCart)
	api.POST("/cart", cart.AddToCart)
	api.DELETE("/cart", cart.ClearCart)
	api.DELETE("/cart/:id", cart.RemoveFromCart)

	// Checkout
	api.POST("/checkout", co.Checkout)
}
