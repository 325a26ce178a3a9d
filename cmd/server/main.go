package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"velora_back_end/internal/checkout"
	"velora_back_end/internal/config"
	"velora_back_end/internal/database"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/routes"
	"velora_back_end/internal/store"
	"velora_back_end/internal/utils"
)

func main() {
	config.Load()

	database.ConnectDatabases()

	productsSession, err := database.GetProductsSession()
	if err != nil {
		log.Fatal("❌ Products session unavailable:", err)
	}
	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		log.Fatal("❌ Orders session unavailable:", err)
	}

	products := store.NewCachedProductStore(
		store.NewScyllaProductStore(productsSession),
		database.Redis,
	)
	cartStore := store.NewRedisCartStore(database.Redis)
	orders := store.NewScyllaOrderStore(ordersSession)

	// 🌱 Starter catalog for fresh deployments
	if err := store.SeedIfEmpty(context.Background(), products); err != nil {
		log.Println("⚠️ Catalog seeding failed:", err)
	}

	var mailer checkout.Mailer
	if os.Getenv("SMTP_HOST") != "" {
		mailer = utils.ReceiptMailer{}
		log.Println("✅ Receipt emails enabled")
	} else {
		log.Println("⚠️ SMTP not configured, receipt emails disabled")
	}

	service := checkout.NewService(products, cartStore, orders, mailer)

	r := gin.Default()
	routes.RegisterRoutes(r,
		handlers.NewProductHandler(products),
		handlers.NewCartHandler(service),
		handlers.NewCheckoutHandler(service),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Velora server listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
