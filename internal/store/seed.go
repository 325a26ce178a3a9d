package store

import (
	"context"
	"log"

	"velora_back_end/internal/models"
)

// mockProducts is the starter catalog, prices in cents.
func mockProducts() []models.Product {
	return []models.Product{
		{Name: "Wireless Headphones", Price: 1499, Image: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400&h=400&fit=crop"},
		{Name: "Smart Watch", Price: 2999, Image: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=400&h=400&fit=crop"},
		{Name: "Bluetooth Speaker", Price: 1299, Image: "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=400&h=400&fit=crop"},
		{Name: "Gaming Mouse", Price: 799, Image: "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400&h=400&fit=crop"},
		{Name: "Mechanical Keyboard", Price: 1999, Image: "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400&h=400&fit=crop"},
		{Name: "4K Monitor", Price: 15999, Image: "https://images.unsplash.com/photo-1531297484001-80022131f5a1?w=400&h=400&fit=crop"},
	}
}

// SeedIfEmpty inserts the mock catalog when the products table has no rows.
// Runs at startup so a fresh deployment has something to sell.
func SeedIfEmpty(ctx context.Context, products ProductStore) error {
	count, err := products.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range mockProducts() {
		p := p
		if err := products.Insert(ctx, &p); err != nil {
			return err
		}
	}

	log.Println("✅ Products seeded")
	return nil
}

// Reseed wipes the catalog and reinserts the mock products.
func Reseed(ctx context.Context, products ProductStore) ([]models.Product, error) {
	if err := products.DeleteAll(ctx); err != nil {
		return nil, err
	}

	seeded := make([]models.Product, 0, 6)
	for _, p := range mockProducts() {
		p := p
		if err := products.Insert(ctx, &p); err != nil {
			return nil, err
		}
		seeded = append(seeded, p)
	}

	return seeded, nil
}
