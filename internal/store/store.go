package store

import (
	"context"
	"errors"

	"velora_back_end/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrLineNotFound    = errors.New("item not found in cart")
)

// ProductStore is the authoritative catalog. The checkout path only ever
// reads from it.
type ProductStore interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// CartStore holds one cart per session id. UpsertByProduct overwrites the
// quantity of an existing line, it does not accumulate.
type CartStore interface {
	List(ctx context.Context, sessionID string) ([]models.CartLine, error)
	UpsertByProduct(ctx context.Context, sessionID, productID string, qty int) (*models.CartLine, error)
	DeleteByID(ctx context.Context, sessionID, lineID string) error
	ClearAll(ctx context.Context, sessionID string) error
}

// OrderStore assigns the order id and creation timestamp on insert.
// DeleteByID only exists for the checkout compensation step.
type OrderStore interface {
	Insert(ctx context.Context, items []models.OrderLine, total int64, buyer models.Buyer) (*models.Order, error)
	Get(ctx context.Context, id string) (*models.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
