package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"velora_back_end/internal/models"
	"velora_back_end/internal/store"
)

// ReceiptMessage is the fixed confirmation line on every receipt.
const ReceiptMessage = "Checkout successful"

// ProposedLine is a client-submitted cart line. Any price the client might
// attach is ignored: prices always come from the product store.
type ProposedLine struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

// Mailer sends the order confirmation. Failures are logged, never surfaced.
type Mailer interface {
	SendReceipt(order *models.Order) error
}

// ProductLookup is the only catalog capability checkout needs: fetch by id.
type ProductLookup interface {
	Get(ctx context.Context, id string) (*models.Product, error)
}

// Service is the checkout reconciler plus the cart operations that feed it.
type Service struct {
	products ProductLookup
	cart     store.CartStore
	orders   store.OrderStore
	mailer   Mailer
}

func NewService(products ProductLookup, cart store.CartStore, orders store.OrderStore, mailer Mailer) *Service {
	return &Service{
		products: products,
		cart:     cart,
		orders:   orders,
		mailer:   mailer,
	}
}

// Checkout validates the buyer and every proposed line, reprices each line
// from the catalog, persists the order and clears the session cart.
//
// Fail-fast: the first invalid line or unknown product aborts the whole
// operation before anything is written. An empty proposed cart is billable
// for zero. Orders and carts live in different stores, so the clear is
// followed by a compensating order delete if it fails.
func (s *Service) Checkout(ctx context.Context, sessionID string, proposed []ProposedLine, buyer models.Buyer) (*models.Receipt, error) {
	if buyer.Name == "" || buyer.Email == "" {
		return nil, ErrInvalidBuyerInfo
	}

	var (
		items []models.OrderLine
		total int64
	)

	for _, line := range proposed {
		if line.ProductID == "" || line.Qty < 1 {
			return nil, ErrInvalidCartLine
		}

		product, err := s.products.Get(ctx, line.ProductID)
		if errors.Is(err, store.ErrProductNotFound) {
			return nil, &ProductNotFoundError{ProductID: line.ProductID}
		}
		if err != nil {
			return nil, err
		}

		items = append(items, models.OrderLine{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			UnitPrice: product.Price,
		})
		total += product.Price * int64(line.Qty)
	}

	order, err := s.orders.Insert(ctx, items, total, buyer)
	if err != nil {
		return nil, err
	}

	if err := s.cart.ClearAll(ctx, sessionID); err != nil {
		// Compensate: without the clear, the cart would keep pointing at
		// already-ordered items, so the order is rolled back instead.
		if delErr := s.orders.DeleteByID(ctx, order.ID.String()); delErr != nil {
			log.Printf("⚠️ Compensation failed, order %s kept with a stale cart: %v", order.ID, delErr)
		}
		return nil, fmt.Errorf("cart clear failed after order insert: %w", err)
	}

	if s.mailer != nil {
		go func(o *models.Order) {
			if err := s.mailer.SendReceipt(o); err != nil {
				log.Printf("⚠️ Receipt email for order %s not sent: %v", o.ID, err)
			}
		}(order)
	}

	return &models.Receipt{
		Total:     total,
		Timestamp: time.Now(),
		Message:   ReceiptMessage,
	}, nil
}

// SetCartLine validates the product and upserts its cart line with set (not
// add) semantics.
func (s *Service) SetCartLine(ctx context.Context, sessionID, productID string, qty int) (*models.CartLine, error) {
	if productID == "" || qty < 1 {
		return nil, ErrInvalidCartLine
	}

	if _, err := s.products.Get(ctx, productID); err != nil {
		return nil, err
	}

	return s.cart.UpsertByProduct(ctx, sessionID, productID, qty)
}

// RemoveCartLine deletes a line by its own id.
func (s *Service) RemoveCartLine(ctx context.Context, sessionID, lineID string) error {
	return s.cart.DeleteByID(ctx, sessionID, lineID)
}

// ClearCart empties the session cart.
func (s *Service) ClearCart(ctx context.Context, sessionID string) error {
	return s.cart.ClearAll(ctx, sessionID)
}

// CartView enriches the stored lines with live catalog data and totals them.
// Lines whose product has been deleted are skipped, not errored on.
func (s *Service) CartView(ctx context.Context, sessionID string) ([]models.CartItem, int64, error) {
	lines, err := s.cart.List(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]models.CartItem, 0, len(lines))
	var total int64

	for _, line := range lines {
		product, err := s.products.Get(ctx, line.ProductID)
		if errors.Is(err, store.ErrProductNotFound) {
			continue
		}
		if err != nil {
			return nil, 0, err
		}

		items = append(items, models.CartItem{
			ID:        line.ID,
			ProductID: line.ProductID,
			Name:      product.Name,
			Price:     product.Price,
			Qty:       line.Qty,
			Image:     product.Image,
		})
		total += product.Price * int64(line.Qty)
	}

	return items, total, nil
}
