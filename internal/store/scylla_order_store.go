package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"velora_back_end/internal/models"
)

// ScyllaOrderStore persists orders in the orders keyspace. Order lines are
// stored as a JSON text column, the same shape the API exposes.
type ScyllaOrderStore struct {
	session *gocql.Session
}

func NewScyllaOrderStore(session *gocql.Session) *ScyllaOrderStore {
	return &ScyllaOrderStore{session: session}
}

func (s *ScyllaOrderStore) Insert(ctx context.Context, items []models.OrderLine, total int64, buyer models.Buyer) (*models.Order, error) {
	order := &models.Order{
		ID:        gocql.TimeUUID(),
		Items:     items,
		Total:     total,
		Buyer:     buyer,
		CreatedAt: time.Now(),
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("order items encode failed: %w", err)
	}

	err = s.session.Query(`INSERT INTO orders (order_id, items, total, buyer_name, buyer_email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		order.ID, string(itemsJSON), order.Total, buyer.Name, buyer.Email, order.CreatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return nil, fmt.Errorf("order insert failed: %w", err)
	}

	return order, nil
}

func (s *ScyllaOrderStore) Get(ctx context.Context, id string) (*models.Order, error) {
	orderUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid order id %q", id)
	}

	var (
		order     models.Order
		itemsJSON string
	)
	err = s.session.Query(`SELECT order_id, items, total, buyer_name, buyer_email, created_at
		FROM orders WHERE order_id = ?`, orderUUID).
		WithContext(ctx).
		Scan(&order.ID, &itemsJSON, &order.Total, &order.Buyer.Name, &order.Buyer.Email, &order.CreatedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, fmt.Errorf("order %s not found", id)
		}
		return nil, fmt.Errorf("order lookup failed: %w", err)
	}

	if err := json.Unmarshal([]byte(itemsJSON), &order.Items); err != nil {
		return nil, fmt.Errorf("order items decode failed: %w", err)
	}

	return &order, nil
}

func (s *ScyllaOrderStore) DeleteByID(ctx context.Context, id string) error {
	orderUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return fmt.Errorf("invalid order id %q", id)
	}

	err = s.session.Query(`DELETE FROM orders WHERE order_id = ?`, orderUUID).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("order delete failed: %w", err)
	}
	return nil
}
