package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"velora_back_end/internal/models"
)

// ScyllaProductStore reads and writes the products table in the products
// keyspace.
type ScyllaProductStore struct {
	session *gocql.Session
}

func NewScyllaProductStore(session *gocql.Session) *ScyllaProductStore {
	return &ScyllaProductStore{session: session}
}

func (s *ScyllaProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	productUUID, err := gocql.ParseUUID(id)
	if err != nil {
		// An id that cannot reference any row behaves like a missing row
		return nil, ErrProductNotFound
	}

	var p models.Product
	err = s.session.Query(`SELECT product_id, name, price, image, created_at, updated_at
		FROM products WHERE product_id = ?`, productUUID).
		WithContext(ctx).
		Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("product lookup failed: %w", err)
	}

	return &p, nil
}

func (s *ScyllaProductStore) List(ctx context.Context) ([]models.Product, error) {
	iter := s.session.Query(`SELECT product_id, name, price, image, created_at, updated_at
		FROM products`).WithContext(ctx).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.Image, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // reset for the next iteration
	}

	if err := iter.Close(); err != nil {
		return nil, fmt.Errorf("product scan failed: %w", err)
	}

	return products, nil
}

func (s *ScyllaProductStore) Insert(ctx context.Context, p *models.Product) error {
	if p.ID == (gocql.UUID{}) {
		p.ID = gocql.TimeUUID()
	}
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	err := s.session.Query(`INSERT INTO products (product_id, name, price, image, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Image, p.CreatedAt, p.UpdatedAt).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("product insert failed: %w", err)
	}
	return nil
}

func (s *ScyllaProductStore) Update(ctx context.Context, p *models.Product) error {
	now := time.Now()
	p.UpdatedAt = &now

	err := s.session.Query(`UPDATE products SET name = ?, price = ?, image = ?, updated_at = ?
		WHERE product_id = ?`,
		p.Name, p.Price, p.Image, p.UpdatedAt, p.ID).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("product update failed: %w", err)
	}
	return nil
}

func (s *ScyllaProductStore) Delete(ctx context.Context, id string) error {
	productUUID, err := gocql.ParseUUID(id)
	if err != nil {
		return ErrProductNotFound
	}

	err = s.session.Query(`DELETE FROM products WHERE product_id = ?`, productUUID).
		WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("product delete failed: %w", err)
	}
	return nil
}

func (s *ScyllaProductStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.session.Query(`SELECT COUNT(*) FROM products`).
		WithContext(ctx).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("product count failed: %w", err)
	}
	return count, nil
}

func (s *ScyllaProductStore) DeleteAll(ctx context.Context) error {
	err := s.session.Query(`TRUNCATE products`).WithContext(ctx).Exec()
	if err != nil {
		return fmt.Errorf("product truncate failed: %w", err)
	}
	return nil
}
