package handlers_test

import (
	"context"
	"fmt"

	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"velora_back_end/internal/models"
	"velora_back_end/internal/store"
)

// In-memory stand-ins for the Scylla/Redis stores.

type memProductStore struct {
	byID  map[string]*models.Product
	order []string
}

func newMemProductStore(products ...models.Product) *memProductStore {
	s := &memProductStore{byID: make(map[string]*models.Product)}
	for _, p := range products {
		p := p
		if p.ID == (gocql.UUID{}) {
			p.ID = gocql.TimeUUID()
		}
		s.byID[p.ID.String()] = &p
		s.order = append(s.order, p.ID.String())
	}
	return s
}

func (s *memProductStore) Get(_ context.Context, id string) (*models.Product, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, store.ErrProductNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *memProductStore) List(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.byID[id])
	}
	return out, nil
}

func (s *memProductStore) Insert(_ context.Context, p *models.Product) error {
	if p.ID == (gocql.UUID{}) {
		p.ID = gocql.TimeUUID()
	}
	cp := *p
	s.byID[p.ID.String()] = &cp
	s.order = append(s.order, p.ID.String())
	return nil
}

func (s *memProductStore) Update(_ context.Context, p *models.Product) error {
	if _, ok := s.byID[p.ID.String()]; !ok {
		return store.ErrProductNotFound
	}
	cp := *p
	s.byID[p.ID.String()] = &cp
	return nil
}

func (s *memProductStore) Delete(_ context.Context, id string) error {
	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *memProductStore) Count(_ context.Context) (int, error) {
	return len(s.byID), nil
}

func (s *memProductStore) DeleteAll(_ context.Context) error {
	s.byID = make(map[string]*models.Product)
	s.order = nil
	return nil
}

type memCartStore struct {
	lines map[string][]models.CartLine
}

func newMemCartStore() *memCartStore {
	return &memCartStore{lines: make(map[string][]models.CartLine)}
}

func (s *memCartStore) List(_ context.Context, sessionID string) ([]models.CartLine, error) {
	return s.lines[sessionID], nil
}

func (s *memCartStore) UpsertByProduct(_ context.Context, sessionID, productID string, qty int) (*models.CartLine, error) {
	for i := range s.lines[sessionID] {
		if s.lines[sessionID][i].ProductID == productID {
			s.lines[sessionID][i].Qty = qty
			return &s.lines[sessionID][i], nil
		}
	}
	line := models.CartLine{ID: uuid.NewString(), ProductID: productID, Qty: qty}
	s.lines[sessionID] = append(s.lines[sessionID], line)
	return &line, nil
}

func (s *memCartStore) DeleteByID(_ context.Context, sessionID, lineID string) error {
	for i, l := range s.lines[sessionID] {
		if l.ID == lineID {
			s.lines[sessionID] = append(s.lines[sessionID][:i], s.lines[sessionID][i+1:]...)
			return nil
		}
	}
	return store.ErrLineNotFound
}

func (s *memCartStore) ClearAll(_ context.Context, sessionID string) error {
	delete(s.lines, sessionID)
	return nil
}

type memOrderStore struct {
	orders []*models.Order
}

func (s *memOrderStore) Insert(_ context.Context, items []models.OrderLine, total int64, buyer models.Buyer) (*models.Order, error) {
	order := &models.Order{ID: gocql.TimeUUID(), Items: items, Total: total, Buyer: buyer}
	s.orders = append(s.orders, order)
	return order, nil
}

func (s *memOrderStore) Get(_ context.Context, id string) (*models.Order, error) {
	for _, o := range s.orders {
		if o.ID.String() == id {
			return o, nil
		}
	}
	return nil, fmt.Errorf("order %s not found", id)
}

func (s *memOrderStore) DeleteByID(_ context.Context, id string) error {
	for i, o := range s.orders {
		if o.ID.String() == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return nil
}
