package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"velora_back_end/internal/models"
)

const (
	productCacheTTL = 10 * time.Minute
	listCacheTTL    = time.Hour
	listCacheKey    = "products:all"
)

// CachedProductStore is a Redis read-through decorator over a ProductStore.
// Catalog writes invalidate both the per-product entry and the list cache.
type CachedProductStore struct {
	inner ProductStore
	redis *redis.Client
}

func NewCachedProductStore(inner ProductStore, rdb *redis.Client) *CachedProductStore {
	return &CachedProductStore{inner: inner, redis: rdb}
}

func (s *CachedProductStore) Get(ctx context.Context, id string) (*models.Product, error) {
	key := "product:" + id

	if data, err := s.redis.Get(ctx, key).Result(); err == nil {
		var p models.Product
		if json.Unmarshal([]byte(data), &p) == nil {
			return &p, nil
		}
	}

	p, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(p); err == nil {
		s.redis.Set(ctx, key, data, productCacheTTL)
	}

	return p, nil
}

func (s *CachedProductStore) List(ctx context.Context) ([]models.Product, error) {
	if data, err := s.redis.Get(ctx, listCacheKey).Result(); err == nil && data != "" {
		var cached []models.Product
		if json.Unmarshal([]byte(data), &cached) == nil {
			return cached, nil
		}
	}

	products, err := s.inner.List(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		s.redis.Set(ctx, listCacheKey, data, listCacheTTL)
	}

	return products, nil
}

func (s *CachedProductStore) Insert(ctx context.Context, p *models.Product) error {
	if err := s.inner.Insert(ctx, p); err != nil {
		return err
	}
	s.redis.Del(ctx, listCacheKey)
	return nil
}

func (s *CachedProductStore) Update(ctx context.Context, p *models.Product) error {
	if err := s.inner.Update(ctx, p); err != nil {
		return err
	}
	s.invalidate(ctx, p.ID.String())
	return nil
}

func (s *CachedProductStore) Delete(ctx context.Context, id string) error {
	if err := s.inner.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *CachedProductStore) Count(ctx context.Context) (int, error) {
	return s.inner.Count(ctx)
}

func (s *CachedProductStore) DeleteAll(ctx context.Context) error {
	if err := s.inner.DeleteAll(ctx); err != nil {
		return err
	}
	// Per-product keys expire on their own TTL
	s.redis.Del(ctx, listCacheKey)
	return nil
}

func (s *CachedProductStore) invalidate(ctx context.Context, id string) {
	// Best-effort: entries expire on their TTL anyway
	s.redis.Del(ctx, "product:"+id, listCacheKey)
}
