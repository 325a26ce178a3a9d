package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"velora_back_end/internal/models"
)

const cartTTL = 30 * 24 * time.Hour

// RedisCartStore keeps one JSON-encoded cart per session under
// "cart:<session>". Callers that never send a session id all share the
// "guest" cart, which is the legacy single-cart behavior.
type RedisCartStore struct {
	redis *redis.Client
}

func NewRedisCartStore(rdb *redis.Client) *RedisCartStore {
	return &RedisCartStore{redis: rdb}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

func (s *RedisCartStore) List(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	data, err := s.redis.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) || data == "" {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cart read failed: %w", err)
	}

	var lines []models.CartLine
	if err := json.Unmarshal([]byte(data), &lines); err != nil {
		return nil, fmt.Errorf("cart decode failed: %w", err)
	}
	return lines, nil
}

func (s *RedisCartStore) UpsertByProduct(ctx context.Context, sessionID, productID string, qty int) (*models.CartLine, error) {
	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	lines, line := upsertLine(lines, productID, qty)

	if err := s.save(ctx, sessionID, lines); err != nil {
		return nil, err
	}
	return &line, nil
}

func (s *RedisCartStore) DeleteByID(ctx context.Context, sessionID, lineID string) error {
	lines, err := s.List(ctx, sessionID)
	if err != nil {
		return err
	}

	lines, found := removeLine(lines, lineID)
	if !found {
		return ErrLineNotFound
	}

	return s.save(ctx, sessionID, lines)
}

func (s *RedisCartStore) ClearAll(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("cart clear failed: %w", err)
	}
	return nil
}

func (s *RedisCartStore) save(ctx context.Context, sessionID string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("cart encode failed: %w", err)
	}
	if err := s.redis.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("cart write failed: %w", err)
	}
	return nil
}

// upsertLine overwrites the quantity of an existing line for the product, or
// appends a fresh line. Set semantics, not accumulate: POST /api/cart with
// qty 5 after qty 3 leaves exactly one line with qty 5.
func upsertLine(lines []models.CartLine, productID string, qty int) ([]models.CartLine, models.CartLine) {
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Qty = qty
			return lines, lines[i]
		}
	}

	line := models.CartLine{
		ID:        uuid.NewString(),
		ProductID: productID,
		Qty:       qty,
	}
	return append(lines, line), line
}

// removeLine drops the line with the given id, reporting whether it existed.
func removeLine(lines []models.CartLine, lineID string) ([]models.CartLine, bool) {
	kept := lines[:0]
	found := false
	for _, l := range lines {
		if l.ID == lineID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	return kept, found
}
