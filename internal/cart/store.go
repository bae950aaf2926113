package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rotikita/rotikita-backend/pkg/redis"
)

// Store persists cart snapshots. A missing token loads as an empty cart.
type Store interface {
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, token string) error
}

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds the Redis-backed cart store. Carts expire after ttl of
// inactivity; every save refreshes the clock.
func NewRedisStore(client *redis.Client, ttl time.Duration) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cart ttl must be positive")
	}
	return &redisStore{client: client, ttl: ttl}, nil
}

func (s *redisStore) Load(ctx context.Context, token string) (*Cart, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &Cart{Token: token}, nil
		}
		return nil, fmt.Errorf("load cart: %w", err)
	}

	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// A corrupt snapshot is unrecoverable client staging data; start over.
		return &Cart{Token: token}, nil
	}
	cart.Token = token
	return &cart, nil
}

func (s *redisStore) Save(ctx context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now().UTC()
	raw, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.client.CartKey(cart.Token), string(raw), s.ttl); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.client.CartKey(token)); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
