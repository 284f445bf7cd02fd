package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"loja_checkout/internal/domain/entities"
	"loja_checkout/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	sessionTTL = 24 * time.Hour

	// The price-override marker is short-lived on purpose: it only needs to
	// survive between coupon application and checkout submission.
	markerTTL = 2 * time.Hour
)

// RedisSessionStore keeps the per-session checkout state (cart, active
// coupon, price-override marker, freight selection) in Redis so it is shared
// across checkout-adjacent page loads.

type RedisSessionStore struct {
	client *redis.Client
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func cartKey(sessionID string) string    { return fmt.Sprintf("session:%s:cart", sessionID) }
func couponKey(sessionID string) string  { return fmt.Sprintf("session:%s:coupon", sessionID) }
func markerKey(sessionID string) string  { return fmt.Sprintf("session:%s:price_override", sessionID) }
func freightKey(sessionID string) string { return fmt.Sprintf("session:%s:freight", sessionID) }

func (s *RedisSessionStore) GetCart(ctx context.Context, sessionID string) (entities.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Cart{SessionID: sessionID}, nil
	}
	if err != nil {
		return entities.Cart{}, fmt.Errorf("redis get cart failed: %w", err)
	}
	var cart entities.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return entities.Cart{}, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return cart, nil
}

func (s *RedisSessionStore) SaveCart(ctx context.Context, cart entities.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(cart.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set cart failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetActiveCoupon(ctx context.Context, sessionID string) (*entities.Coupon, error) {
	data, err := s.client.Get(ctx, couponKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get coupon failed: %w", err)
	}
	var coupon entities.Coupon
	if err := json.Unmarshal(data, &coupon); err != nil {
		return nil, fmt.Errorf("unmarshal coupon failed: %w", err)
	}
	return &coupon, nil
}

func (s *RedisSessionStore) SaveActiveCoupon(ctx context.Context, sessionID string, coupon entities.Coupon) error {
	data, err := json.Marshal(coupon)
	if err != nil {
		return fmt.Errorf("marshal coupon failed: %w", err)
	}
	if err := s.client.Set(ctx, couponKey(sessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set coupon failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) ClearActiveCoupon(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, couponKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del coupon failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) SetPriceOverrideMarker(ctx context.Context, sessionID string) error {
	if err := s.client.Set(ctx, markerKey(sessionID), "1", markerTTL).Err(); err != nil {
		return fmt.Errorf("redis set marker failed: %w", err)
	}
	return nil
}

// ConsumePriceOverrideMarker reads and deletes the marker atomically (GETDEL)
// so it can only ever be consumed once.
func (s *RedisSessionStore) ConsumePriceOverrideMarker(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.client.GetDel(ctx, markerKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis getdel marker failed: %w", err)
	}
	return true, nil
}

func (s *RedisSessionStore) ClearPriceOverrideMarker(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, markerKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis del marker failed: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) GetFreightSelection(ctx context.Context, sessionID string) (*entities.FreightSelection, error) {
	data, err := s.client.Get(ctx, freightKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get freight failed: %w", err)
	}
	var sel entities.FreightSelection
	if err := json.Unmarshal(data, &sel); err != nil {
		return nil, fmt.Errorf("unmarshal freight failed: %w", err)
	}
	return &sel, nil
}

func (s *RedisSessionStore) SaveFreightSelection(ctx context.Context, sessionID string, sel entities.FreightSelection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return fmt.Errorf("marshal freight failed: %w", err)
	}
	if err := s.client.Set(ctx, freightKey(sessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("redis set freight failed: %w", err)
	}
	return nil
}
