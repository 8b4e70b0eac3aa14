package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/AlixRomain/P7-Web-Service/internal/core/domain"
)

const defaultCacheTTL = 5 * time.Minute

// MobileCache stores mobile details as JSON.
// Key format: mobile:<id>
type MobileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMobileCache wraps the given client. A non-positive ttl uses five minutes.
func NewMobileCache(client *redis.Client, ttl time.Duration) *MobileCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &MobileCache{client: client, ttl: ttl}
}

type cachedMobile struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

func (c *MobileCache) Get(ctx context.Context, id int64) (*domain.Mobile, bool, error) {
	raw, err := c.client.Get(ctx, mobileKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("mobile cache get: %w", err)
	}
	m, err := decodeMobile(raw)
	if err != nil {
		return nil, false, err
	}
	return m, true, nil
}

func (c *MobileCache) Set(ctx context.Context, m *domain.Mobile) error {
	raw, err := encodeMobile(m)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, mobileKey(m.ID), raw, c.ttl).Err()
}

func (c *MobileCache) Delete(ctx context.Context, id int64) error {
	return c.client.Del(ctx, mobileKey(id)).Err()
}

func mobileKey(id int64) string {
	return fmt.Sprintf("mobile:%d", id)
}

func encodeMobile(m *domain.Mobile) ([]byte, error) {
	return json.Marshal(cachedMobile{ID: m.ID, Name: m.Name, Description: m.Description, Price: m.Price})
}

func decodeMobile(raw []byte) (*domain.Mobile, error) {
	var cm cachedMobile
	if err := json.Unmarshal(raw, &cm); err != nil {
		return nil, fmt.Errorf("mobile cache decode: %w", err)
	}
	return &domain.Mobile{ID: cm.ID, Name: cm.Name, Description: cm.Description, Price: cm.Price}, nil
}
