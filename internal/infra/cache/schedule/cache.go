package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const keyPrefix = "salon:working-hours:"

// Cache кэш недельных графиков сотрудников в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache создает кэш графиков
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

func key(staffID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, staffID)
}

// Get возвращает график сотрудника или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, staffID int64) (domain.WeeklyTemplate, error) {
	raw, err := c.client.Get(ctx, key(staffID)).Bytes()
	if err == redis.Nil {
		return domain.WeeklyTemplate{}, ErrCacheMiss
	}
	if err != nil {
		return domain.WeeklyTemplate{}, fmt.Errorf("%w: Get - staff_id=%d: %v", ErrCacheRead, staffID, err)
	}

	var tpl domain.WeeklyTemplate
	if err := json.Unmarshal(raw, &tpl); err != nil {
		return domain.WeeklyTemplate{}, fmt.Errorf("%w: Get - staff_id=%d: %v", ErrDecode, staffID, err)
	}

	return tpl, nil
}

// Set сохраняет график сотрудника с TTL
func (c *Cache) Set(ctx context.Context, staffID int64, tpl domain.WeeklyTemplate) error {
	raw, err := json.Marshal(tpl)
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCacheWrite, err)
	}

	if err := c.client.Set(ctx, key(staffID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - staff_id=%d: %v", ErrCacheWrite, staffID, err)
	}

	return nil
}

// Invalidate удаляет график сотрудника из кэша
func (c *Cache) Invalidate(ctx context.Context, staffID int64) error {
	if err := c.client.Del(ctx, key(staffID)).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - staff_id=%d: %v", ErrCacheWrite, staffID, err)
	}
	return nil
}
