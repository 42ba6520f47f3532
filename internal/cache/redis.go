package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisTrackingCache общий для всех инстансов кэш в Redis.
// Ошибки Redis не прерывают запрос: чтение считается промахом.
type RedisTrackingCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// NewRedisTrackingCache создает кэш поверх клиента Redis
func NewRedisTrackingCache(client redis.Cmdable, serviceName string, ttl time.Duration, logger *zap.Logger) *RedisTrackingCache {
	return &RedisTrackingCache{
		client: client,
		prefix: serviceName + ":tracking:",
		ttl:    ttl,
		logger: logger,
	}
}

// Key возвращает ключ Redis для номера отслеживания
func (c *RedisTrackingCache) Key(trackingID string) string {
	return c.prefix + trackingID
}

func (c *RedisTrackingCache) Get(ctx context.Context, trackingID string) (*domain.Tracking, bool) {
	raw, err := c.client.Get(ctx, c.Key(trackingID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("tracking cache read failed", zap.String("tracking_id", trackingID), zap.Error(err))
		return nil, false
	}

	var tracking domain.Tracking
	if err := json.Unmarshal(raw, &tracking); err != nil {
		c.logger.Warn("tracking cache entry is corrupt", zap.String("tracking_id", trackingID), zap.Error(err))
		return nil, false
	}

	return &tracking, true
}

func (c *RedisTrackingCache) Set(ctx context.Context, trackingID string, tracking *domain.Tracking) {
	if err := c.set(ctx, trackingID, tracking); err != nil {
		c.logger.Warn("tracking cache write failed", zap.String("tracking_id", trackingID), zap.Error(err))
	}
}

func (c *RedisTrackingCache) set(ctx context.Context, trackingID string, tracking *domain.Tracking) error {
	payload, err := json.Marshal(tracking)
	if err != nil {
		return fmt.Errorf("cache: failed to marshal tracking: %w", err)
	}
	return c.client.Set(ctx, c.Key(trackingID), payload, c.ttl).Err()
}

func (c *RedisTrackingCache) Delete(ctx context.Context, trackingID string) {
	if err := c.client.Del(ctx, c.Key(trackingID)).Err(); err != nil {
		c.logger.Warn("tracking cache delete failed", zap.String("tracking_id", trackingID), zap.Error(err))
	}
}
