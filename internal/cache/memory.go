// Package cache хранит готовые ответы на запросы отслеживания.
package cache

import (
	"context"
	"time"

	"github.com/avc/shipexpress/internal/domain"
	gocache "github.com/patrickmn/go-cache"
)

// MemoryTrackingCache кэш в памяти процесса
type MemoryTrackingCache struct {
	store *gocache.Cache
}

// NewMemoryTrackingCache создает кэш с временем жизни ttl
func NewMemoryTrackingCache(ttl time.Duration) *MemoryTrackingCache {
	return &MemoryTrackingCache{
		store: gocache.New(ttl, ttl*2),
	}
}

func (c *MemoryTrackingCache) Get(_ context.Context, trackingID string) (*domain.Tracking, bool) {
	v, ok := c.store.Get(trackingID)
	if !ok {
		return nil, false
	}
	return v.(*domain.Tracking), true
}

func (c *MemoryTrackingCache) Set(_ context.Context, trackingID string, tracking *domain.Tracking) {
	c.store.SetDefault(trackingID, tracking)
}

func (c *MemoryTrackingCache) Delete(_ context.Context, trackingID string) {
	c.store.Delete(trackingID)
}
