package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/e-dsin/maturity-sub005/internal/model"
	"github.com/e-dsin/maturity-sub005/internal/repository"
)

// GridCache is a read-through Redis cache in front of the grid
// repository. The grid changes rarely; entries are cached per function
// with a TTL. Definition order is preserved through the cached slice.
type GridCache struct {
	client *redis.Client
	repo   repository.GridRepo
	ttl    time.Duration
}

// NewGridCache creates a new grid cache.
func NewGridCache(client *redis.Client, repo repository.GridRepo) *GridCache {
	return &GridCache{
		client: client,
		repo:   repo,
		ttl:    time.Hour,
	}
}

func (c *GridCache) key(fonction string) string {
	return fmt.Sprintf("grille:%s", fonction)
}

// ListEntries satisfies scoring.GridSource. Cache misses and transport
// errors fall back to the repository; a failing cache never fails the
// interpretation read path.
func (c *GridCache) ListEntries(ctx context.Context, fonction string) ([]*model.GridEntry, error) {
	// Misses, transport errors and corrupt payloads all fall through
	// to the repository.
	if data, err := c.client.Get(ctx, c.key(fonction)).Result(); err == nil {
		var entries []*model.GridEntry
		if err := json.Unmarshal([]byte(data), &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := c.repo.ListEntries(ctx, fonction)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		c.client.Set(ctx, c.key(fonction), data, c.ttl)
	}
	return entries, nil
}

// Invalidate drops the cached entries for one function, e.g. after a
// grid edit.
func (c *GridCache) Invalidate(ctx context.Context, fonction string) error {
	return c.client.Del(ctx, c.key(fonction)).Err()
}
