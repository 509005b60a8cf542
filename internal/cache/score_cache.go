package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/e-dsin/maturity-sub005/internal/model"
)

// ScoreCache handles Redis operations for latest score snapshots.
type ScoreCache interface {
	GetFormAnalysis(ctx context.Context, formID string) (*model.Analysis, error)
	SetFormAnalysis(ctx context.Context, a *model.Analysis) error
	InvalidateForm(ctx context.Context, formID string) error
}

type scoreCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScoreCache creates a new score cache.
func NewScoreCache(client *redis.Client) ScoreCache {
	return &scoreCache{
		client: client,
		ttl:    15 * time.Minute,
	}
}

func (c *scoreCache) formKey(formID string) string {
	return fmt.Sprintf("form:%s:analysis", formID)
}

func (c *scoreCache) GetFormAnalysis(ctx context.Context, formID string) (*model.Analysis, error) {
	data, err := c.client.Get(ctx, c.formKey(formID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var a model.Analysis
	if err := json.Unmarshal([]byte(data), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *scoreCache) SetFormAnalysis(ctx context.Context, a *model.Analysis) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.formKey(a.FormID), data, c.ttl).Err()
}

func (c *scoreCache) InvalidateForm(ctx context.Context, formID string) error {
	return c.client.Del(ctx, c.formKey(formID)).Err()
}
