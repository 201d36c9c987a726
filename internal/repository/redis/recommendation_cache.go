package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"kiranaMarket/business/recommend"
	"kiranaMarket/domain"
)

// RecommendationCache stores computed slates with a short TTL, so a user
// refreshing a page does not re-run the whole pipeline.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ recommend.ResultCache = (*RecommendationCache)(nil)

func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *RecommendationCache) Get(ctx context.Context, key string) ([]domain.RecommendationResult, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached recommendations: %w", err)
	}

	var results []domain.RecommendationResult
	if err := json.Unmarshal([]byte(val), &results); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached recommendations: %w", err)
	}

	return results, true, nil
}

func (c *RecommendationCache) Set(ctx context.Context, key string, results []domain.RecommendationResult) error {
	jsonData, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	if err := c.client.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache recommendations: %w", err)
	}

	return nil
}
