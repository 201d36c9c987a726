package recommend

import (
	"context"
	"fmt"

	"kiranaMarket/domain"
)

// ResultCache holds previously computed slates keyed by user and slot.
// A nil cache disables caching entirely.
type ResultCache interface {
	Get(ctx context.Context, key string) ([]domain.RecommendationResult, bool, error)
	Set(ctx context.Context, key string, results []domain.RecommendationResult) error
}

func cacheKey(userID uint, slot string, limit int) string {
	return fmt.Sprintf("reco:%d:%s:%d", userID, slot, limit)
}
