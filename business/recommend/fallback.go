package recommend

import (
	"context"

	"kiranaMarket/domain"
)

// popularFallback serves users without purchase history (or when no
// candidate survives scoring). Every row gets the same fixed score and
// reason; ordering comes from the catalog's popularity sort. Products
// the user already owns are filtered out, with the fetch widened to
// compensate.
func (s *RecommendService) popularFallback(ctx context.Context, limit int, exclude map[uint64]struct{}, cfg Config) ([]domain.RecommendationResult, error) {
	products, err := s.catalogRepo.FindActiveByPopularity(ctx, limit+len(exclude))
	if err != nil {
		return nil, err
	}

	results := make([]domain.RecommendationResult, 0, limit)
	for _, product := range products {
		if _, owned := exclude[product.ID]; owned {
			continue
		}
		if len(results) == limit {
			break
		}
		results = append(results, domain.RecommendationResult{
			ProductID:       product.ID,
			Score:           cfg.FallbackScore,
			MatchPercentage: cfg.FallbackMatchPercent,
			Reason:          "Popular choice",
			Source:          domain.RecommendationSourcePopular,
		})
	}
	return results, nil
}
