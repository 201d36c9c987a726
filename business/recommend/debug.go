package recommend

import (
	"context"
	"errors"

	"kiranaMarket/domain"
)

// DebugRecommend runs the same pipeline as Recommend but bypasses the
// cache and returns per-signal contributions. Admin-only surface.
func (s *RecommendService) DebugRecommend(ctx context.Context, userID uint, slot string, limit int) ([]domain.DebugRecommendation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errors.New("recommendation limit must be positive")
	}

	cfg := s.loadConfig(ctx, slot)

	profile, ok := s.buildUserProfile(ctx, userID, cfg)
	if !ok {
		return []domain.DebugRecommendation{}, nil
	}

	if !profile.HasHistory() {
		return s.debugFallback(ctx, limit, nil, cfg)
	}

	products, err := s.loadCandidates(ctx, profile, limit, cfg)
	if err != nil {
		return nil, err
	}

	scored := make([]candidate, 0, len(products))
	for _, product := range products {
		scored = append(scored, scoreCandidate(product, profile, cfg))
	}

	ranked := rankCandidates(scored, limit, cfg)
	if len(ranked) == 0 {
		return s.debugFallback(ctx, limit, profile.Purchased, cfg)
	}

	if cfg.UseBusinessRerank {
		applyBusinessRerank(ranked, cfg)
	}

	out := make([]domain.DebugRecommendation, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, domain.DebugRecommendation{
			ProductID:       c.product.ID,
			ProductName:     c.product.ProductName,
			Score:           c.score,
			MatchPercentage: matchPercentage(c.score, cfg),
			Signals:         c.signals,
			Reasons:         c.reasons,
			Source:          domain.RecommendationSourceHistory,
		})
	}
	return out, nil
}

func (s *RecommendService) debugFallback(ctx context.Context, limit int, exclude map[uint64]struct{}, cfg Config) ([]domain.DebugRecommendation, error) {
	products, err := s.catalogRepo.FindActiveByPopularity(ctx, limit+len(exclude))
	if err != nil {
		return nil, err
	}

	out := make([]domain.DebugRecommendation, 0, limit)
	for _, product := range products {
		if _, owned := exclude[product.ID]; owned {
			continue
		}
		if len(out) == limit {
			break
		}
		out = append(out, domain.DebugRecommendation{
			ProductID:       product.ID,
			ProductName:     product.ProductName,
			Score:           cfg.FallbackScore,
			MatchPercentage: cfg.FallbackMatchPercent,
			Signals: []domain.SignalContribution{{
				Signal:       "popularity_rank",
				Detail:       "catalog popularity order",
				Contribution: cfg.FallbackScore,
			}},
			Reasons: []string{"Popular choice"},
			Source:  domain.RecommendationSourcePopular,
		})
	}
	return out, nil
}
