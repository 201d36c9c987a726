package recommend

import (
	"sort"
	"strings"

	"kiranaMarket/domain"
)

const fallbackReason = "Based on your purchase history"

// rankCandidates drops candidates at or below the score threshold, sorts
// the rest by score descending and truncates to the requested size.
// The sort is stable so equally-scored products keep catalog order.
func rankCandidates(candidates []candidate, limit int, cfg Config) []candidate {
	kept := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.score > cfg.MinScore {
			kept = append(kept, c)
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].score > kept[j].score
	})

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept
}

// composeReason joins the strongest reasons into one display string,
// capped at the configured count.
func composeReason(reasons []string, cfg Config) string {
	if len(reasons) == 0 {
		return fallbackReason
	}
	if len(reasons) > cfg.MaxReasons {
		reasons = reasons[:cfg.MaxReasons]
	}
	return strings.Join(reasons, " • ")
}

func toResults(candidates []candidate, cfg Config) []domain.RecommendationResult {
	results := make([]domain.RecommendationResult, 0, len(candidates))
	for _, c := range candidates {
		results = append(results, domain.RecommendationResult{
			ProductID:       c.product.ID,
			Score:           c.score,
			MatchPercentage: matchPercentage(c.score, cfg),
			Reason:          composeReason(c.reasons, cfg),
			Source:          domain.RecommendationSourceHistory,
		})
	}
	return results
}
