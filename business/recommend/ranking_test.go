package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kiranaMarket/domain"
)

func TestRankCandidatesDropsAtOrBelowThreshold(t *testing.T) {
	candidates := []candidate{
		{product: domain.Product{ID: 1}, score: 0.05},
		{product: domain.Product{ID: 2}, score: 0.1}, // exactly at threshold, dropped
		{product: domain.Product{ID: 3}, score: 0.11},
	}

	ranked := rankCandidates(candidates, 10, DefaultConfig())

	assert.Len(t, ranked, 1)
	assert.Equal(t, uint64(3), ranked[0].product.ID)
}

func TestRankCandidatesSortsDescendingAndTruncates(t *testing.T) {
	candidates := []candidate{
		{product: domain.Product{ID: 1}, score: 0.5},
		{product: domain.Product{ID: 2}, score: 1.5},
		{product: domain.Product{ID: 3}, score: 1.0},
	}

	ranked := rankCandidates(candidates, 2, DefaultConfig())

	assert.Len(t, ranked, 2)
	assert.Equal(t, uint64(2), ranked[0].product.ID)
	assert.Equal(t, uint64(3), ranked[1].product.ID)
}

func TestRankCandidatesStableOnTies(t *testing.T) {
	candidates := []candidate{
		{product: domain.Product{ID: 10}, score: 0.7},
		{product: domain.Product{ID: 20}, score: 0.7},
		{product: domain.Product{ID: 30}, score: 0.7},
	}

	ranked := rankCandidates(candidates, 3, DefaultConfig())

	assert.Equal(t, uint64(10), ranked[0].product.ID)
	assert.Equal(t, uint64(20), ranked[1].product.ID)
	assert.Equal(t, uint64(30), ranked[2].product.ID)
}

func TestComposeReasonCapsAtTwo(t *testing.T) {
	cfg := DefaultConfig()

	reason := composeReason([]string{"a", "b", "c"}, cfg)
	assert.Equal(t, "a • b", reason)

	assert.Equal(t, "a", composeReason([]string{"a"}, cfg))
}

func TestComposeReasonEmptyFallsBack(t *testing.T) {
	assert.Equal(t, "Based on your purchase history", composeReason(nil, DefaultConfig()))
}

func TestToResultsSourceAndPercentage(t *testing.T) {
	cfg := DefaultConfig()
	results := toResults([]candidate{
		{product: domain.Product{ID: 5}, score: 1.2, reasons: []string{"Similar category: Grocery"}},
	}, cfg)

	assert.Len(t, results, 1)
	assert.Equal(t, uint64(5), results[0].ProductID)
	assert.Equal(t, 24, results[0].MatchPercentage)
	assert.Equal(t, domain.RecommendationSourceHistory, results[0].Source)
	assert.Equal(t, "Similar category: Grocery", results[0].Reason)
}
