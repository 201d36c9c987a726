package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kiranaMarket/domain"
)

func TestBusinessRerankPrefersHighMargin(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []candidate{
		{product: domain.Product{ID: 1, ProfitMargin: 0.1, Stock: 500}, score: 1.0},
		{product: domain.Product{ID: 2, ProfitMargin: 0.4, Stock: 500}, score: 1.0},
	}

	applyBusinessRerank(candidates, cfg)

	assert.Equal(t, uint64(2), candidates[0].product.ID)
	assert.Equal(t, uint64(1), candidates[1].product.ID)
}

func TestBusinessRerankPenalizesLowStock(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []candidate{
		{product: domain.Product{ID: 1, ProfitMargin: 0.25, Stock: 10}, score: 1.0},
		{product: domain.Product{ID: 2, ProfitMargin: 0.25, Stock: 200}, score: 1.0},
	}

	applyBusinessRerank(candidates, cfg)

	assert.Equal(t, uint64(2), candidates[0].product.ID)
}

func TestBusinessRerankKeepsRelevanceDominant(t *testing.T) {
	cfg := DefaultConfig()
	candidates := []candidate{
		{product: domain.Product{ID: 1, ProfitMargin: 0.4, Stock: 500}, score: 0.2},
		{product: domain.Product{ID: 2, ProfitMargin: 0.1, Stock: 500}, score: 2.0},
	}

	applyBusinessRerank(candidates, cfg)

	// 0.5*2.0 beats 0.5*0.2 + 0.3*1.0
	assert.Equal(t, uint64(2), candidates[0].product.ID)
}

func TestBusinessRerankEmptySlice(t *testing.T) {
	assert.NotPanics(t, func() {
		applyBusinessRerank(nil, DefaultConfig())
	})
}
