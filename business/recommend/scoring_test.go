package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kiranaMarket/domain"
)

func profileWith(categories, brands []string, storeTypes map[string]struct{}, avgPrice float64) *UserProfile {
	if storeTypes == nil {
		storeTypes = map[string]struct{}{}
	}
	return &UserProfile{
		TopCategories: categories,
		TopBrands:     brands,
		StoreTypes:    storeTypes,
		AvgPrice:      avgPrice,
		Purchased:     map[uint64]struct{}{1: {}},
	}
}

func TestScoreCandidateCombinedSignals(t *testing.T) {
	// third-ranked category, near-average price, popular product
	profile := profileWith(
		[]string{"Beverages", "Snacks", "Grocery"},
		nil, nil, 425,
	)
	product := domain.Product{
		ID:              7,
		ProductCategory: "Grocery",
		Brand:           "Unknown",
		SalePrice:       440,
		PurchaseCount:   42,
	}

	c := scoreCandidate(product, profile, DefaultConfig())

	// (4-3)*0.4 + 0.1*(1-15/425) + 0.1
	assert.InDelta(t, 0.59647, c.score, 0.0005)
	assert.Len(t, c.signals, 3)
	assert.Equal(t, "category", c.signals[0].Signal)
	assert.Equal(t, "price", c.signals[1].Signal)
	assert.Equal(t, "popularity", c.signals[2].Signal)
}

func TestScoreCandidateTopCategoryAndBrand(t *testing.T) {
	profile := profileWith([]string{"Grocery"}, []string{"Aashirvaad"}, nil, 0)
	product := domain.Product{ProductCategory: "Grocery", Brand: "Aashirvaad"}

	c := scoreCandidate(product, profile, DefaultConfig())

	// (4-1)*0.4 + (4-1)*0.3
	assert.InDelta(t, 2.1, c.score, 1e-9)
	assert.Equal(t, []string{
		"Similar category: Grocery",
		"Preferred brand: Aashirvaad",
	}, c.reasons)
}

func TestScoreCandidateStoreTypeSignal(t *testing.T) {
	profile := profileWith(nil, nil, map[string]struct{}{"Kiosk": {}}, 0)
	product := domain.Product{StoreType: "Kiosk"}

	c := scoreCandidate(product, profile, DefaultConfig())

	assert.InDelta(t, 0.2, c.score, 1e-9)
	assert.Equal(t, "store_type", c.signals[0].Signal)
}

func TestScoreCandidatePriceOutsideDistanceCutoff(t *testing.T) {
	profile := profileWith(nil, nil, nil, 100)
	product := domain.Product{SalePrice: 200} // distance 1.0, past the 0.5 cutoff

	c := scoreCandidate(product, profile, DefaultConfig())

	assert.Zero(t, c.score)
	assert.Empty(t, c.signals)
}

func TestScoreCandidateNoAvgPriceSkipsPriceSignal(t *testing.T) {
	profile := profileWith(nil, nil, nil, 0)
	product := domain.Product{SalePrice: 100}

	c := scoreCandidate(product, profile, DefaultConfig())

	assert.Zero(t, c.score)
}

func TestScoreCandidatePopularityThresholdIsExclusive(t *testing.T) {
	profile := profileWith(nil, nil, nil, 0)
	cfg := DefaultConfig()

	at := scoreCandidate(domain.Product{PurchaseCount: 10}, profile, cfg)
	above := scoreCandidate(domain.Product{PurchaseCount: 11}, profile, cfg)

	assert.Zero(t, at.score)
	assert.InDelta(t, 0.1, above.score, 1e-9)
}

func TestMatchPercentage(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 60, matchPercentage(3.0, cfg))
	assert.Equal(t, 12, matchPercentage(0.59647, cfg))
	assert.Equal(t, 95, matchPercentage(5.0, cfg))  // capped
	assert.Equal(t, 95, matchPercentage(10.0, cfg)) // capped
	assert.Equal(t, 0, matchPercentage(0, cfg))
}
