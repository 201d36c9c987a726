package recommend

import (
	"context"

	"kiranaMarket/domain"
)

// CandidateQuery describes the affinity filter used to pull candidate
// products from the catalog. A product qualifies when it matches any of
// the listed categories, brands or store types; products the user
// already owns are excluded.
type CandidateQuery struct {
	Categories []string
	Brands     []string
	StoreTypes []string
	PriceMin   float64
	PriceMax   float64
	ExcludeIDs []uint64
	Limit      int
}

func buildCandidateQuery(profile *UserProfile, limit int, cfg Config) CandidateQuery {
	q := CandidateQuery{
		Categories: profile.TopCategories,
		Brands:     profile.TopBrands,
		ExcludeIDs: profile.PurchasedIDs(),
		Limit:      limit,
	}

	for storeType := range profile.StoreTypes {
		q.StoreTypes = append(q.StoreTypes, storeType)
	}

	if profile.AvgPrice > 0 {
		q.PriceMin = profile.AvgPrice * cfg.PriceBandLow
		q.PriceMax = profile.AvgPrice * cfg.PriceBandHigh
	}

	return q
}

// loadCandidates over-fetches by the configured multiplier so that the
// scorer has room to drop weak candidates and still fill the slate.
func (s *RecommendService) loadCandidates(ctx context.Context, profile *UserProfile, limit int, cfg Config) ([]domain.Product, error) {
	fetch := limit * cfg.CandidateMultiplier
	if fetch < limit {
		fetch = limit
	}

	q := buildCandidateQuery(profile, fetch, cfg)
	return s.catalogRepo.FindActiveByProfile(ctx, q)
}
