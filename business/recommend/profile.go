package recommend

import (
	"sort"

	"kiranaMarket/domain"
)

// UserProfile is the behavioral summary derived from a user's order
// history. It is rebuilt on every request and never persisted.
type UserProfile struct {
	TopCategories []string
	TopBrands     []string
	AvgPrice      float64
	StoreTypes    map[string]struct{}
	Purchased     map[uint64]struct{}
}

// HasHistory reports whether the user bought anything at all. Without
// history the engine must take the popularity fallback path.
func (p *UserProfile) HasHistory() bool {
	return len(p.Purchased) > 0
}

// CategoryRank returns the 1-based rank of a category in the profile's
// top list, or 0 when the category is not ranked.
func (p *UserProfile) CategoryRank(category string) int {
	for i, c := range p.TopCategories {
		if c == category {
			return i + 1
		}
	}
	return 0
}

// BrandRank returns the 1-based rank of a brand, or 0 when not ranked.
func (p *UserProfile) BrandRank(brand string) int {
	for i, b := range p.TopBrands {
		if b == brand {
			return i + 1
		}
	}
	return 0
}

func (p *UserProfile) HasStoreType(storeType string) bool {
	_, ok := p.StoreTypes[storeType]
	return ok
}

// PurchasedIDs returns the owned product IDs as a sorted slice, suitable
// for a deterministic NOT IN clause.
func (p *UserProfile) PurchasedIDs() []uint64 {
	ids := make([]uint64, 0, len(p.Purchased))
	for id := range p.Purchased {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// buildProfile aggregates orders into a behavioral profile. Category and
// brand frequencies are weighted by line quantity, accumulated into a
// plain map and sorted once at the end; ties keep first-seen order.
func buildProfile(orders []domain.Order, products map[uint64]domain.Product, cfg Config) *UserProfile {
	profile := &UserProfile{
		StoreTypes: make(map[string]struct{}),
		Purchased:  make(map[uint64]struct{}),
	}

	categoryWeight := make(map[string]float64)
	categorySeen := make(map[string]int)
	brandWeight := make(map[string]float64)
	brandSeen := make(map[string]int)

	var priceSum float64
	var priceCount int
	seq := 0

	for _, order := range orders {
		for _, item := range order.Items {
			product, ok := products[item.ProductID]
			if !ok {
				continue
			}

			weight := float64(item.Quantity)
			if weight <= 0 {
				weight = 1
			}

			if product.ProductCategory != "" {
				if _, ok := categorySeen[product.ProductCategory]; !ok {
					categorySeen[product.ProductCategory] = seq
				}
				categoryWeight[product.ProductCategory] += weight
			}

			if product.Brand != "" {
				if _, ok := brandSeen[product.Brand]; !ok {
					brandSeen[product.Brand] = seq
				}
				brandWeight[product.Brand] += weight
			}

			if product.SalePrice > 0 {
				priceSum += product.SalePrice
				priceCount++
			}

			if product.StoreType != "" {
				profile.StoreTypes[product.StoreType] = struct{}{}
			}

			profile.Purchased[item.ProductID] = struct{}{}
			seq++
		}
	}

	profile.TopCategories = topKeys(categoryWeight, categorySeen, cfg.TopCategories)
	profile.TopBrands = topKeys(brandWeight, brandSeen, cfg.TopBrands)

	if priceCount > 0 {
		profile.AvgPrice = priceSum / float64(priceCount)
	}

	return profile
}

// topKeys ranks keys by accumulated weight descending, breaking ties by
// first-seen order, and returns at most n of them.
func topKeys(weights map[string]float64, firstSeen map[string]int, n int) []string {
	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		wi, wj := weights[keys[i]], weights[keys[j]]
		if wi == wj {
			return firstSeen[keys[i]] < firstSeen[keys[j]]
		}
		return wi > wj
	})

	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	return keys
}
