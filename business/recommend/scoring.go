package recommend

import (
	"fmt"
	"math"

	"kiranaMarket/domain"
)

type candidate struct {
	product domain.Product
	score   float64
	reasons []string
	signals []domain.SignalContribution
}

// scoreCandidate evaluates one product against the profile. Signals are
// additive and evaluated in a fixed order; each firing signal records a
// human-readable reason alongside its contribution.
func scoreCandidate(product domain.Product, profile *UserProfile, cfg Config) candidate {
	c := candidate{product: product}

	if rank := profile.CategoryRank(product.ProductCategory); rank > 0 {
		contribution := float64(4-rank) * cfg.WCategory
		c.add("category", fmt.Sprintf("rank %d in %s", rank, product.ProductCategory), contribution)
		c.reasons = append(c.reasons, fmt.Sprintf("Similar category: %s", product.ProductCategory))
	}

	if rank := profile.BrandRank(product.Brand); rank > 0 {
		contribution := float64(4-rank) * cfg.WBrand
		c.add("brand", fmt.Sprintf("rank %d for %s", rank, product.Brand), contribution)
		c.reasons = append(c.reasons, fmt.Sprintf("Preferred brand: %s", product.Brand))
	}

	if profile.HasStoreType(product.StoreType) {
		c.add("store_type", product.StoreType, cfg.WStoreType)
		c.reasons = append(c.reasons, fmt.Sprintf("Same store type: %s", product.StoreType))
	}

	if profile.AvgPrice > 0 && product.SalePrice > 0 {
		distance := math.Abs(product.SalePrice-profile.AvgPrice) / profile.AvgPrice
		if distance <= cfg.PriceMaxDistance {
			contribution := cfg.WPrice * (1 - distance)
			c.add("price", fmt.Sprintf("within %.0f%% of your average spend", distance*100), contribution)
			c.reasons = append(c.reasons, "Similar price range")
		}
	}

	if product.PurchaseCount > cfg.PopularMinPurchases {
		c.add("popularity", fmt.Sprintf("%d purchases", product.PurchaseCount), cfg.WPopular)
		c.reasons = append(c.reasons, "Popular choice")
	}

	return c
}

func (c *candidate) add(signal, detail string, contribution float64) {
	c.score += contribution
	c.signals = append(c.signals, domain.SignalContribution{
		Signal:       signal,
		Detail:       detail,
		Contribution: contribution,
	})
}

// matchPercentage maps a raw score onto a capped display percentage.
func matchPercentage(score float64, cfg Config) int {
	pct := int(math.Round(score * cfg.MatchPercentScale))
	if pct > cfg.MatchPercentCap {
		pct = cfg.MatchPercentCap
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}
