package recommend

import "sort"

// applyBusinessRerank blends the relevance score with profit margin and
// stock pressure, then re-sorts. Margin is min-max normalized across the
// configured band; low-stock products take the full stock penalty.
// Disabled by default; the blended score only changes ordering, the
// displayed match percentage is computed before reranking.
func applyBusinessRerank(candidates []candidate, cfg Config) {
	if len(candidates) == 0 {
		return
	}

	marginSpan := cfg.MarginMax - cfg.MarginMin

	type reranked struct {
		cand    candidate
		blended float64
	}
	rows := make([]reranked, len(candidates))

	for i, c := range candidates {
		margin := c.product.ProfitMargin
		if margin < cfg.MarginMin {
			margin = cfg.MarginMin
		}
		if margin > cfg.MarginMax {
			margin = cfg.MarginMax
		}

		marginScore := 0.0
		if marginSpan > 0 {
			marginScore = (margin - cfg.MarginMin) / marginSpan
		}

		stockPenalty := 0.0
		if c.product.Stock < cfg.LowStockThreshold {
			stockPenalty = 1.0
		}

		rows[i] = reranked{
			cand:    c,
			blended: cfg.WModel*c.score + cfg.WProfit*marginScore - cfg.WStock*stockPenalty,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].blended > rows[j].blended
	})

	for i, row := range rows {
		candidates[i] = row.cand
	}
}
