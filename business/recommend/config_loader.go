package recommend

import "context"

// loadConfig reads the per-slot override from the repo, falling back to
// defaultCfg when the repo is absent, errors, or has no row for the slot.
func (s *RecommendService) loadConfig(ctx context.Context, slot string) Config {
	if s.configRepo == nil {
		return DefaultConfig()
	}

	dbCfg, ok, err := s.configRepo.GetConfig(ctx, slot)
	if err != nil || !ok {
		return DefaultConfig()
	}

	// start from defaults to keep sane fallbacks for any missing fields
	cfg := DefaultConfig()

	cfg.WCategory = dbCfg.WCategory
	cfg.WBrand = dbCfg.WBrand
	cfg.WStoreType = dbCfg.WStoreType
	cfg.WPrice = dbCfg.WPrice
	cfg.WPopular = dbCfg.WPopular

	if dbCfg.MinScore > 0 {
		cfg.MinScore = dbCfg.MinScore
	}
	if dbCfg.MaxReasons > 0 {
		cfg.MaxReasons = dbCfg.MaxReasons
	}

	cfg.UseBusinessRerank = dbCfg.UseBusinessRerank
	if dbCfg.WModel > 0 {
		cfg.WModel = dbCfg.WModel
	}
	if dbCfg.WProfit > 0 {
		cfg.WProfit = dbCfg.WProfit
	}
	if dbCfg.WStock > 0 {
		cfg.WStock = dbCfg.WStock
	}

	cfg.RewardView = dbCfg.RewardView
	cfg.RewardClick = dbCfg.RewardClick
	cfg.RewardATC = dbCfg.RewardATC
	cfg.RewardOrder = dbCfg.RewardOrder
	if dbCfg.ValueWeight > 0 {
		cfg.ValueWeight = dbCfg.ValueWeight
	}

	return cfg
}
