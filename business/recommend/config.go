package recommend

import (
	"context"

	"kiranaMarket/domain"
)

// Config holds every tunable of the scoring pipeline. The weight values
// are empirical; higher weight means higher signal priority, nothing more.
type Config struct {
	// per-signal weights
	WCategory  float64
	WBrand     float64
	WStoreType float64
	WPrice     float64
	WPopular   float64

	// ranking
	MinScore   float64
	MaxReasons int

	// profile derivation
	TopCategories int
	TopBrands     int

	// candidate generation
	CandidateMultiplier int
	PriceBandLow        float64
	PriceBandHigh       float64

	// price proximity signal cutoff (relative distance)
	PriceMaxDistance float64

	// popularity signal cutoff
	PopularMinPurchases int64

	// match percentage display mapping
	MatchPercentScale float64
	MatchPercentCap   int

	// fallback path fixed output
	FallbackScore        float64
	FallbackMatchPercent int

	// business re-rank (profit/stock blend on top of engine ranking)
	UseBusinessRerank bool
	WModel            float64
	WProfit           float64
	WStock            float64
	LowStockThreshold float64
	MarginMin         float64
	MarginMax         float64

	// feedback rewards per event type
	RewardView  float64
	RewardClick float64
	RewardATC   float64
	RewardOrder float64
	ValueWeight float64
}

const (
	defaultWCategory  = 0.4
	defaultWBrand     = 0.3
	defaultWStoreType = 0.2
	defaultWPrice     = 0.1
	defaultWPopular   = 0.1

	defaultMinScore   = 0.1
	defaultMaxReasons = 2

	defaultTopCategories = 3
	defaultTopBrands     = 3

	defaultCandidateMultiplier = 2
	defaultPriceBandLow        = 0.7
	defaultPriceBandHigh       = 1.5
	defaultPriceMaxDistance    = 0.5

	defaultPopularMinPurchases = 10

	defaultMatchPercentScale = 20.0
	defaultMatchPercentCap   = 95

	defaultFallbackScore        = 0.8
	defaultFallbackMatchPercent = 75

	defaultWModel            = 0.5
	defaultWProfit           = 0.3
	defaultWStock            = 0.2
	defaultLowStockThreshold = 50
	defaultMarginMin         = 0.1
	defaultMarginMax         = 0.4

	defaultRewardView  = 0.0
	defaultRewardClick = 1.0
	defaultRewardATC   = 3.0
	defaultRewardOrder = 5.0
	defaultValueWeight = 0.0001
)

func DefaultConfig() Config {
	return Config{
		WCategory:  defaultWCategory,
		WBrand:     defaultWBrand,
		WStoreType: defaultWStoreType,
		WPrice:     defaultWPrice,
		WPopular:   defaultWPopular,

		MinScore:   defaultMinScore,
		MaxReasons: defaultMaxReasons,

		TopCategories: defaultTopCategories,
		TopBrands:     defaultTopBrands,

		CandidateMultiplier: defaultCandidateMultiplier,
		PriceBandLow:        defaultPriceBandLow,
		PriceBandHigh:       defaultPriceBandHigh,
		PriceMaxDistance:    defaultPriceMaxDistance,

		PopularMinPurchases: defaultPopularMinPurchases,

		MatchPercentScale: defaultMatchPercentScale,
		MatchPercentCap:   defaultMatchPercentCap,

		FallbackScore:        defaultFallbackScore,
		FallbackMatchPercent: defaultFallbackMatchPercent,

		UseBusinessRerank: false,
		WModel:            defaultWModel,
		WProfit:           defaultWProfit,
		WStock:            defaultWStock,
		LowStockThreshold: defaultLowStockThreshold,
		MarginMin:         defaultMarginMin,
		MarginMax:         defaultMarginMax,

		RewardView:  defaultRewardView,
		RewardClick: defaultRewardClick,
		RewardATC:   defaultRewardATC,
		RewardOrder: defaultRewardOrder,
		ValueWeight: defaultValueWeight,
	}
}

// read per-slot engine config from DB.
type ConfigRepository interface {
	GetConfig(ctx context.Context, slot string) (domain.RecoConfig, bool, error)
	UpsertConfig(ctx context.Context, cfg domain.RecoConfig) error
}
