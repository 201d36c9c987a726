package domain

import "time"

// RecoConfig is a per-slot override row for the recommendation engine
// weights. Missing slots fall back to the in-code defaults.
type RecoConfig struct {
	Slot string `json:"slot" gorm:"column:slot;primaryKey"`

	WCategory  float64 `json:"w_category" gorm:"column:w_category"`
	WBrand     float64 `json:"w_brand" gorm:"column:w_brand"`
	WStoreType float64 `json:"w_store_type" gorm:"column:w_store_type"`
	WPrice     float64 `json:"w_price" gorm:"column:w_price"`
	WPopular   float64 `json:"w_popular" gorm:"column:w_popular"`

	MinScore   float64 `json:"min_score" gorm:"column:min_score"`
	MaxReasons int     `json:"max_reasons" gorm:"column:max_reasons"`

	// business re-rank (serving-time profit/stock blend)
	UseBusinessRerank bool    `json:"use_business_rerank" gorm:"column:use_business_rerank"`
	WModel            float64 `json:"w_model" gorm:"column:w_model"`
	WProfit           float64 `json:"w_profit" gorm:"column:w_profit"`
	WStock            float64 `json:"w_stock" gorm:"column:w_stock"`

	// per-event base rewards for feedback logging
	RewardView  float64 `json:"reward_view" gorm:"column:reward_view"`
	RewardClick float64 `json:"reward_click" gorm:"column:reward_click"`
	RewardATC   float64 `json:"reward_atc" gorm:"column:reward_atc"`
	RewardOrder float64 `json:"reward_order" gorm:"column:reward_order"`
	ValueWeight float64 `json:"value_weight" gorm:"column:value_weight"`

	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (RecoConfig) TableName() string {
	return "reco_configs"
}
