package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RecommendationSourceHistory = "history"
	RecommendationSourcePopular = "popular"
)

// RecommendationResult is the engine's externally visible output. It is
// never persisted by the engine itself; feedback events reference it.
type RecommendationResult struct {
	ProductID       uint64  `json:"product_id"`
	Score           float64 `json:"score"`
	MatchPercentage int     `json:"match_percentage"`
	Reason          string  `json:"reason"`
	Source          string  `json:"source"`
}

// RecommendationEvent is a feedback record (view/click/atc/order) for a
// served recommendation, kept for later reward analysis.
type RecommendationEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:user_id;not null" json:"user_id"`
	Slot      string    `gorm:"column:slot;not null" json:"slot"`
	ProductID uint64    `gorm:"column:product_id;not null" json:"product_id"`
	EventType string    `gorm:"column:event_type;not null" json:"event_type"`
	Reward    float64   `gorm:"column:reward" json:"reward"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Value   float64           `gorm:"-" json:"value"` // optional GMV/margin
	Context datatypes.JSONMap `gorm:"column:context;type:jsonb" json:"context"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}

// SignalContribution is one scoring signal's share of a candidate's score,
// exposed by the debug endpoint only.
type SignalContribution struct {
	Signal       string  `json:"signal"`
	Detail       string  `json:"detail"`
	Contribution float64 `json:"contribution"`
}

type DebugRecommendation struct {
	ProductID       uint64               `json:"product_id"`
	ProductName     string               `json:"product_name"`
	Score           float64              `json:"score"`
	MatchPercentage int                  `json:"match_percentage"`
	Signals         []SignalContribution `json:"signals"`
	Reasons         []string             `json:"reasons"`
	Source          string               `json:"source"`
}
