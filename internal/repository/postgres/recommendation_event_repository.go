package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"kiranaMarket/business/recommend"
	"kiranaMarket/domain"
)

type RecommendationEventRepository struct {
	DB *gorm.DB
}

var _ recommend.EventRepository = (*RecommendationEventRepository)(nil)

func NewRecommendationEventRepository(db *gorm.DB) *RecommendationEventRepository {
	return &RecommendationEventRepository{DB: db}
}

func (r *RecommendationEventRepository) SaveEvent(ctx context.Context, event *domain.RecommendationEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to save recommendation event: %w", err)
	}

	return nil
}

// FindEventsForUser returns recent feedback rows, newest first. Used by
// the admin debug surface.
func (r *RecommendationEventRepository) FindEventsForUser(ctx context.Context, userID uint, limit int) ([]domain.RecommendationEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.RecommendationEvent
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find recommendation events: %w", err)
	}

	return events, nil
}
