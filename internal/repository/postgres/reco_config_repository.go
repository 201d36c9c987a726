package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kiranaMarket/business/recommend"
	"kiranaMarket/domain"
)

type RecoConfigRepository struct {
	DB *gorm.DB
}

var _ recommend.ConfigRepository = (*RecoConfigRepository)(nil)

func NewRecoConfigRepository(db *gorm.DB) *RecoConfigRepository {
	return &RecoConfigRepository{DB: db}
}

func (r *RecoConfigRepository) GetConfig(ctx context.Context, slot string) (domain.RecoConfig, bool, error) {
	var cfg domain.RecoConfig

	err := r.DB.WithContext(ctx).
		Where("slot = ?", slot).
		First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecoConfig{}, false, nil
	}
	if err != nil {
		return domain.RecoConfig{}, false, fmt.Errorf("failed to query reco_configs: %w", err)
	}

	return cfg, true, nil
}

func (r *RecoConfigRepository) UpsertConfig(ctx context.Context, cfg domain.RecoConfig) error {
	return r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"w_category",
				"w_brand",
				"w_store_type",
				"w_price",
				"w_popular",
				"min_score",
				"max_reasons",
				"use_business_rerank",
				"w_model",
				"w_profit",
				"w_stock",
				"reward_view",
				"reward_click",
				"reward_atc",
				"reward_order",
				"value_weight",
				"updated_at",
			}),
		}).
		Create(&cfg).Error
}
