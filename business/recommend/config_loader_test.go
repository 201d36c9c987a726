package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"kiranaMarket/domain"
)

type fakeConfigRepo struct {
	cfg domain.RecoConfig
	ok  bool
	err error
}

func (f *fakeConfigRepo) GetConfig(context.Context, string) (domain.RecoConfig, bool, error) {
	return f.cfg, f.ok, f.err
}

func (f *fakeConfigRepo) UpsertConfig(context.Context, domain.RecoConfig) error {
	return nil
}

func TestLoadConfigDefaultsWithoutRepo(t *testing.T) {
	svc := NewRecommendService(&fakeCatalog{}, &fakeOrders{}, &fakeEvents{}, nil, nil)

	cfg := svc.loadConfig(context.Background(), "homepage")

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigDefaultsOnRepoError(t *testing.T) {
	repo := &fakeConfigRepo{err: errors.New("db down")}
	svc := NewRecommendService(&fakeCatalog{}, &fakeOrders{}, &fakeEvents{}, repo, nil)

	cfg := svc.loadConfig(context.Background(), "homepage")

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlaysSlotRow(t *testing.T) {
	repo := &fakeConfigRepo{
		ok: true,
		cfg: domain.RecoConfig{
			Slot:      "homepage",
			WCategory: 0.6,
			WBrand:    0.2,
			MinScore:  0.25,
		},
	}
	svc := NewRecommendService(&fakeCatalog{}, &fakeOrders{}, &fakeEvents{}, repo, nil)

	cfg := svc.loadConfig(context.Background(), "homepage")

	assert.InDelta(t, 0.6, cfg.WCategory, 1e-9)
	assert.InDelta(t, 0.2, cfg.WBrand, 1e-9)
	assert.InDelta(t, 0.25, cfg.MinScore, 1e-9)
	// structural fields not set in the row keep defaults
	assert.Equal(t, DefaultConfig().MaxReasons, cfg.MaxReasons)
	assert.Equal(t, DefaultConfig().CandidateMultiplier, cfg.CandidateMultiplier)
}

func TestRewardForEventTypes(t *testing.T) {
	cfg := DefaultConfig()

	assert.Zero(t, cfg.RewardForEvent("view", 0))
	assert.InDelta(t, 1.0, cfg.RewardForEvent("click", 0), 1e-9)
	assert.InDelta(t, 3.0, cfg.RewardForEvent("atc", 0), 1e-9)
	assert.InDelta(t, 5.0, cfg.RewardForEvent("order", 0), 1e-9)
	assert.InDelta(t, 5.1, cfg.RewardForEvent("order", 1000), 1e-9)
	assert.Zero(t, cfg.RewardForEvent("hover", 10))
}
