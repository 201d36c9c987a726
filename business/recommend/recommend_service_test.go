package recommend

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"kiranaMarket/domain"
)

type fakeCatalog struct {
	byProfile    []domain.Product
	byPopularity []domain.Product
	byIDs        map[uint64]domain.Product
	lastQuery    CandidateQuery
	err          error
}

func (f *fakeCatalog) FindActiveByProfile(_ context.Context, q CandidateQuery) ([]domain.Product, error) {
	f.lastQuery = q
	return f.byProfile, f.err
}

func (f *fakeCatalog) FindActiveByPopularity(_ context.Context, limit int) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.byPopularity) > limit {
		return f.byPopularity[:limit], nil
	}
	return f.byPopularity, nil
}

func (f *fakeCatalog) FindByIDs(_ context.Context, ids []uint64) ([]domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := f.byIDs[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeOrders struct {
	orders []domain.Order
	err    error
}

func (f *fakeOrders) FindOrdersForUser(context.Context, uint) ([]domain.Order, error) {
	return f.orders, f.err
}

type fakeEvents struct {
	saved []*domain.RecommendationEvent
	err   error
}

func (f *fakeEvents) SaveEvent(_ context.Context, e *domain.RecommendationEvent) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, e)
	return nil
}

type fakeCache struct {
	store map[string][]domain.RecommendationResult
	sets  int
}

func (f *fakeCache) Get(_ context.Context, key string) ([]domain.RecommendationResult, bool, error) {
	v, ok := f.store[key]
	return v, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, results []domain.RecommendationResult) error {
	if f.store == nil {
		f.store = map[string][]domain.RecommendationResult{}
	}
	f.store[key] = results
	f.sets++
	return nil
}

func serviceWithHistory() (*RecommendService, *fakeCatalog) {
	catalog := &fakeCatalog{
		byIDs: map[uint64]domain.Product{
			1: {ID: 1, ProductCategory: "Grocery", Brand: "Aashirvaad", StoreType: "Kiosk", SalePrice: 400},
		},
		byProfile: []domain.Product{
			{ID: 10, ProductCategory: "Grocery", Brand: "Aashirvaad", StoreType: "Kiosk", SalePrice: 420, PurchaseCount: 50},
			{ID: 11, ProductCategory: "Grocery", SalePrice: 390, PurchaseCount: 5},
			{ID: 12, ProductCategory: "Electronics", SalePrice: 9000},
		},
		byPopularity: []domain.Product{
			{ID: 20, ProductName: "Staple A", PurchaseCount: 900},
			{ID: 21, ProductName: "Staple B", PurchaseCount: 800},
		},
	}
	orders := &fakeOrders{orders: []domain.Order{
		{ID: 1, UserID: 1, Items: []domain.OrderItem{{ProductID: 1, Quantity: 2}}},
	}}
	svc := NewRecommendService(catalog, orders, &fakeEvents{}, nil, nil)
	return svc, catalog
}

func TestRecommendHistoryPath(t *testing.T) {
	svc, catalog := serviceWithHistory()

	results, err := svc.Recommend(context.Background(), 1, "homepage", 5)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, uint64(10), results[0].ProductID)
	assert.Equal(t, domain.RecommendationSourceHistory, results[0].Source)
	assert.LessOrEqual(t, len(results), 5)

	// purchased product must be excluded in the candidate query
	assert.Equal(t, []uint64{1}, catalog.lastQuery.ExcludeIDs)
	// over-fetch by the multiplier
	assert.Equal(t, 10, catalog.lastQuery.Limit)
}

func TestRecommendFallbackWithoutHistory(t *testing.T) {
	catalog := &fakeCatalog{
		byPopularity: []domain.Product{
			{ID: 20, PurchaseCount: 900},
			{ID: 21, PurchaseCount: 800},
		},
	}
	svc := NewRecommendService(catalog, &fakeOrders{}, &fakeEvents{}, nil, nil)

	results, err := svc.Recommend(context.Background(), 2, "homepage", 5)

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, domain.RecommendationSourcePopular, r.Source)
		assert.InDelta(t, 0.8, r.Score, 1e-9)
		assert.Equal(t, 75, r.MatchPercentage)
		assert.Equal(t, "Popular choice", r.Reason)
	}
}

func TestRecommendFallbackWhenNothingSurvivesScoring(t *testing.T) {
	svc, catalog := serviceWithHistory()
	catalog.byProfile = []domain.Product{
		{ID: 30, ProductCategory: "Electronics", SalePrice: 9000},
	}

	results, err := svc.Recommend(context.Background(), 1, "homepage", 5)

	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, domain.RecommendationSourcePopular, results[0].Source)
}

func TestRecommendFallbackExcludesPurchased(t *testing.T) {
	svc, catalog := serviceWithHistory()
	catalog.byProfile = nil
	catalog.byPopularity = []domain.Product{
		{ID: 1, PurchaseCount: 950}, // already purchased
		{ID: 20, PurchaseCount: 900},
		{ID: 21, PurchaseCount: 800},
	}

	results, err := svc.Recommend(context.Background(), 1, "homepage", 5)

	require.NoError(t, err)
	require.Len(t, results, 2)
	for _, r := range results {
		assert.NotEqual(t, uint64(1), r.ProductID)
	}
}

func TestRecommendInvalidLimit(t *testing.T) {
	svc, _ := serviceWithHistory()

	_, err := svc.Recommend(context.Background(), 1, "homepage", 0)
	assert.Error(t, err)

	_, err = svc.Recommend(context.Background(), 1, "homepage", -3)
	assert.Error(t, err)
}

func TestRecommendCancelledContext(t *testing.T) {
	svc, _ := serviceWithHistory()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Recommend(ctx, 1, "homepage", 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRecommendStoreFailureDegradesToEmpty(t *testing.T) {
	orders := &fakeOrders{err: errors.New("connection refused")}
	svc := NewRecommendService(&fakeCatalog{}, orders, &fakeEvents{}, nil, nil)

	results, err := svc.Recommend(context.Background(), 1, "homepage", 5)

	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRecommendIdempotent(t *testing.T) {
	svc, _ := serviceWithHistory()

	first, err := svc.Recommend(context.Background(), 1, "homepage", 5)
	require.NoError(t, err)
	second, err := svc.Recommend(context.Background(), 1, "homepage", 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRecommendUsesCache(t *testing.T) {
	svc, catalog := serviceWithHistory()
	cache := &fakeCache{}
	svc.cache = cache

	first, err := svc.Recommend(context.Background(), 1, "homepage", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.sets)

	// break the catalog; a cache hit must not touch it
	catalog.err = errors.New("down")
	second, err := svc.Recommend(context.Background(), 1, "homepage", 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.sets)
}

func TestLogFeedbackAssignsReward(t *testing.T) {
	events := &fakeEvents{}
	svc := NewRecommendService(&fakeCatalog{}, &fakeOrders{}, events, nil, nil)

	event := &domain.RecommendationEvent{UserID: 1, Slot: "homepage", ProductID: 10, EventType: "order", Value: 2500}
	err := svc.LogFeedback(context.Background(), event)

	require.NoError(t, err)
	require.Len(t, events.saved, 1)
	assert.InDelta(t, 5.25, events.saved[0].Reward, 1e-9)
}

func TestLogFeedbackMergesContext(t *testing.T) {
	events := &fakeEvents{}
	svc := NewRecommendService(&fakeCatalog{}, &fakeOrders{}, events, nil, nil)
	ctx := context.WithValue(context.Background(), TraceIDKey, "trace-42")

	event := &domain.RecommendationEvent{
		UserID:    1,
		Slot:      "homepage",
		ProductID: 10,
		EventType: "click",
		Context:   datatypes.JSONMap{"platform": "android"},
	}
	require.NoError(t, svc.LogFeedback(ctx, event))

	require.Len(t, events.saved, 1)
	saved := events.saved[0].Context
	assert.Equal(t, "android", saved["platform"])
	assert.Equal(t, "trace-42", saved["trace_id"])
	assert.Contains(t, saved, "event_time")
	assert.Contains(t, saved, "dow")
	assert.False(t, events.saved[0].CreatedAt.IsZero())
}

func TestLogFeedbackUnknownEventZeroReward(t *testing.T) {
	events := &fakeEvents{}
	svc := NewRecommendService(&fakeCatalog{}, &fakeOrders{}, events, nil, nil)

	event := &domain.RecommendationEvent{UserID: 1, Slot: "homepage", EventType: "hover"}
	require.NoError(t, svc.LogFeedback(context.Background(), event))
	assert.Zero(t, event.Reward)
}

func TestDebugRecommendExposesSignals(t *testing.T) {
	svc, _ := serviceWithHistory()

	debug, err := svc.DebugRecommend(context.Background(), 1, "homepage", 5)

	require.NoError(t, err)
	require.NotEmpty(t, debug)
	assert.NotEmpty(t, debug[0].Signals)
	assert.Equal(t, domain.RecommendationSourceHistory, debug[0].Source)
}
