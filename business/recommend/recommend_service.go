package recommend

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"

	"kiranaMarket/domain"
	"kiranaMarket/pkg/logger"
)

// mergeContext overlays maps left to right; later keys win.
func mergeContext(maps ...map[string]any) map[string]any {
	out := make(map[string]any)
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// CatalogRepository is the engine's read view of the product catalog.
type CatalogRepository interface {
	FindActiveByProfile(ctx context.Context, q CandidateQuery) ([]domain.Product, error)
	FindActiveByPopularity(ctx context.Context, limit int) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Product, error)
}

// OrdersRepository supplies a user's purchase history with line items.
type OrdersRepository interface {
	FindOrdersForUser(ctx context.Context, userID uint) ([]domain.Order, error)
}

// EventRepository persists feedback events for offline analysis.
type EventRepository interface {
	SaveEvent(ctx context.Context, event *domain.RecommendationEvent) error
}

type RecommendService struct {
	catalogRepo CatalogRepository
	ordersRepo  OrdersRepository
	eventRepo   EventRepository
	configRepo  ConfigRepository
	cache       ResultCache
}

func NewRecommendService(catalog CatalogRepository, orders OrdersRepository, events EventRepository, configs ConfigRepository, cache ResultCache) *RecommendService {
	return &RecommendService{
		catalogRepo: catalog,
		ordersRepo:  orders,
		eventRepo:   events,
		configRepo:  configs,
		cache:       cache,
	}
}

// Recommend produces up to limit product recommendations for the user.
// Collaborator failures degrade to an empty slate rather than an error;
// the only hard failures are a cancelled context and a non-positive
// limit.
func (s *RecommendService) Recommend(ctx context.Context, userID uint, slot string, limit int) ([]domain.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return nil, errors.New("recommendation limit must be positive")
	}

	cfg := s.loadConfig(ctx, slot)
	key := cacheKey(userID, slot, limit)

	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, key)
		if err != nil {
			logger.Warn("recommendation cache get failed", "trace_id", TraceIDFromContext(ctx), err)
		} else if ok {
			cacheHitTotal.WithLabelValues(slot, "hit").Inc()
			return cached, nil
		} else {
			cacheHitTotal.WithLabelValues(slot, "miss").Inc()
		}
	}

	results := s.compute(ctx, userID, slot, limit, cfg)

	if s.cache != nil && len(results) > 0 {
		if err := s.cache.Set(ctx, key, results); err != nil {
			logger.Warn("recommendation cache set failed", "trace_id", TraceIDFromContext(ctx), err)
		}
	}

	for _, r := range results {
		servedTotal.WithLabelValues(slot, r.Source).Inc()
	}
	return results, nil
}

func (s *RecommendService) compute(ctx context.Context, userID uint, slot string, limit int, cfg Config) []domain.RecommendationResult {
	traceID := TraceIDFromContext(ctx)

	profile, ok := s.buildUserProfile(ctx, userID, cfg)
	if !ok {
		return []domain.RecommendationResult{}
	}

	if !profile.HasHistory() {
		return s.fallbackOrEmpty(ctx, slot, limit, nil, cfg)
	}

	products, err := s.loadCandidates(ctx, profile, limit, cfg)
	if err != nil {
		logger.Error("candidate load failed", "trace_id", traceID, "user_id", userID, err)
		return []domain.RecommendationResult{}
	}

	scored := make([]candidate, 0, len(products))
	for _, product := range products {
		scored = append(scored, scoreCandidate(product, profile, cfg))
	}

	ranked := rankCandidates(scored, limit, cfg)
	if len(ranked) == 0 {
		return s.fallbackOrEmpty(ctx, slot, limit, profile.Purchased, cfg)
	}

	if cfg.UseBusinessRerank {
		applyBusinessRerank(ranked, cfg)
	}

	return toResults(ranked, cfg)
}

// buildUserProfile loads orders and the products they reference and
// aggregates them. A store failure is logged and treated as no profile.
func (s *RecommendService) buildUserProfile(ctx context.Context, userID uint, cfg Config) (*UserProfile, bool) {
	traceID := TraceIDFromContext(ctx)

	orders, err := s.ordersRepo.FindOrdersForUser(ctx, userID)
	if err != nil {
		logger.Error("order history load failed", "trace_id", traceID, "user_id", userID, err)
		return nil, false
	}

	idSet := make(map[uint64]struct{})
	for _, order := range orders {
		for _, item := range order.Items {
			idSet[item.ProductID] = struct{}{}
		}
	}

	products := make(map[uint64]domain.Product, len(idSet))
	if len(idSet) > 0 {
		ids := make([]uint64, 0, len(idSet))
		for id := range idSet {
			ids = append(ids, id)
		}

		rows, err := s.catalogRepo.FindByIDs(ctx, ids)
		if err != nil {
			logger.Error("profile product lookup failed", "trace_id", traceID, "user_id", userID, err)
			return nil, false
		}
		for _, row := range rows {
			products[row.ID] = row
		}
	}

	return buildProfile(orders, products, cfg), true
}

func (s *RecommendService) fallbackOrEmpty(ctx context.Context, slot string, limit int, exclude map[uint64]struct{}, cfg Config) []domain.RecommendationResult {
	results, err := s.popularFallback(ctx, limit, exclude, cfg)
	if err != nil {
		logger.Error("popularity fallback failed", "trace_id", TraceIDFromContext(ctx), "slot", slot, err)
		return []domain.RecommendationResult{}
	}
	return results
}

// LogFeedback records a user interaction with a recommended product and
// assigns it the configured reward weight.
func (s *RecommendService) LogFeedback(ctx context.Context, event *domain.RecommendationEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := s.loadConfig(ctx, event.Slot)
	event.Reward = cfg.RewardForEvent(event.EventType, event.Value)

	now := event.CreatedAt
	if now.IsZero() {
		now = time.Now()
		event.CreatedAt = now
	}
	base := map[string]any{
		"dow":        int(now.Weekday()), // 0=Sunday
		"event_time": now.Format(time.RFC3339),
	}
	if tid := TraceIDFromContext(ctx); tid != "" {
		base["trace_id"] = tid
	}
	event.Context = datatypes.JSONMap(mergeContext(base, event.Context))

	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		logger.Error("feedback event save failed", "trace_id", TraceIDFromContext(ctx), "user_id", event.UserID, err)
		return err
	}

	feedbackTotal.WithLabelValues(event.Slot, event.EventType).Inc()
	return nil
}
