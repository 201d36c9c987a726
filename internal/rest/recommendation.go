package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"kiranaMarket/domain"
	"kiranaMarket/pkg/metrics"
)

type (
	RecommendationHandler struct {
		validate   *validator.Validate
		recService RecommendationService
	}

	RecommendationService interface {
		Recommend(ctx context.Context, userID uint, slot string, limit int) ([]domain.RecommendationResult, error)
		DebugRecommend(ctx context.Context, userID uint, slot string, limit int) ([]domain.DebugRecommendation, error)
		LogFeedback(ctx context.Context, event *domain.RecommendationEvent) error
	}

	RecommendQuery struct {
		Slot string `query:"slot" validate:"required"`
		N    int    `query:"n"`
	}

	FeedbackRequest struct {
		Slot      string         `json:"slot" validate:"required"`
		ProductID uint64         `json:"product_id" validate:"required"`
		EventType string         `json:"event_type" validate:"required,oneof=view click atc order"`
		Value     float64        `json:"value" validate:"gte=0"`
		Context   map[string]any `json:"context"`
	}
)

func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		validate:   validator.New(),
		recService: svc,
	}
}

// GET /api/v1/recommendations?slot=homepage&n=10
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if q.N <= 0 {
		q.N = 10
	}

	start := time.Now()
	recs, err := h.recService.Recommend(c.Request().Context(), userID, q.Slot, q.N)
	metrics.RecommendLatency.WithLabelValues(q.Slot).Observe(time.Since(start).Seconds())
	metrics.RecommendRequests.WithLabelValues(q.Slot).Inc()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// POST /api/v1/recommendations/feedback
func (h *RecommendationHandler) Feedback(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var req FeedbackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	event := &domain.RecommendationEvent{
		UserID:    userID,
		Slot:      req.Slot,
		ProductID: req.ProductID,
		EventType: req.EventType,
		Value:     req.Value,
		Context:   datatypes.JSONMap(req.Context),
		CreatedAt: time.Now(),
	}

	if err := h.recService.LogFeedback(c.Request().Context(), event); err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated("feedback recorded"))
}

// GET /api/v1/recommendations/debug?slot=homepage&n=10
func (h *RecommendationHandler) DebugRecommend(c echo.Context) error {
	uidVal := c.Get("user_id")
	userID, ok := uidVal.(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if q.N <= 0 {
		q.N = 10
	}

	recs, err := h.recService.DebugRecommend(c.Request().Context(), userID, q.Slot, q.N)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
