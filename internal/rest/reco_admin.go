package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"kiranaMarket/business/recommend"
	"kiranaMarket/domain"
)

type RecoAdminHandler struct {
	cfgRepo recommend.ConfigRepository
}

func NewRecoAdminHandler(cfgRepo recommend.ConfigRepository) *RecoAdminHandler {
	return &RecoAdminHandler{
		cfgRepo: cfgRepo,
	}
}

// GET /api/v1/admin/reco/config?slot=homepage
func (h *RecoAdminHandler) GetConfig(c echo.Context) error {
	ctx := c.Request().Context()
	slot := c.QueryParam("slot")

	if slot == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "slot is required",
		})
	}

	cfg, ok, err := h.cfgRepo.GetConfig(ctx, slot)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "config not found",
		})
	}

	return c.JSON(http.StatusOK, cfg)
}

// PUT /api/v1/admin/reco/config
// body: RecoConfig JSON
func (h *RecoAdminHandler) UpsertConfig(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.RecoConfig
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Slot == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "slot is required",
		})
	}

	body.UpdatedAt = time.Now()

	if err := h.cfgRepo.UpsertConfig(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
