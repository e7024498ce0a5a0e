package handlers

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"power-bidding/internal/api/models"
	"power-bidding/internal/forecast"
	"power-bidding/internal/model"
)

// maxHistoricalRecords caps the historical response at the most recent
// entries when the filtered set exceeds it.
const maxHistoricalRecords = 1000

// predictionPoints is the horizon appended when predictions are requested.
const predictionPoints = 24

// Historical handles GET /api/v1/historical.
// Query params: range=1d|7d|30d|all (default 1d), predictions=true|false.
func (h *Handler) Historical(c *gin.Context) {
	rangeSel := c.DefaultQuery("range", "1d")

	var records []model.Observation
	now := time.Now()
	switch rangeSel {
	case "1d":
		records = h.store.FilterRange(now.AddDate(0, 0, -1), now)
	case "7d":
		records = h.store.FilterRange(now.AddDate(0, 0, -7), now)
	case "30d":
		records = h.store.FilterRange(now.AddDate(0, 0, -30), now)
	case "all":
		records = h.store.All()
	default:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: "range must be one of 1d, 7d, 30d, all",
			},
		})
		return
	}

	if len(records) > maxHistoricalRecords {
		records = records[len(records)-maxHistoricalRecords:]
	}

	resp := models.HistoricalResponse{
		Range:   rangeSel,
		Count:   len(records),
		Records: records,
		Stats:   priceStats(records),
	}

	if c.Query("predictions") == "true" && len(records) > 0 {
		// Best effort: forecast failures do not fail the historical query.
		last := records[len(records)-1].Timestamp
		fc, err := h.pipeline.RunForecast(forecast.Request{
			Start:           last.Add(forecast.Step),
			Horizon:         predictionPoints,
			ConfidenceLevel: h.cfg.Forecast.DefaultConfidence,
		})
		if err == nil {
			resp.Predictions = fc.Points
		}
	}

	c.JSON(http.StatusOK, resp)
}

func priceStats(records []model.Observation) models.PriceStats {
	if len(records) == 0 {
		return models.PriceStats{}
	}
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	sum := 0.0
	for _, r := range records {
		if r.Price < minv {
			minv = r.Price
		}
		if r.Price > maxv {
			maxv = r.Price
		}
		sum += r.Price
	}
	return models.PriceStats{
		Min:  minv,
		Max:  maxv,
		Mean: sum / float64(len(records)),
	}
}
