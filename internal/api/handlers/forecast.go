package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"power-bidding/internal/api/models"
	"power-bidding/internal/forecast"
)

// Forecast handles POST /api/v1/forecast.
func (h *Handler) Forecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	start := time.Now()
	if req.Start != "" {
		t, err := time.Parse(time.RFC3339, req.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_REQUEST",
					Message: "start must be RFC3339: " + err.Error(),
				},
			})
			return
		}
		start = t
	}

	result, err := h.pipeline.RunForecast(forecast.Request{
		Start:           start,
		Horizon:         req.Horizon,
		ConfidenceLevel: req.ConfidenceLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
