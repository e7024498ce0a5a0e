package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"power-bidding/internal/api/models"
	"power-bidding/internal/bidding"
)

// Optimize handles POST /api/v1/optimize.
func (h *Handler) Optimize(c *gin.Context) {
	var req models.OptimizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := bidding.Optimize(req.Forecast, req.CostModel.ToCostModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
