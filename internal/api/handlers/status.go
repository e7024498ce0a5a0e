package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"power-bidding/internal/api/models"
)

// Status handles GET /api/v1/status.
// An empty store is "no_data", not an error: queries before any load are
// answered with an empty summary.
func (h *Handler) Status(c *gin.Context) {
	summary := h.store.Status()
	status := "ok"
	if summary.Count == 0 {
		status = "no_data"
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: status, Data: summary})
}
