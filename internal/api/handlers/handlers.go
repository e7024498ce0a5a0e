package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"power-bidding/internal/api/models"
	"power-bidding/internal/config"
	"power-bidding/internal/model"
	"power-bidding/internal/pipeline"
	"power-bidding/internal/store"
)

// Handler serves the four pipeline operations over the observation store.
type Handler struct {
	store    *store.Store
	pipeline *pipeline.Pipeline
	cfg      *config.Config
}

func New(st *store.Store, pl *pipeline.Pipeline, cfg *config.Config) *Handler {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Handler{store: st, pipeline: pl, cfg: cfg}
}

// respondError maps core failures to status codes so callers can tell
// client errors from internal ones.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
	case errors.Is(err, model.ErrDataUnavailable):
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "DATA_UNAVAILABLE", Message: err.Error()},
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: err.Error()},
		})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
	})
}
