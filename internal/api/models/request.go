package models

import "power-bidding/internal/model"

// ForecastRequest is the body for POST /api/v1/forecast.
type ForecastRequest struct {
	// Start is RFC3339; empty means "now".
	Start           string  `json:"start,omitempty"`
	Horizon         int     `json:"horizon" binding:"required"`
	ConfidenceLevel float64 `json:"confidence_level" binding:"required"`
}

// OptimizeRequest is the body for POST /api/v1/optimize.
type OptimizeRequest struct {
	Forecast  []model.ForecastPoint `json:"forecast" binding:"required"`
	CostModel *CostModelPayload     `json:"cost_model" binding:"required"`
}

// CostModelPayload mirrors model.CostModel on the wire. Upward and downward
// costs are optional pass-through metadata.
type CostModelPayload struct {
	GenerationCost float64 `json:"generation_cost" binding:"required"`
	UpwardCost     float64 `json:"upward_cost,omitempty"`
	DownwardCost   float64 `json:"downward_cost,omitempty"`
}

func (p *CostModelPayload) ToCostModel() model.CostModel {
	return model.CostModel{
		GenerationCost: p.GenerationCost,
		UpwardCost:     p.UpwardCost,
		DownwardCost:   p.DownwardCost,
	}
}
