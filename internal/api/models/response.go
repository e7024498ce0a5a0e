package models

import (
	"power-bidding/internal/model"
	"power-bidding/internal/store"
)

// ErrorResponse is the error envelope for all endpoints.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// StatusResponse is the body for GET /api/v1/status.
type StatusResponse struct {
	Status string        `json:"status"`
	Data   store.Summary `json:"data"`
}

// PriceStats summarizes prices over a historical selection.
type PriceStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// HistoricalResponse is the body for GET /api/v1/historical.
type HistoricalResponse struct {
	Range       string                `json:"range"`
	Count       int                   `json:"count"`
	Records     []model.Observation   `json:"records"`
	Stats       PriceStats            `json:"stats"`
	Predictions []model.ForecastPoint `json:"predictions,omitempty"`
}
