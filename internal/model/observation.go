package model

import "time"

// Observation is one historical market sample at a fixed interval.
// Price is the market-clearing price in $/MWh; load, demand and supply are
// in MW and default to zero when the source does not carry them.
type Observation struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	Load      float64   `json:"load"`
	Demand    float64   `json:"demand"`
	Supply    float64   `json:"supply"`
}

// ForecastPoint is one predicted instant produced by the forecast engine.
// Bounds satisfy ConfidenceLower <= PredictedPrice <= ConfidenceUpper,
// except where clamping at zero forces ConfidenceLower to 0.
type ForecastPoint struct {
	Timestamp       time.Time `json:"timestamp"`
	PredictedPrice  float64   `json:"predicted_price"`
	ConfidenceLower float64   `json:"confidence_lower"`
	ConfidenceUpper float64   `json:"confidence_upper"`
	ConfidenceLevel float64   `json:"confidence_level"`
}
