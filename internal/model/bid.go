package model

import "time"

// CostModel carries the per-unit cost bases used as bidding thresholds.
// UpwardCost and DownwardCost are accepted and echoed back but do not enter
// the pricing formula; only GenerationCost drives the decision rule.
type CostModel struct {
	GenerationCost float64 `json:"generation_cost"`
	UpwardCost     float64 `json:"upward_cost"`
	DownwardCost   float64 `json:"downward_cost"`
}

// BidDecision is one period's bidding action derived from a forecast point.
type BidDecision struct {
	TimePeriod     time.Time `json:"time_period"`
	BidPrice       float64   `json:"bid_price"`
	BidCapacity    float64   `json:"bid_capacity"`
	ExpectedProfit float64   `json:"expected_profit"`
	PredictedPrice float64   `json:"predicted_price"`
}
