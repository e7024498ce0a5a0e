package bidding

import (
	"fmt"

	"power-bidding/internal/model"
)

// Capacity tiers in MW. Each period is decided independently: undercut with
// surge capacity when the predicted price clears the cost threshold
// comfortably, protect margin with reduced capacity in low-price periods,
// otherwise offer base capacity at the predicted price.
const (
	baseCapacityMW    = 100.0
	surgeCapacityMW   = 150.0
	reducedCapacityMW = 50.0
)

// Strategy labels.
const (
	StrategyAggressive   = "AGGRESSIVE"
	StrategyConservative = "CONSERVATIVE"
)

// Risk levels: how aggressively mean bid price exceeds mean predicted price.
const (
	RiskHigh   = "HIGH"
	RiskMedium = "MEDIUM"
	RiskLow    = "LOW"
)

// Result is the full output of one optimization run.
type Result struct {
	Decisions   []model.BidDecision `json:"decisions"`
	TotalProfit float64             `json:"total_profit"`
	AvgCapacity float64             `json:"avg_capacity"`
	Strategy    string              `json:"strategy"`
	RiskLevel   string              `json:"risk_level"`
	CostModel   model.CostModel     `json:"cost_model"`
}

// Optimize converts a forecast sequence into a bidding schedule under the
// given cost model. UpwardCost and DownwardCost are echoed in the result but
// do not influence pricing.
func Optimize(points []model.ForecastPoint, cost model.CostModel) (*Result, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("empty forecast sequence: %w", model.ErrInvalidRequest)
	}

	decisions := make([]model.BidDecision, len(points))
	totalProfit := 0.0
	capacitySum := 0.0
	bidSum := 0.0
	predictedSum := 0.0

	for i, p := range points {
		d := decide(p, cost.GenerationCost)
		decisions[i] = d

		totalProfit += d.ExpectedProfit
		capacitySum += d.BidCapacity
		bidSum += d.BidPrice
		predictedSum += p.PredictedPrice
	}

	n := float64(len(points))
	strategy := StrategyConservative
	if totalProfit > 0 {
		strategy = StrategyAggressive
	}

	return &Result{
		Decisions:   decisions,
		TotalProfit: totalProfit,
		AvgCapacity: capacitySum / n,
		Strategy:    strategy,
		RiskLevel:   riskLevel(bidSum/n, predictedSum/n),
		CostModel:   cost,
	}, nil
}

func decide(p model.ForecastPoint, generationCost float64) model.BidDecision {
	bidPrice := p.PredictedPrice
	bidCapacity := baseCapacityMW

	switch {
	case p.PredictedPrice > generationCost*1.5:
		// High-price period: undercut slightly to raise clearing probability.
		bidCapacity = surgeCapacityMW
		bidPrice = p.PredictedPrice * 0.95
	case p.PredictedPrice < generationCost*1.2:
		// Low-price period: reduce exposure and protect margin.
		bidCapacity = reducedCapacityMW
		bidPrice = generationCost * 1.1
		if v := p.PredictedPrice * 0.9; v > bidPrice {
			bidPrice = v
		}
	}

	return model.BidDecision{
		TimePeriod:     p.Timestamp,
		BidPrice:       bidPrice,
		BidCapacity:    bidCapacity,
		ExpectedProfit: (bidPrice - generationCost) * bidCapacity,
		PredictedPrice: p.PredictedPrice,
	}
}

// riskLevel compares mean bid price against mean predicted price on ratio
// thresholds 1.10 then 1.05.
func riskLevel(meanBid, meanPredicted float64) string {
	if meanPredicted == 0 {
		return RiskLow
	}
	ratio := meanBid / meanPredicted
	switch {
	case ratio > 1.10:
		return RiskHigh
	case ratio > 1.05:
		return RiskMedium
	default:
		return RiskLow
	}
}
