package forecast

import (
	"fmt"
	"math"
	"time"

	"power-bidding/internal/model"
)

// Step is the spacing between consecutive forecast points.
const Step = 15 * time.Minute

// DefaultWindow is the number of recent observations used as the statistical
// basis: one week at an hourly cadence.
const DefaultWindow = 168

// noiseScale bounds the random perturbation relative to the window's price
// dispersion.
const noiseScale = 0.3

// Request describes one forecast invocation.
type Request struct {
	Start           time.Time
	Horizon         int
	ConfidenceLevel float64
}

// Summary carries observability statistics for one forecast batch.
type Summary struct {
	MeanPrice       float64 `json:"mean_predicted_price"`
	Points          int     `json:"points"`
	ConfidenceLevel float64 `json:"confidence_level"`
	BasedOnHistory  bool    `json:"based_on_history"`
	WindowSize      int     `json:"window_size"`
}

// Engine produces short-horizon price forecasts from a historical window
// using a seasonal heuristic: mean price scaled by hour-of-day and
// day-of-week factors, perturbed by dispersion-scaled noise.
type Engine struct {
	noise Noise
}

func New(noise Noise) *Engine {
	if noise == nil {
		noise = NewNoise()
	}
	return &Engine{noise: noise}
}

// Forecast generates exactly req.Horizon points, strictly increasing by Step
// from req.Start. The window must be non-empty and in chronological order as
// loaded.
func (e *Engine) Forecast(window []model.Observation, req Request) ([]model.ForecastPoint, Summary, error) {
	if len(window) == 0 {
		return nil, Summary{}, model.ErrDataUnavailable
	}
	if req.Horizon <= 0 {
		return nil, Summary{}, fmt.Errorf("horizon must be positive, got %d: %w", req.Horizon, model.ErrInvalidRequest)
	}
	if req.ConfidenceLevel <= 0 || req.ConfidenceLevel >= 1 {
		return nil, Summary{}, fmt.Errorf("confidence level must be in (0,1), got %g: %w", req.ConfidenceLevel, model.ErrInvalidRequest)
	}

	base, spread := priceStats(window)
	confidenceRange := spread * (1 - req.ConfidenceLevel) * 2

	points := make([]model.ForecastPoint, req.Horizon)
	sum := 0.0
	for i := range points {
		ts := req.Start.Add(time.Duration(i) * Step)
		price := base*timeFactor(ts) + e.noise.Draw()*noiseScale*spread
		if price < 0 {
			price = 0
		}
		lower := price - confidenceRange
		if lower < 0 {
			lower = 0
		}
		points[i] = model.ForecastPoint{
			Timestamp:       ts,
			PredictedPrice:  price,
			ConfidenceLower: lower,
			ConfidenceUpper: price + confidenceRange,
			ConfidenceLevel: req.ConfidenceLevel,
		}
		sum += price
	}

	summary := Summary{
		MeanPrice:       sum / float64(req.Horizon),
		Points:          req.Horizon,
		ConfidenceLevel: req.ConfidenceLevel,
		BasedOnHistory:  true,
		WindowSize:      len(window),
	}
	return points, summary, nil
}

// timeFactor scales the base price by hour-of-day and day-of-week. The two
// peak-hour factors are independent multipliers; their bands are disjoint,
// so at most one applies to a given timestamp.
func timeFactor(t time.Time) float64 {
	f := 1.0
	h := t.Hour()
	if h >= 8 && h <= 10 {
		f *= 1.2
	}
	if h >= 18 && h <= 20 {
		f *= 1.3
	}
	if wd := t.Weekday(); wd == time.Saturday || wd == time.Sunday {
		f *= 0.9
	}
	return f
}

// priceStats returns the arithmetic mean and population standard deviation
// of price over the window.
func priceStats(window []model.Observation) (mean, stddev float64) {
	sum := 0.0
	for _, o := range window {
		sum += o.Price
	}
	mean = sum / float64(len(window))

	varSum := 0.0
	for _, o := range window {
		d := o.Price - mean
		varSum += d * d
	}
	stddev = math.Sqrt(varSum / float64(len(window)))
	return mean, stddev
}
