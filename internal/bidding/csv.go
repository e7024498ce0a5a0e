package bidding

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"power-bidding/internal/model"
)

// WriteScheduleCSV exports a bidding schedule, one row per period.
func WriteScheduleCSV(path string, decisions []model.BidDecision) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"time_period",
		"bid_price",
		"bid_capacity",
		"expected_profit",
		"predicted_price",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, d := range decisions {
		row := []string{
			fmtTime(d.TimePeriod),
			fmtFloat(d.BidPrice),
			fmtFloat(d.BidCapacity),
			fmtFloat(d.ExpectedProfit),
			fmtFloat(d.PredictedPrice),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
