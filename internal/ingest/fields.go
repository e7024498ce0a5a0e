package ingest

import (
	"strconv"
	"strings"
	"time"
)

// Candidate header spellings per semantic field, in priority order.
// The first key present in a source wins; sources differ in how they label
// the same column (e.g. "lmp" vs "price" vs "spot_price").
var (
	timestampKeys = []string{"timestamp", "time", "datetime", "date"}
	priceKeys     = []string{"price", "lmp", "clearing_price", "spot_price", "price_eur_mwh"}
	loadKeys      = []string{"load", "load_mw", "total_load"}
	demandKeys    = []string{"demand", "demand_mw"}
	supplyKeys    = []string{"supply", "supply_mw", "generation"}
)

// timeLayouts are tried in order when parsing a timestamp cell.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func parseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
