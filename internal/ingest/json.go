package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"power-bidding/internal/model"
)

// ReadJSON parses one JSON source: an array of flat objects keyed by the
// same candidate field names as the CSV reader. Values may be numbers or
// numeric strings.
func ReadJSON(path string) ([]model.Observation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var rows []map[string]any
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}

	obs := make([]model.Observation, 0, len(rows))
	for _, row := range rows {
		o, ok := parseObject(row)
		if !ok {
			continue
		}
		obs = append(obs, o)
	}
	return obs, nil
}

func parseObject(row map[string]any) (model.Observation, bool) {
	norm := make(map[string]any, len(row))
	for k, v := range row {
		norm[normalizeKey(k)] = v
	}
	lookup := func(keys []string) (any, bool) {
		for _, k := range keys {
			if v, ok := norm[k]; ok {
				return v, true
			}
		}
		return nil, false
	}

	tsRaw, ok := lookup(timestampKeys)
	if !ok {
		return model.Observation{}, false
	}
	tsStr, ok := tsRaw.(string)
	if !ok {
		return model.Observation{}, false
	}
	ts, ok := parseTimestamp(tsStr)
	if !ok {
		return model.Observation{}, false
	}

	priceRaw, ok := lookup(priceKeys)
	if !ok {
		return model.Observation{}, false
	}
	price, ok := coerceFloat(priceRaw)
	if !ok {
		return model.Observation{}, false
	}

	o := model.Observation{Timestamp: ts, Price: price}
	if v, ok := lookup(loadKeys); ok {
		o.Load, _ = coerceFloat(v)
	}
	if v, ok := lookup(demandKeys); ok {
		o.Demand, _ = coerceFloat(v)
	}
	if v, ok := lookup(supplyKeys); ok {
		o.Supply, _ = coerceFloat(v)
	}
	return o, true
}

func coerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		return parseFloat(x)
	default:
		return 0, false
	}
}
