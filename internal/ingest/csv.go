package ingest

import (
	"encoding/csv"
	"fmt"
	"os"

	"power-bidding/internal/model"
)

// ReadCSV parses one CSV source into observations.
//
// The first row is a header; columns are resolved to semantic fields via the
// alias tables in fields.go. A row is dropped when its timestamp or price
// cannot be parsed; load, demand and supply default to zero when absent.
func ReadCSV(path string) ([]model.Observation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty source")
	}

	cols := resolveColumns(records[0])
	if cols.timestamp < 0 {
		return nil, fmt.Errorf("no timestamp column (tried %v)", timestampKeys)
	}
	if cols.price < 0 {
		return nil, fmt.Errorf("no price column (tried %v)", priceKeys)
	}

	obs := make([]model.Observation, 0, len(records)-1)
	for _, row := range records[1:] {
		o, ok := parseRow(row, cols)
		if !ok {
			continue
		}
		obs = append(obs, o)
	}
	return obs, nil
}

type columnMap struct {
	timestamp int
	price     int
	load      int
	demand    int
	supply    int
}

func resolveColumns(header []string) columnMap {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[normalizeKey(h)] = i
	}
	find := func(keys []string) int {
		for _, k := range keys {
			if i, ok := index[k]; ok {
				return i
			}
		}
		return -1
	}
	return columnMap{
		timestamp: find(timestampKeys),
		price:     find(priceKeys),
		load:      find(loadKeys),
		demand:    find(demandKeys),
		supply:    find(supplyKeys),
	}
}

func parseRow(row []string, cols columnMap) (model.Observation, bool) {
	cell := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return row[i]
	}

	ts, ok := parseTimestamp(cell(cols.timestamp))
	if !ok {
		return model.Observation{}, false
	}
	price, ok := parseFloat(cell(cols.price))
	if !ok {
		return model.Observation{}, false
	}

	o := model.Observation{Timestamp: ts, Price: price}
	if v, ok := parseFloat(cell(cols.load)); ok {
		o.Load = v
	}
	if v, ok := parseFloat(cell(cols.demand)); ok {
		o.Demand = v
	}
	if v, ok := parseFloat(cell(cols.supply)); ok {
		o.Supply = v
	}
	return o, true
}
