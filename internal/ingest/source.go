package ingest

import (
	"path/filepath"
	"strings"

	"power-bidding/internal/model"
)

// ReadSource parses one tabular source, dispatching on file extension.
// ".json" sources use the JSON reader; everything else is treated as CSV.
func ReadSource(path string) ([]model.Observation, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ReadJSON(path)
	}
	return ReadCSV(path)
}
