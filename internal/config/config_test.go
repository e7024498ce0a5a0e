package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `server:
  port: "9090"
sources:
  - data/prices.csv
  - data/prices_2024.json
forecast:
  window_size: 96
cost_model:
  generation_cost: 42.5
  upward_cost: 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"data/prices.csv", "data/prices_2024.json"}, cfg.Sources)
	assert.Equal(t, 96, cfg.Forecast.WindowSize)
	// Unset fields keep their defaults.
	assert.Equal(t, 24, cfg.Forecast.DefaultHorizon)
	assert.Equal(t, 0.95, cfg.Forecast.DefaultConfidence)

	cost := cfg.Cost.ToCostModel()
	assert.Equal(t, 42.5, cost.GenerationCost)
	assert.Equal(t, 5.0, cost.UpwardCost)
	assert.Equal(t, 0.0, cost.DownwardCost)
}

func TestLoad_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"bad yaml", "server: [port\n"},
		{"negative window", "forecast:\n  window_size: -1\n"},
		{"confidence out of range", "forecast:\n  default_confidence: 1.5\n"},
		{"negative cost", "cost_model:\n  generation_cost: -10\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
