package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"power-bidding/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Sources  []string       `yaml:"sources"`
	Forecast ForecastConfig `yaml:"forecast"`
	Cost     CostConfig     `yaml:"cost_model"`
}

type ServerConfig struct {
	Port      string `yaml:"port"`
	StaticDir string `yaml:"static_dir"`
}

type ForecastConfig struct {
	WindowSize        int     `yaml:"window_size"`
	DefaultHorizon    int     `yaml:"default_horizon"`
	DefaultConfidence float64 `yaml:"default_confidence"`
}

type CostConfig struct {
	GenerationCost float64 `yaml:"generation_cost"`
	UpwardCost     float64 `yaml:"upward_cost"`
	DownwardCost   float64 `yaml:"downward_cost"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: "8080"},
		Forecast: ForecastConfig{
			WindowSize:        168,
			DefaultHorizon:    24,
			DefaultConfidence: 0.95,
		},
		Cost: CostConfig{GenerationCost: 50},
	}
}

// Load reads, merges over defaults, and validates a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Forecast.WindowSize <= 0 {
		return errors.New("forecast.window_size must be positive")
	}
	if c.Forecast.DefaultHorizon <= 0 {
		return errors.New("forecast.default_horizon must be positive")
	}
	if c.Forecast.DefaultConfidence <= 0 || c.Forecast.DefaultConfidence >= 1 {
		return errors.New("forecast.default_confidence must be in (0,1)")
	}
	if c.Cost.GenerationCost < 0 || c.Cost.UpwardCost < 0 || c.Cost.DownwardCost < 0 {
		return errors.New("cost_model values must be non-negative")
	}
	return nil
}

// ToCostModel converts the config section to the core cost model.
func (c CostConfig) ToCostModel() model.CostModel {
	return model.CostModel{
		GenerationCost: c.GenerationCost,
		UpwardCost:     c.UpwardCost,
		DownwardCost:   c.DownwardCost,
	}
}
