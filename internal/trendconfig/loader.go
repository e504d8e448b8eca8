package trendconfig

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML parameter file and validates it.
// KnownFields(true)로 오타/미사용 필드 즉시 실패
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("trend config decode failed: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks structural constraints the analytics depend on.
func Validate(cfg *Config) error {
	if cfg.TopN <= 0 {
		return fmt.Errorf("top_n must be positive, got %d", cfg.TopN)
	}
	if cfg.NDays <= 0 {
		return fmt.Errorf("n_days must be positive, got %d", cfg.NDays)
	}
	if cfg.MaxPicks < 0 {
		return fmt.Errorf("max_picks must not be negative, got %d", cfg.MaxPicks)
	}
	if cfg.DeathTopN <= 0 {
		return fmt.Errorf("death_top_n must be positive, got %d", cfg.DeathTopN)
	}
	if len(cfg.Weights) != cfg.NDays {
		return fmt.Errorf("weights must have n_days(%d) elements, got %d", cfg.NDays, len(cfg.Weights))
	}

	var sum float64
	for _, w := range cfg.Weights {
		if w < 0 {
			return fmt.Errorf("weights must not be negative, got %v", cfg.Weights)
		}
		sum += w
	}
	// Allow small floating point error
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}

	if cfg.ExitThreshold < 0 {
		return fmt.Errorf("exit_threshold must not be negative, got %v", cfg.ExitThreshold)
	}
	if cfg.Valuation.UndervaluedBelow > cfg.Valuation.FairBelow {
		return fmt.Errorf("valuation: undervalued_below(%v) must not exceed fair_below(%v)",
			cfg.Valuation.UndervaluedBelow, cfg.Valuation.FairBelow)
	}
	if cfg.Profitability.AdequateMin > cfg.Profitability.HighReturnMin {
		return fmt.Errorf("profitability: adequate_min(%v) must not exceed high_return_min(%v)",
			cfg.Profitability.AdequateMin, cfg.Profitability.HighReturnMin)
	}

	return nil
}
