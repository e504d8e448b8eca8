package trendconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trend.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := Validate(cfg); err != nil {
		t.Fatalf("Default() must validate: %v", err)
	}

	if cfg.TopN != 30 {
		t.Errorf("expected top_n=30, got %d", cfg.TopN)
	}
	if cfg.NDays != 3 {
		t.Errorf("expected n_days=3, got %d", cfg.NDays)
	}
	if len(cfg.Weights) != 3 || cfg.Weights[0] != 0.5 {
		t.Errorf("unexpected weights: %v", cfg.Weights)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
top_n: 20
n_days: 2
max_picks: 3
weights: [0.6, 0.4]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.TopN != 20 {
		t.Errorf("expected top_n=20, got %d", cfg.TopN)
	}
	if cfg.NDays != 2 {
		t.Errorf("expected n_days=2, got %d", cfg.NDays)
	}

	// Unset fields keep defaults.
	if cfg.DeathTopN != 50 {
		t.Errorf("expected default death_top_n=50, got %d", cfg.DeathTopN)
	}
	if cfg.ExitThreshold != 0.03 {
		t.Errorf("expected default exit_threshold=0.03, got %v", cfg.ExitThreshold)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, `
top_n: 20
topN: 30
`)

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown field, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "zero top_n", mutate: func(c *Config) { c.TopN = 0 }},
		{name: "weight count mismatch", mutate: func(c *Config) { c.Weights = []float64{1.0} }},
		{name: "weights not summing to one", mutate: func(c *Config) { c.Weights = []float64{0.5, 0.3, 0.1} }},
		{name: "negative weight", mutate: func(c *Config) { c.Weights = []float64{1.2, -0.1, -0.1} }},
		{name: "negative exit threshold", mutate: func(c *Config) { c.ExitThreshold = -0.01 }},
		{name: "inverted valuation thresholds", mutate: func(c *Config) { c.Valuation.UndervaluedBelow = 20 }},
		{name: "inverted profitability thresholds", mutate: func(c *Config) { c.Profitability.AdequateMin = 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
