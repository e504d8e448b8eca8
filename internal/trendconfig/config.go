package trendconfig

// Config는 트렌드 분석 파라미터의 전체 설정
// ⭐ SSOT: 분석 파라미터는 이 구조체에서만
type Config struct {
	// TopN is the daily top-N window for pipeline classification and
	// factor grading.
	TopN int `yaml:"top_n" json:"top_n"`

	// NDays is the number of consecutive snapshot days the pick
	// intersection requires.
	NDays int `yaml:"n_days" json:"n_days"`

	// MaxPicks bounds the pick list after sorting by weighted rank.
	MaxPicks int `yaml:"max_picks" json:"max_picks"`

	// DeathTopN is the window watched for exits (Fast Out).
	DeathTopN int `yaml:"death_top_n" json:"death_top_n"`

	// Weights blends per-day effective ranks, newest first.
	// Must have NDays elements summing to 1.0.
	Weights []float64 `yaml:"weights" json:"weights"`

	// ExitThreshold is the percentage-change magnitude below which no
	// exit-reason tag fires.
	ExitThreshold float64 `yaml:"exit_threshold" json:"exit_threshold"`

	Valuation     Valuation     `yaml:"valuation" json:"valuation"`
	Profitability Profitability `yaml:"profitability" json:"profitability"`
}

// Valuation thresholds for the buy-rationale P/E classification.
type Valuation struct {
	UndervaluedBelow float64 `yaml:"undervalued_below" json:"undervalued_below"`
	FairBelow        float64 `yaml:"fair_below" json:"fair_below"`
}

// Profitability thresholds for the buy-rationale ROE classification.
type Profitability struct {
	HighReturnMin float64 `yaml:"high_return_min" json:"high_return_min"`
	AdequateMin   float64 `yaml:"adequate_min" json:"adequate_min"`
}

// Default returns the production parameter set.
// Slow In: 3일 교집합, T0x0.5 + T1x0.3 + T2x0.2
func Default() *Config {
	return &Config{
		TopN:          30,
		NDays:         3,
		MaxPicks:      5,
		DeathTopN:     50,
		Weights:       []float64{0.5, 0.3, 0.2},
		ExitThreshold: 0.03,
		Valuation: Valuation{
			UndervaluedBelow: 10,
			FairBelow:        15,
		},
		Profitability: Profitability{
			HighReturnMin: 20,
			AdequateMin:   10,
		},
	}
}
