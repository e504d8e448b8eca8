package contracts

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// 공통 상수 (SSOT)
// 모든 컴포넌트는 이 상수를 사용해야 함 — 개별 정의 금지
const (
	// RankSentinel is the effective rank assigned when a stock carries
	// neither composite_rank nor rank.
	RankSentinel = 999

	// SectorOther is the histogram bucket for stocks without a sector.
	SectorOther = "other"

	// DefaultTopN is the top-N window size of the daily ranking.
	DefaultTopN = 30
)

// NullFloat is an optional float64 for loosely-typed snapshot fields.
// Missing, null, or non-numeric input decodes to the invalid state and
// serializes back as JSON null. Valid values are normalized to 2 decimals,
// matching the snapshot producer.
// ⭐ SSOT: 숫자 필드 정규화는 이 타입에서만
type NullFloat struct {
	Value float64
	Valid bool
}

// F wraps a float64 into a valid NullFloat.
func F(v float64) NullFloat {
	return NullFloat{Value: v, Valid: true}
}

// Float returns the value and whether it is present.
func (n NullFloat) Float() (float64, bool) {
	return n.Value, n.Valid
}

// Or returns the value, or def when absent.
func (n NullFloat) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

// Positive reports whether the value is present and greater than zero.
func (n NullFloat) Positive() bool {
	return n.Valid && n.Value > 0
}

// MarshalJSON serializes the value, or null when absent.
func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UnmarshalJSON accepts numbers, numeric strings, and null.
// Anything else normalizes to the invalid state, never an error.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	n.Value, n.Valid = 0, false

	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	n.Value = math.Round(v*100) / 100
	n.Valid = true
	return nil
}

// RankedStock is one entry of a daily ranking snapshot.
// All numeric fields are optional; absence is data, not an error.
type RankedStock struct {
	Ticker        string    `json:"ticker"`
	Name          string    `json:"name"`
	Sector        string    `json:"sector"`
	Rank          NullFloat `json:"rank"`
	CompositeRank NullFloat `json:"composite_rank"`
	Score         NullFloat `json:"score"`
	PER           NullFloat `json:"per"`
	FwdPER        NullFloat `json:"fwd_per"`
	PBR           NullFloat `json:"pbr"`
	ROE           NullFloat `json:"roe"`
	ValueScore    NullFloat `json:"value_s"`
	QualityScore  NullFloat `json:"quality_s"`
	GrowthScore   NullFloat `json:"growth_s"`
	MomentumScore NullFloat `json:"momentum_s"`
	Price         NullFloat `json:"price"`
}

// EffectiveRank resolves the ranking position used by every component:
// composite_rank, else rank, else RankSentinel.
// ⭐ SSOT: 유효 순위 해석은 이 함수에서만
func (s *RankedStock) EffectiveRank() int {
	if v, ok := s.CompositeRank.Float(); ok {
		return int(v)
	}
	if v, ok := s.Rank.Float(); ok {
		return int(v)
	}
	return RankSentinel
}

// InTopN reports whether the stock is inside the top-N window.
func (s *RankedStock) InTopN(n int) bool {
	return s.EffectiveRank() <= n
}

// SectorBucket returns the sector, or the shared "other" bucket.
func (s *RankedStock) SectorBucket() string {
	if strings.TrimSpace(s.Sector) == "" {
		return SectorOther
	}
	return s.Sector
}

// DailySnapshot is one trading day's ranked universe.
// Immutable once loaded; tickers are unique within a snapshot.
type DailySnapshot struct {
	Date    string        `json:"date"`
	Entries []RankedStock `json:"rankings"`
}

// TopN returns the entries inside the top-N window, in snapshot order.
func (d *DailySnapshot) TopN(n int) []RankedStock {
	top := make([]RankedStock, 0, n)
	for _, s := range d.Entries {
		if s.InTopN(n) {
			top = append(top, s)
		}
	}
	return top
}

// Lookup finds a ticker anywhere in the snapshot.
func (d *DailySnapshot) Lookup(ticker string) (RankedStock, bool) {
	for _, s := range d.Entries {
		if s.Ticker == ticker {
			return s, true
		}
	}
	return RankedStock{}, false
}
