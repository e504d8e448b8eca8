package trend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/wonny/quantdash/internal/contracts"
	"github.com/wonny/quantdash/internal/trendconfig"
	"github.com/wonny/quantdash/pkg/logger"
)

// rationaleSeparator joins the generated buy-rationale parts.
const rationaleSeparator = " · "

// PickSelector composes the n-day intersection with the weighted ranker
// and factor grader into the final bounded pick list (Slow In).
// ⭐ SSOT: 최종 추천 선정은 여기서만
type PickSelector struct {
	cfg    *trendconfig.Config
	ranker *WeightedRanker
	grader *FactorGrader
	logger *logger.Logger
}

// NewPickSelector creates a selector from validated parameters.
func NewPickSelector(cfg *trendconfig.Config, log *logger.Logger) *PickSelector {
	return &PickSelector{
		cfg:    cfg,
		ranker: NewWeightedRanker(cfg.Weights),
		grader: NewFactorGrader(),
		logger: log,
	}
}

// Select computes the pick list from the required number of daily
// snapshots, most recent first. Fewer days than configured — or a nil
// snapshot among them — yields the explicit insufficient-data result,
// never a partial computation.
func (s *PickSelector) Select(days []*contracts.DailySnapshot) *contracts.PickResult {
	available := 0
	for _, d := range days {
		if d != nil {
			available++
		}
	}

	if len(days) < s.cfg.NDays || available < s.cfg.NDays || hasNilPrefix(days, s.cfg.NDays) {
		return &contracts.PickResult{
			Picks:         []contracts.Pick{},
			Dates:         []string{},
			Message:       fmt.Sprintf("순위 데이터가 %d일밖에 없습니다 (%d일 필요)", available, s.cfg.NDays),
			DaysAvailable: available,
		}
	}

	used := days[:s.cfg.NDays]

	// Per-day top-N maps; day0 keeps snapshot order for the tie-break.
	topMaps := make([]map[string]contracts.RankedStock, len(used))
	for i, day := range used {
		topMaps[i] = make(map[string]contracts.RankedStock)
		for _, stock := range day.TopN(s.cfg.TopN) {
			topMaps[i][stock.Ticker] = stock
		}
	}

	grades := s.grader.Grade(used[0].TopN(s.cfg.TopN))

	// Intersection in day0 entry order (first-seen wins on ties).
	picks := make([]contracts.Pick, 0)
	for _, stock := range used[0].TopN(s.cfg.TopN) {
		inAll := true
		for _, m := range topMaps[1:] {
			if _, ok := m[stock.Ticker]; !ok {
				inAll = false
				break
			}
		}
		if !inAll {
			continue
		}

		ranks := make([]int, len(used))
		for i, m := range topMaps {
			dayStock := m[stock.Ticker]
			ranks[i] = dayStock.EffectiveRank()
		}

		trajectory := make([]int, len(used))
		for i := range used {
			trajectory[i] = ranks[len(used)-1-i] // oldest→newest
		}

		pick := contracts.Pick{
			RankedStock:  stock,
			WeightedRank: s.ranker.Score(ranks),
			Weight:       contracts.DefaultPickWeight,
			Trajectory:   trajectory,
			FactorGrades: grades[stock.Ticker],
		}
		pick.BuyRationale = s.buyRationale(&pick)
		picks = append(picks, pick)
	}

	totalCommon := len(picks)

	sort.SliceStable(picks, func(i, j int) bool {
		return picks[i].WeightedRank < picks[j].WeightedRank
	})
	if len(picks) > s.cfg.MaxPicks {
		picks = picks[:s.cfg.MaxPicks]
	}

	dates := make([]string, len(used))
	for i, day := range used {
		dates[i] = day.Date
	}

	if s.logger != nil {
		s.logger.WithFields(map[string]interface{}{
			"common": totalCommon,
			"picks":  len(picks),
			"dates":  dates,
		}).Debug("Pick selection completed")
	}

	return &contracts.PickResult{
		Picks:       picks,
		Dates:       dates,
		TotalCommon: totalCommon,
	}
}

// buyRationale generates the deterministic explanation text:
// valuation, profitability, then rank stability, separated by " · ".
// Parts whose precondition fails are omitted.
func (s *PickSelector) buyRationale(p *contracts.Pick) string {
	parts := make([]string, 0, 3)

	// PER 평가 — forward 우선
	if fwd, ok := p.FwdPER.Float(); ok && fwd > 0 {
		parts = append(parts, s.valuationPart("Forward PER", fwd))
	} else if per, ok := p.PER.Float(); ok && per > 0 {
		parts = append(parts, s.valuationPart("PER", per))
	}

	// ROE 평가
	if roe, ok := p.ROE.Float(); ok && roe > 0 {
		switch {
		case roe >= s.cfg.Profitability.HighReturnMin:
			parts = append(parts, fmt.Sprintf("ROE %.1f%% (고수익)", roe))
		case roe >= s.cfg.Profitability.AdequateMin:
			parts = append(parts, fmt.Sprintf("ROE %.1f%% (양호)", roe))
		default:
			parts = append(parts, fmt.Sprintf("ROE %.1f%%", roe))
		}
	}

	// 순위 안정성
	if len(p.Trajectory) >= 3 {
		first, last := p.Trajectory[0], p.Trajectory[len(p.Trajectory)-1]
		if allEqual(p.Trajectory) {
			parts = append(parts, fmt.Sprintf("%d일 연속 %d위", len(p.Trajectory), first))
		} else if last <= first {
			parts = append(parts, fmt.Sprintf("순위 상승 중 (%d→%d위)", first, last))
		}
	}

	return strings.Join(parts, rationaleSeparator)
}

func (s *PickSelector) valuationPart(label string, multiple float64) string {
	switch {
	case multiple < s.cfg.Valuation.UndervaluedBelow:
		return fmt.Sprintf("%s %.1f (저평가)", label, multiple)
	case multiple < s.cfg.Valuation.FairBelow:
		return fmt.Sprintf("%s %.1f (적정)", label, multiple)
	default:
		return fmt.Sprintf("%s %.1f", label, multiple)
	}
}

func allEqual(ranks []int) bool {
	for _, r := range ranks[1:] {
		if r != ranks[0] {
			return false
		}
	}
	return true
}

func hasNilPrefix(days []*contracts.DailySnapshot, n int) bool {
	for i := 0; i < n && i < len(days); i++ {
		if days[i] == nil {
			return true
		}
	}
	return false
}
