package trend

import (
	"math"
	"sort"
	"strings"

	"github.com/wonny/quantdash/internal/contracts"
	"github.com/wonny/quantdash/pkg/logger"
)

// ExitTagger classifies why a ticker fell out of the ranking along two
// independent axes: consensus outlook (implied forward earnings) and
// price. Either, both, or neither tag may fire.
// ⭐ SSOT: 이탈 사유 태깅은 여기서만
type ExitTagger struct {
	threshold float64
}

// NewExitTagger creates a tagger with the given dead-zone threshold
// (magnitude below it emits no tag).
func NewExitTagger(threshold float64) *ExitTagger {
	return &ExitTagger{threshold: threshold}
}

// Tags evaluates the day pair for one ticker: today's record (possibly
// demoted) against yesterday's. Tags join with a space, outlook first.
func (t *ExitTagger) Tags(today, yesterday *contracts.RankedStock) string {
	tags := make([]string, 0, 2)

	// 전망: Forward EPS 컨센서스 변화 (price / fwd_per)
	eps0, ok0 := impliedEarnings(today)
	eps1, ok1 := impliedEarnings(yesterday)
	if ok0 && ok1 && eps1 != 0 {
		chg := (eps0 - eps1) / math.Abs(eps1)
		if math.Abs(chg) >= t.threshold {
			if chg > 0 {
				tags = append(tags, string(contracts.ExitTagOutlookUp))
			} else {
				tags = append(tags, string(contracts.ExitTagOutlookDown))
			}
		}
	}

	// 가격: 실제 주가 비교
	p0, okP0 := today.Price.Float()
	p1, okP1 := yesterday.Price.Float()
	if okP0 && okP1 && p0 > 0 && p1 > 0 {
		pct := (p0 - p1) / p1
		if math.Abs(pct) >= t.threshold {
			if pct > 0 {
				tags = append(tags, string(contracts.ExitTagPriceUp))
			} else {
				tags = append(tags, string(contracts.ExitTagPriceDown))
			}
		}
	}

	return strings.Join(tags, " ")
}

// impliedEarnings derives the forward earnings consensus from price and
// forward P/E when both are positive.
func impliedEarnings(s *contracts.RankedStock) (float64, bool) {
	price, ok := s.Price.Float()
	fwd, okFwd := s.FwdPER.Float()
	if !ok || !okFwd || price <= 0 || fwd <= 0 {
		return 0, false
	}
	return price / fwd, true
}

// DeathListBuilder finds tickers that left the watched top-N window
// between a snapshot pair (Fast Out).
type DeathListBuilder struct {
	topN   int
	tagger *ExitTagger
	logger *logger.Logger
}

// NewDeathListBuilder creates a builder over a watch window.
func NewDeathListBuilder(topN int, tagger *ExitTagger, log *logger.Logger) *DeathListBuilder {
	return &DeathListBuilder{
		topN:   topN,
		tagger: tagger,
		logger: log,
	}
}

// Build lists every ticker inside yesterday's top-N that today is
// either absent from the snapshot entirely (dropped_out) or demoted
// below the window. Ordered by yesterday's rank.
func (b *DeathListBuilder) Build(today, yesterday *contracts.DailySnapshot) *contracts.DeathListResult {
	result := &contracts.DeathListResult{
		DeathList: []contracts.DeathListEntry{},
	}
	if today == nil || yesterday == nil {
		result.Message = "2일 이상의 데이터가 필요합니다"
		return result
	}
	result.Dates = contracts.DeathListDates{Yesterday: yesterday.Date, Today: today.Date}

	for _, yStock := range yesterday.TopN(b.topN) {
		tStock, present := today.Lookup(yStock.Ticker)
		if present && tStock.InTopN(b.topN) {
			continue
		}

		entry := contracts.DeathListEntry{
			Ticker:        yStock.Ticker,
			Name:          yStock.Name,
			Sector:        yStock.Sector,
			YesterdayRank: yStock.EffectiveRank(),
			DroppedOut:    !present,
		}
		if present {
			r := tStock.EffectiveRank()
			entry.TodayRank = &r
			entry.ExitReason = b.tagger.Tags(&tStock, &yStock)
		}

		result.DeathList = append(result.DeathList, entry)
	}

	sort.SliceStable(result.DeathList, func(i, j int) bool {
		return result.DeathList[i].YesterdayRank < result.DeathList[j].YesterdayRank
	})

	if b.logger != nil {
		b.logger.WithFields(map[string]interface{}{
			"exited":    len(result.DeathList),
			"yesterday": yesterday.Date,
			"today":     today.Date,
		}).Debug("Death list computed")
	}

	return result
}
