package trend

import (
	"sort"

	"github.com/wonny/quantdash/internal/contracts"
	"github.com/wonny/quantdash/pkg/logger"
)

// Classifier partitions today's top-N tickers by how long they have
// persisted in the window: 3일 연속 → verified, 2일 연속 → pending,
// 신규 진입 → new_entry.
// ⭐ SSOT: 파이프라인 분류는 여기서만
type Classifier struct {
	topN   int
	ranker *WeightedRanker
	logger *logger.Logger
}

// NewClassifier creates a classifier over a top-N window.
func NewClassifier(topN int, ranker *WeightedRanker, log *logger.Logger) *Classifier {
	return &Classifier{
		topN:   topN,
		ranker: ranker,
		logger: log,
	}
}

// Classify computes the pipeline view from up to 3 daily snapshots,
// most recent first. Nil snapshots are skipped. With fewer than 3 days
// supplied, verified is unreachable by construction — a degraded but
// valid result, not an error.
func (c *Classifier) Classify(days []*contracts.DailySnapshot) *contracts.PipelineResult {
	used := make([]*contracts.DailySnapshot, 0, 3)
	for _, d := range days {
		if d == nil {
			continue
		}
		used = append(used, d)
		if len(used) == 3 {
			break
		}
	}

	result := contracts.EmptyPipelineResult()
	if len(used) == 0 {
		return result
	}

	t0 := used[0].TopN(c.topN)
	t1 := membership(used, 1, c.topN)
	t2 := membership(used, 2, c.topN)

	for _, stock := range t0 {
		entry := contracts.PipelineEntry{
			RankedStock: stock,
			Trajectory:  c.trajectory(stock, used),
		}

		_, inT1 := t1[stock.Ticker]
		_, inT2 := t2[stock.Ticker]

		switch {
		case inT1 && inT2:
			entry.Status = contracts.StatusVerified
			entry.WeightedRank = contracts.F(c.ranker.Score(dayRanks(stock.Ticker, used)))
			result.Verified = append(result.Verified, entry)
		case inT1:
			entry.Status = contracts.StatusPending
			result.Pending = append(result.Pending, entry)
		default:
			entry.Status = contracts.StatusNewEntry
			result.NewEntry = append(result.NewEntry, entry)
		}

		result.Sectors[stock.SectorBucket()]++
	}

	sort.SliceStable(result.Verified, func(i, j int) bool {
		return result.Verified[i].WeightedRank.Or(contracts.RankSentinel) <
			result.Verified[j].WeightedRank.Or(contracts.RankSentinel)
	})
	sortByEffectiveRank(result.Pending)
	sortByEffectiveRank(result.NewEntry)

	if c.logger != nil {
		c.logger.WithFields(map[string]interface{}{
			"days":      len(used),
			"verified":  len(result.Verified),
			"pending":   len(result.Pending),
			"new_entry": len(result.NewEntry),
		}).Debug("Pipeline classification completed")
	}

	return result
}

// trajectory builds the oldest→newest effective-rank path for a ticker.
// Days where the ticker is absent from the whole snapshot yield nil.
func (c *Classifier) trajectory(stock contracts.RankedStock, used []*contracts.DailySnapshot) []*int {
	traj := make([]*int, 0, len(used))
	for i := len(used) - 1; i >= 1; i-- {
		if found, ok := used[i].Lookup(stock.Ticker); ok {
			r := found.EffectiveRank()
			traj = append(traj, &r)
		} else {
			traj = append(traj, nil)
		}
	}
	r0 := stock.EffectiveRank()
	traj = append(traj, &r0)
	return traj
}

// dayRanks resolves a ticker's effective rank per day, newest first,
// substituting the sentinel when a day's snapshot lacks the ticker.
func dayRanks(ticker string, used []*contracts.DailySnapshot) []int {
	ranks := make([]int, len(used))
	for i, day := range used {
		ranks[i] = contracts.RankSentinel
		if found, ok := day.Lookup(ticker); ok {
			ranks[i] = found.EffectiveRank()
		}
	}
	return ranks
}

// membership returns the ticker set of a day's top-N window, or an
// empty set when the day was not supplied.
func membership(used []*contracts.DailySnapshot, idx, topN int) map[string]struct{} {
	set := make(map[string]struct{})
	if idx >= len(used) {
		return set
	}
	for _, s := range used[idx].TopN(topN) {
		set[s.Ticker] = struct{}{}
	}
	return set
}

func sortByEffectiveRank(entries []contracts.PipelineEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].EffectiveRank() < entries[j].EffectiveRank()
	})
}
