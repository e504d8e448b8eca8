package dashboard

import (
	"context"
	"fmt"

	"github.com/wonny/quantdash/internal/contracts"
)

// HistoryPoint is one day of a ticker's ranking history.
type HistoryPoint struct {
	Date          string              `json:"date"`
	Rank          contracts.NullFloat `json:"rank"`
	CompositeRank int                 `json:"composite_rank"`
	Score         contracts.NullFloat `json:"score"`
	ValueScore    contracts.NullFloat `json:"value_s"`
	QualityScore  contracts.NullFloat `json:"quality_s"`
	GrowthScore   contracts.NullFloat `json:"growth_s"`
	MomentumScore contracts.NullFloat `json:"momentum_s"`
}

// TickerHistory is the top-N rank trail of one ticker.
type TickerHistory struct {
	Name    string             `json:"name"`
	Sector  string             `json:"sector"`
	History []RankHistoryPoint `json:"history"`
}

// RankHistoryPoint is one day inside a TickerHistory.
type RankHistoryPoint struct {
	Date          string  `json:"date"`
	CompositeRank int     `json:"composite_rank"`
	Score         float64 `json:"score"`
}

// AllHistoryResult covers every ticker that appeared in the top-N
// window on any available day.
type AllHistoryResult struct {
	Stocks map[string]TickerHistory `json:"stocks"`
	Dates  []string                 `json:"dates"` // oldest→newest
}

// TickerHistory walks every available snapshot, oldest first, and
// collects the given ticker's per-day record. Days where the ticker is
// absent are skipped.
func (s *Service) TickerHistory(ctx context.Context, ticker string) ([]HistoryPoint, error) {
	dates, err := s.store.Dates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshot dates: %w", err)
	}

	history := make([]HistoryPoint, 0, len(dates))
	for i := len(dates) - 1; i >= 0; i-- { // 오래된 순
		snap, err := s.store.Load(ctx, dates[i])
		if err != nil {
			continue
		}
		stock, ok := snap.Lookup(ticker)
		if !ok {
			continue
		}
		history = append(history, HistoryPoint{
			Date:          dates[i],
			Rank:          stock.Rank,
			CompositeRank: stock.EffectiveRank(),
			Score:         stock.Score,
			ValueScore:    stock.ValueScore,
			QualityScore:  stock.QualityScore,
			GrowthScore:   stock.GrowthScore,
			MomentumScore: stock.MomentumScore,
		})
	}
	return history, nil
}

// AllHistory builds the rank trail of every ticker that entered the
// top-N window on any day.
func (s *Service) AllHistory(ctx context.Context) (*AllHistoryResult, error) {
	dates, err := s.store.Dates(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshot dates: %w", err)
	}

	result := &AllHistoryResult{
		Stocks: make(map[string]TickerHistory),
		Dates:  make([]string, 0, len(dates)),
	}

	for i := len(dates) - 1; i >= 0; i-- {
		date := dates[i]
		snap, err := s.store.Load(ctx, date)
		if err != nil {
			continue
		}
		result.Dates = append(result.Dates, date)

		for _, stock := range snap.TopN(s.cfg.TopN) {
			th, seen := result.Stocks[stock.Ticker]
			if !seen {
				th = TickerHistory{Name: stock.Name, Sector: stock.Sector}
			}
			th.History = append(th.History, RankHistoryPoint{
				Date:          date,
				CompositeRank: stock.EffectiveRank(),
				Score:         stock.Score.Or(0),
			})
			result.Stocks[stock.Ticker] = th
		}
	}

	return result, nil
}
