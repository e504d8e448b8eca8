package trend

import (
	"github.com/wonny/quantdash/internal/contracts"
)

// stock builds a minimal ranked entry for tests.
func stock(ticker string, rank int) contracts.RankedStock {
	return contracts.RankedStock{
		Ticker: ticker,
		Name:   ticker + " Corp",
		Rank:   contracts.F(float64(rank)),
	}
}

// day builds a snapshot from ordered entries.
func day(date string, entries ...contracts.RankedStock) *contracts.DailySnapshot {
	return &contracts.DailySnapshot{Date: date, Entries: entries}
}
