// Package snapshot supplies fully-materialized daily ranking snapshots
// to the trend analytics. All I/O lives here; the analytics never read
// files or rows themselves.
package snapshot

import (
	"context"
	"errors"

	"github.com/wonny/quantdash/internal/contracts"
)

// ErrNotFound is returned when no snapshot exists for a date.
var ErrNotFound = errors.New("snapshot not found")

// Store is the snapshot provider boundary.
// ⭐ SSOT: 스냅샷 조회 인터페이스는 여기서만 정의
type Store interface {
	// Dates lists available 8-digit snapshot dates, newest first.
	Dates(ctx context.Context) ([]string, error)

	// Load reads the snapshot for one date. ErrNotFound when absent.
	Load(ctx context.Context, date string) (*contracts.DailySnapshot, error)
}

// Latest loads the most recent snapshot, or ErrNotFound when the store
// is empty.
func Latest(ctx context.Context, s Store) (*contracts.DailySnapshot, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return nil, err
	}
	if len(dates) == 0 {
		return nil, ErrNotFound
	}
	return s.Load(ctx, dates[0])
}

// Recent loads up to n most recent snapshots, newest first, skipping
// dates whose snapshot fails to load. Used by consumers that accept a
// degraded day count (the pipeline classifier).
func Recent(ctx context.Context, s Store, n int) ([]*contracts.DailySnapshot, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return nil, err
	}

	days := make([]*contracts.DailySnapshot, 0, n)
	for _, date := range dates {
		if len(days) == n {
			break
		}
		snap, err := s.Load(ctx, date)
		if err != nil {
			continue
		}
		days = append(days, snap)
	}
	return days, nil
}

// Exact loads exactly the n most recent snapshots, newest first. A date
// whose snapshot fails to load yields a nil element so consumers that
// require every day (the pick selector) can report insufficient data
// instead of silently computing over fewer days.
func Exact(ctx context.Context, s Store, n int) ([]*contracts.DailySnapshot, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return nil, err
	}
	if len(dates) > n {
		dates = dates[:n]
	}

	days := make([]*contracts.DailySnapshot, len(dates))
	for i, date := range dates {
		snap, err := s.Load(ctx, date)
		if err != nil {
			days[i] = nil
			continue
		}
		days[i] = snap
	}
	return days, nil
}
