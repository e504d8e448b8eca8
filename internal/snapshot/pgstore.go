package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/quantdash/internal/contracts"
)

// PGStore reads ranking snapshots mirrored into Postgres by the
// upstream quant engine. Schema:
//
//	CREATE TABLE ranking_snapshots (
//	    snapshot_date CHAR(8) PRIMARY KEY,
//	    payload       JSONB NOT NULL
//	);
//
// ⭐ SSOT: DB 스냅샷 로드는 여기서만
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a store over a connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Dates lists available snapshot dates, newest first.
func (p *PGStore) Dates(ctx context.Context) ([]string, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT snapshot_date
		FROM ranking_snapshots
		ORDER BY snapshot_date DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query snapshot dates: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan snapshot date: %w", err)
		}
		if isSnapshotDate(date) {
			dates = append(dates, date)
		}
	}
	return dates, rows.Err()
}

// Load reads and decodes one date's snapshot.
func (p *PGStore) Load(ctx context.Context, date string) (*contracts.DailySnapshot, error) {
	var payload []byte
	err := p.pool.QueryRow(ctx, `
		SELECT payload
		FROM ranking_snapshots
		WHERE snapshot_date = $1
	`, date).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query snapshot %s: %w", date, err)
	}

	snap := &contracts.DailySnapshot{}
	if err := json.Unmarshal(payload, snap); err != nil {
		return nil, fmt.Errorf("decode snapshot %s: %w", date, err)
	}
	if snap.Date == "" {
		snap.Date = date
	}
	return snap, nil
}
