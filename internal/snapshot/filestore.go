package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wonny/quantdash/internal/contracts"
	"github.com/wonny/quantdash/pkg/logger"
)

const (
	rankingPrefix = "ranking_"
	rankingSuffix = ".json"
)

// FileStore reads ranking snapshots from a state directory containing
// ranking_YYYYMMDD.json files, the layout the upstream quant engine
// writes.
// ⭐ SSOT: 파일 스냅샷 로드는 여기서만
type FileStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileStore creates a store over a state directory.
func NewFileStore(dir string, log *logger.Logger) *FileStore {
	return &FileStore{dir: dir, logger: log}
}

// Dates lists available snapshot dates, newest first. File names whose
// stem is not an 8-digit date are ignored.
func (f *FileStore) Dates(ctx context.Context) ([]string, error) {
	pattern := filepath.Join(f.dir, rankingPrefix+"*"+rankingSuffix)
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}

	dates := make([]string, 0, len(files))
	for _, file := range files {
		name := filepath.Base(file)
		date := strings.TrimSuffix(strings.TrimPrefix(name, rankingPrefix), rankingSuffix)
		if isSnapshotDate(date) {
			dates = append(dates, date)
		}
	}

	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates, nil
}

// Load reads and decodes one date's snapshot.
func (f *FileStore) Load(ctx context.Context, date string) (*contracts.DailySnapshot, error) {
	path := filepath.Join(f.dir, rankingPrefix+date+rankingSuffix)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var snap contracts.DailySnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		if f.logger != nil {
			f.logger.WithError(err).WithField("date", date).Warn("Snapshot decode failed")
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if snap.Date == "" {
		snap.Date = date
	}
	return &snap, nil
}

// isSnapshotDate reports whether s is an 8-digit date stem.
func isSnapshotDate(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
