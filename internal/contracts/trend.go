package contracts

// PipelineStatus classifies top-N persistence across consecutive days.
type PipelineStatus string

const (
	// StatusVerified 3일 연속 Top N
	StatusVerified PipelineStatus = "verified"
	// StatusPending 2일 연속 Top N
	StatusPending PipelineStatus = "pending"
	// StatusNewEntry 오늘 신규 진입
	StatusNewEntry PipelineStatus = "new_entry"
)

// PipelineEntry is one classified stock in the pipeline view.
// Trajectory runs oldest→newest; a nil element means the ticker was
// absent from that day's snapshot. WeightedRank is set only for
// verified entries.
type PipelineEntry struct {
	RankedStock
	Status       PipelineStatus `json:"status"`
	Trajectory   []*int         `json:"trajectory"`
	WeightedRank NullFloat      `json:"weighted_rank"`
}

// PipelineResult is the full pipeline classification for one day.
// Verified is ordered by weighted rank, pending and new_entry by the
// day's effective rank.
type PipelineResult struct {
	Verified []PipelineEntry `json:"verified"`
	Pending  []PipelineEntry `json:"pending"`
	NewEntry []PipelineEntry `json:"new_entry"`
	Sectors  map[string]int  `json:"sectors"`
}

// EmptyPipelineResult returns a result with no entries.
// Serializes as empty arrays, not nulls.
func EmptyPipelineResult() *PipelineResult {
	return &PipelineResult{
		Verified: []PipelineEntry{},
		Pending:  []PipelineEntry{},
		NewEntry: []PipelineEntry{},
		Sectors:  map[string]int{},
	}
}

// FactorGrades maps factor name → letter grade (A+ … D).
type FactorGrades map[string]string

// FactorGradeResult maps ticker → factor grades.
type FactorGradeResult map[string]FactorGrades
