package contracts

// ExitTag labels one axis of the exit-reason classification.
type ExitTag string

// 이탈 사유 태그 — 전망 vs 가격, 서로 독립
const (
	ExitTagOutlookUp   ExitTag = "💪전망↑"
	ExitTagOutlookDown ExitTag = "⚠️전망↓"
	ExitTagPriceUp     ExitTag = "📈가격↑"
	ExitTagPriceDown   ExitTag = "📉가격↓"
)

// ExitDeadZone is the minimum percentage-change magnitude (3%) for an
// exit-reason tag to fire. Changes below it emit nothing.
const ExitDeadZone = 0.03

// DefaultDeathTopN is the top-N window watched for exits.
const DefaultDeathTopN = 50

// DeathListEntry is a stock that left the watched top-N window.
// TodayRank is nil when the ticker is absent from today's snapshot
// entirely; DroppedOut is true exactly in that case (demoted-but-tracked
// stocks keep their rank).
type DeathListEntry struct {
	Ticker        string `json:"ticker"`
	Name          string `json:"name"`
	Sector        string `json:"sector"`
	YesterdayRank int    `json:"yesterday_rank"`
	TodayRank     *int   `json:"today_rank"`
	ExitReason    string `json:"exit_reason"`
	DroppedOut    bool   `json:"dropped_out"`
}

// DeathListDates names the snapshot pair the list was computed from.
type DeathListDates struct {
	Yesterday string `json:"yesterday"`
	Today     string `json:"today"`
}

// DeathListResult is the ordered exit list for one day pair.
type DeathListResult struct {
	DeathList []DeathListEntry `json:"death_list"`
	Dates     DeathListDates   `json:"dates"`
	Message   string           `json:"message,omitempty"`
}
