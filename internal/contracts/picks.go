package contracts

// DefaultPickWeight is the equal position weight (%) attached to each pick.
const DefaultPickWeight = 20

// Pick is one recommended stock from the multi-day intersection.
// Raw snapshot fields come from the most recent day.
type Pick struct {
	RankedStock
	WeightedRank float64      `json:"weighted_rank"`
	Weight       int          `json:"weight"`
	Trajectory   []int        `json:"trajectory"`
	FactorGrades FactorGrades `json:"factor_grades"`
	BuyRationale string       `json:"buy_rationale"`
}

// PickResult is the bounded, explained top-pick list.
// When fewer than the required days of data exist, Picks is empty and
// Message/DaysAvailable describe the shortfall; no partial computation
// is performed.
type PickResult struct {
	Picks         []Pick   `json:"picks"`
	Dates         []string `json:"dates"`
	TotalCommon   int      `json:"total_common"`
	Message       string   `json:"message,omitempty"`
	DaysAvailable int      `json:"days_available,omitempty"`
}

// Insufficient reports whether the result is the insufficient-data case.
func (r *PickResult) Insufficient() bool {
	return r.Message != ""
}
