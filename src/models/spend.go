package models

// MYearBucket is a per-calendar-year subtotal inside one aggregated entity.
// AvgAmount is always recomputed from TotalAmount/ContractCount, never
// accumulated incrementally.
type MYearBucket struct {
	ContractCount int     `json:"contract_count"`
	TotalAmount   float64 `json:"total_amount"`
	AvgAmount     float64 `json:"avg_amount"`
}

// -----------------------------------------------------------------------------

// MAggregatedEntity is one row of a spend breakdown: a grouping value
// (state code, agency name, or NAICS code) with year buckets and totals.
// Total equals the sum of years[*].TotalAmount and ContractCount the sum of
// years[*].ContractCount.
type MAggregatedEntity struct {
	Name          string              `json:"name"`
	StateName     string              `json:"state_name,omitempty"`
	NaicsTitle    string              `json:"naics_title,omitempty"`
	SubTier       string              `json:"sub_tier,omitempty"`
	Years         map[int]MYearBucket `json:"years"`
	Total         float64             `json:"total"`
	ContractCount int                 `json:"contract_count"`
}

// -----------------------------------------------------------------------------

// MSpendReport is the aggregation output handed to the presentation layer.
// Total is the distinct entity count before any limit truncation.
type MSpendReport struct {
	Data      []MAggregatedEntity `json:"data"`
	Total     int                 `json:"total"`
	IsLimited bool                `json:"isLimited"`
	GroupBy   string              `json:"groupBy"`
}

// -----------------------------------------------------------------------------

// MContractorSummary is one awardee rollup row (contractor analytics view).
type MContractorSummary struct {
	Awardee      string  `json:"awardee"`
	State        string  `json:"state"`
	City         string  `json:"city"`
	AwardCount   int     `json:"award_count"`
	TotalAwards  float64 `json:"total_awards"`
	AvgAwardSize float64 `json:"avg_award_size"`
	FirstAward   string  `json:"first_award"`
	LastAward    string  `json:"last_award"`
}
