package models

// MContractFilters mirrors the contract search query parameters.
// Zero values mean "not filtered".
type MContractFilters struct {
	Keyword              string `json:"keyword"`
	Type                 string `json:"type"`
	DepartmentAgency     string `json:"department_agency"`
	SubTier              string `json:"sub_tier"`
	SetAside             string `json:"set_aside"`
	NaicsCode            string `json:"naics_code"` // prefix match
	State                string `json:"state"`
	City                 string `json:"city"`
	PostedDateFrom       string `json:"posted_date_from"`
	PostedDateTo         string `json:"posted_date_to"`
	ResponseDeadlineFrom string `json:"response_deadline_from"`
	ResponseDeadlineTo   string `json:"response_deadline_to"`
	HasAwardAmount       bool   `json:"has_award_amount"`
	SortBy               string `json:"sort_by"`
	SortOrder            string `json:"sort_order"` // asc | desc
}

// -----------------------------------------------------------------------------

// MSpendFilters narrows which rows feed the spend aggregation.
// NaicsPrefixes are matched as code prefixes (hierarchical NAICS).
type MSpendFilters struct {
	States        []string `json:"states"`
	Agencies      []string `json:"agencies"`
	NaicsPrefixes []string `json:"naics_prefixes"`
}

// -----------------------------------------------------------------------------

// MSearchResult is one page of contract search output.
// Total is the store-side count of rows matching the SQL filters; with a
// radius constraint the geo filter runs after the fetch, so Total stays the
// unfiltered count and Exhausted tells short pages apart: true means the
// store ran out of candidate rows, false means the page quota was met.
type MSearchResult struct {
	Contracts  []MContract `json:"contracts"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalPages int         `json:"total_pages"`
	Exhausted  bool        `json:"exhausted"`
}

// -----------------------------------------------------------------------------

// MFilterOptions lists the distinct values driving the search filter widgets.
type MFilterOptions struct {
	Types      []string `json:"types"`
	Agencies   []string `json:"agencies"`
	SubTiers   []string `json:"subTiers"`
	SetAsides  []string `json:"setAsides"`
	NaicsCodes []string `json:"naicsCodes"`
	States     []string `json:"states"`
	Cities     []string `json:"cities"`
}

// -----------------------------------------------------------------------------

// MContractorReport is one page of the contractor analytics view.
type MContractorReport struct {
	Contractors []MContractorSummary `json:"contractors"`
	TotalCount  int                  `json:"totalCount"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	TotalPages  int                  `json:"totalPages"`
}
