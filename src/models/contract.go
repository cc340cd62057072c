package models

// MContract represents one procurement notice row as stored.
// Nullable columns map to pointer / empty-string fields: an empty string means
// the source had no value, and a nil AwardAmount means no award was recorded.
type MContract struct {
	ID               int64    `json:"id"`
	NoticeID         string   `json:"notice_id"`
	Title            string   `json:"title"`
	SolNumber        string   `json:"solicitation_number"`
	DepartmentAgency string   `json:"department_agency"`
	SubTier          string   `json:"sub_tier"`
	Office           string   `json:"office"`
	PostedDate       string   `json:"posted_date"`       // ISO date (YYYY-MM-DD) or empty
	Type             string   `json:"type"`
	SetAside         string   `json:"set_aside"`
	SetAsideCode     string   `json:"set_aside_code"`
	ResponseDeadline string   `json:"response_deadline"` // ISO date or empty
	NaicsCode        string   `json:"naics_code"`
	AwardAmount      *float64 `json:"award_amount"`
	AwardDate        string   `json:"award_date"`
	Awardee          string   `json:"awardee"`
	State            string   `json:"state"`
	City             string   `json:"city"`
	ZipCode          string   `json:"zip_code"`
	CountryCode      string   `json:"country_code"`
	Description      string   `json:"description"`
	Link             string   `json:"link"`
}

// -----------------------------------------------------------------------------

// HasAward reports whether the row carries a positive award amount.
func (c *MContract) HasAward() bool {
	return c.AwardAmount != nil && *c.AwardAmount > 0
}
