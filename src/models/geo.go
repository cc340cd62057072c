package models

// MGeoPoint is an immutable coordinate in finite degrees.
type MGeoPoint struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// -----------------------------------------------------------------------------

// MRadiusQuery is a center point plus a maximum great-circle distance.
// Constructed by the caller and never mutated by the core.
type MRadiusQuery struct {
	Center      MGeoPoint `json:"center"`
	RadiusMiles float64   `json:"radius_miles"` // must be positive
}
