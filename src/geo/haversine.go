package geo

import (
	"math"

	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------

// Earth radius in miles.
const earthRadiusMiles = 3959.0

// -----------------------------------------------------------------------------

// DistanceMiles computes the great-circle distance between two points using
// the haversine formula. Symmetric, non-negative, and zero for equal points.
func DistanceMiles(a, b models.MGeoPoint) float64 {
	dLat := toRad(b.Latitude - a.Latitude)
	dLon := toRad(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Latitude))*math.Cos(toRad(b.Latitude))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusMiles * c
}

// -----------------------------------------------------------------------------

func toRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}
