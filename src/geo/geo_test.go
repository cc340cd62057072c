package geo

import (
	"math"
	"testing"

	"contract-observer/src/models"
)

var (
	dcPoint  = models.MGeoPoint{Latitude: 38.9072, Longitude: -77.0369}
	nycPoint = models.MGeoPoint{Latitude: 40.7128, Longitude: -74.0060}
	laPoint  = models.MGeoPoint{Latitude: 34.0522, Longitude: -118.2437}
)

func TestDistanceMilesSymmetry(t *testing.T) {
	pairs := []struct {
		name string
		a, b models.MGeoPoint
	}{
		{"dc-nyc", dcPoint, nycPoint},
		{"dc-la", dcPoint, laPoint},
		{"antipodal-ish", models.MGeoPoint{Latitude: 0, Longitude: 0}, models.MGeoPoint{Latitude: 0, Longitude: 180}},
	}

	for _, tc := range pairs {
		t.Run(tc.name, func(t *testing.T) {
			ab := DistanceMiles(tc.a, tc.b)
			ba := DistanceMiles(tc.b, tc.a)
			if math.Abs(ab-ba) > 1e-9 {
				t.Fatalf("DistanceMiles not symmetric: %v vs %v", ab, ba)
			}
			if ab < 0 {
				t.Fatalf("DistanceMiles negative: %v", ab)
			}
			if ab > 12451 {
				t.Fatalf("DistanceMiles exceeds half circumference: %v", ab)
			}
		})
	}
}

func TestDistanceMilesIdentity(t *testing.T) {
	if d := DistanceMiles(dcPoint, dcPoint); d != 0 {
		t.Fatalf("DistanceMiles(a,a) = %v; want 0", d)
	}
}

func TestDistanceMilesDCToNYC(t *testing.T) {
	d := DistanceMiles(dcPoint, nycPoint)
	if d < 199 || d > 209 {
		t.Fatalf("DC-NYC distance = %v; want ~204 +/- 5", d)
	}
}

func TestResolveCoordinates(t *testing.T) {
	r := DefaultResolver()

	cases := []struct {
		name    string
		city    string
		state   string
		wantOK  bool
		wantLat float64
		wantLng float64
	}{
		{"known city", "Washington", "DC", true, 38.9072, -77.0369},
		{"known city lowercase", "seattle", "wa", true, 47.6062, -122.3321},
		{"unknown city falls back to state centroid", "Roanoke", "VA", true, 37.4316, -78.6569},
		{"state only", "", "TX", true, 31.9686, -99.9018},
		{"no state", "Chicago", "", false, 0, 0},
		{"unknown state", "Springfield", "ZZ", false, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt, ok := r.ResolveCoordinates(tc.city, tc.state)
			if ok != tc.wantOK {
				t.Fatalf("ResolveCoordinates(%q,%q) ok = %v; want %v", tc.city, tc.state, ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if math.Abs(pt.Latitude-tc.wantLat) > 0.01 || math.Abs(pt.Longitude-tc.wantLng) > 0.01 {
				t.Fatalf("ResolveCoordinates(%q,%q) = %+v; want (%v,%v)", tc.city, tc.state, pt, tc.wantLat, tc.wantLng)
			}
		})
	}
}

func TestWithinRadius(t *testing.T) {
	r := DefaultResolver()
	fromDC := models.MRadiusQuery{Center: dcPoint, RadiusMiles: 250}

	if !r.WithinRadius("New York", "NY", fromDC) {
		t.Fatal("NYC should be within 250 miles of DC")
	}
	if r.WithinRadius("Los Angeles", "CA", fromDC) {
		t.Fatal("LA should not be within 250 miles of DC")
	}
}

func TestWithinRadiusMonotonicity(t *testing.T) {
	r := DefaultResolver()

	for radius := 210.0; radius <= 1000; radius += 100 {
		q := models.MRadiusQuery{Center: dcPoint, RadiusMiles: radius}
		if !r.WithinRadius("New York", "NY", q) {
			t.Fatalf("match at radius 210 must hold at larger radius %v", radius)
		}
	}
}

func TestWithinRadiusUnresolvableExcluded(t *testing.T) {
	r := DefaultResolver()

	// No state can never match, regardless of radius.
	huge := models.MRadiusQuery{Center: dcPoint, RadiusMiles: 1e9}
	if r.WithinRadius("Arlington", "", huge) {
		t.Fatal("record without a state must never match a radius filter")
	}
}
