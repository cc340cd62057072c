package geo

import (
	"strings"

	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------
// Resolver
// -----------------------------------------------------------------------------

// Resolver maps a record's city/state to an approximate coordinate and tests
// records against radius queries. The tables are immutable after construction,
// so a single Resolver is safe for concurrent use across requests.
type Resolver struct {
	cities map[string]models.MGeoPoint // "CITY,ST" uppercase
	states map[string]models.MGeoPoint // two-letter code uppercase
}

// -----------------------------------------------------------------------------

// NewResolver builds a Resolver over explicit coordinate tables.
func NewResolver(cities, states map[string]models.MGeoPoint) *Resolver {
	return &Resolver{cities: cities, states: states}
}

// -----------------------------------------------------------------------------

// DefaultResolver uses the bundled city and state-centroid tables.
func DefaultResolver() *Resolver {
	return NewResolver(cityCoordinates, stateCoordinates)
}

// -----------------------------------------------------------------------------

// ResolveCoordinates returns a best-effort coordinate for a location.
// An exact "CITY,ST" hit wins; otherwise the state centroid; a record whose
// city is not in the table silently degrades to its state's centroid.
// Without a state there is nothing to resolve.
func (r *Resolver) ResolveCoordinates(city, state string) (models.MGeoPoint, bool) {
	state = strings.ToUpper(strings.TrimSpace(state))
	if state == "" {
		return models.MGeoPoint{}, false
	}

	if city = strings.ToUpper(strings.TrimSpace(city)); city != "" {
		if pt, ok := r.cities[city+","+state]; ok {
			return pt, true
		}
	}

	pt, ok := r.states[state]
	return pt, ok
}

// -----------------------------------------------------------------------------

// WithinRadius reports whether a record at city/state falls inside the radius
// query. Unlocatable records never match; exclusion is the conservative
// default, not an error.
func (r *Resolver) WithinRadius(city, state string, q models.MRadiusQuery) bool {
	pt, ok := r.ResolveCoordinates(city, state)
	if !ok {
		return false
	}
	return DistanceMiles(pt, q.Center) <= q.RadiusMiles
}
