package core

import (
	"sort"
	"strings"
	"time"

	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------

// GroupSpec parameterizes the grouping pass with a field accessor and an
// annotator that fills display metadata when an entity is first seen. One
// spec per aggregation dimension keeps a single copy of the fold loop.
type GroupSpec struct {
	Field    func(c models.MContract) string
	Annotate func(e *models.MAggregatedEntity, c models.MContract)
}

// -----------------------------------------------------------------------------

// Aggregate folds contract rows into year-bucketed entities keyed by the
// spec's field. Rows with an empty group value, a missing or non-positive
// award amount, or no posted date contribute to no bucket. The result is
// sorted by descending total, ties broken by name, so top-N snapshots are
// reproducible.
func Aggregate(records []models.MContract, spec GroupSpec) []models.MAggregatedEntity {
	entities := make(map[string]*models.MAggregatedEntity)

	for _, c := range records {
		group := strings.TrimSpace(spec.Field(c))
		if group == "" || !c.HasAward() {
			continue
		}
		year, ok := PostedYear(c.PostedDate)
		if !ok {
			continue
		}

		e, seen := entities[group]
		if !seen {
			e = &models.MAggregatedEntity{
				Name:  group,
				Years: make(map[int]models.MYearBucket),
			}
			if spec.Annotate != nil {
				spec.Annotate(e, c)
			}
			entities[group] = e
		}

		bucket := e.Years[year]
		bucket.ContractCount++
		bucket.TotalAmount += *c.AwardAmount
		e.Years[year] = bucket

		e.Total += *c.AwardAmount
		e.ContractCount++
	}

	out := make([]models.MAggregatedEntity, 0, len(entities))
	for _, e := range entities {
		// Averages are derived from the two summed quantities after the
		// fold; incremental averaging would drift.
		for year, bucket := range e.Years {
			bucket.AvgAmount = bucket.TotalAmount / float64(bucket.ContractCount)
			e.Years[year] = bucket
		}
		out = append(out, *e)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Total == out[j].Total {
			return out[i].Name < out[j].Name
		}
		return out[i].Total > out[j].Total
	})
	return out
}

// -----------------------------------------------------------------------------

// PostedYear extracts the UTC calendar year from a stored date string.
// Accepts the ISO date and timestamp shapes the import produces.
func PostedYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	layouts := []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Year(), true
		}
	}
	return 0, false
}
