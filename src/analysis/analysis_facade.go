package analysis

import (
	"contract-observer/src/analysis/core"
	"contract-observer/src/helpers"
	"contract-observer/src/logger"
	"contract-observer/src/lookup"
	"contract-observer/src/models"
)

// -----------------------------------------------------------------------------
// AggregationKey
// -----------------------------------------------------------------------------

// AggregationKey selects the dimension a spend breakdown is grouped by.
type AggregationKey string

const (
	KeyGeography AggregationKey = "geography" // group by state
	KeyAgency    AggregationKey = "agency"    // group by department/agency
	KeyNaics     AggregationKey = "naics"     // group by industry code
)

// -----------------------------------------------------------------------------

// ParseAggregationKey validates a dimension coming off the wire. An empty
// value defaults to geography; anything outside the closed set is a caller
// bug and fails with a ValidationError.
func ParseAggregationKey(s string) (AggregationKey, error) {
	switch AggregationKey(s) {
	case "":
		return KeyGeography, nil
	case KeyGeography, KeyAgency, KeyNaics:
		return AggregationKey(s), nil
	default:
		return "", helpers.NewValidationError("unknown groupBy %q (want geography, agency, or naics)", s)
	}
}

// -----------------------------------------------------------------------------
// SpendAnalyzer
// -----------------------------------------------------------------------------

type SpendAnalyzer struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSpendAnalyzer(cfg *models.MConfig, log *logger.Logger) *SpendAnalyzer {
	return &SpendAnalyzer{
		Config: cfg,
		Logger: log,
	}
}

// -----------------------------------------------------------------------------

// Aggregate reshapes flat contract rows into a ranked spend report grouped by
// the given dimension. limit <= 0 returns every entity; otherwise the report
// is truncated to the top limit while Total keeps the full distinct count.
func (a *SpendAnalyzer) Aggregate(records []models.MContract, key AggregationKey, limit int) (*models.MSpendReport, error) {
	spec, err := groupSpecFor(key)
	if err != nil {
		return nil, err
	}

	entities := core.Aggregate(records, spec)

	total := len(entities)
	isLimited := false
	if limit > 0 && total > limit {
		entities = entities[:limit]
		isLimited = true
	}

	return &models.MSpendReport{
		Data:      entities,
		Total:     total,
		IsLimited: isLimited,
		GroupBy:   string(key),
	}, nil
}

// -----------------------------------------------------------------------------

func groupSpecFor(key AggregationKey) (core.GroupSpec, error) {
	switch key {
	case KeyGeography:
		return core.GroupSpec{
			Field: func(c models.MContract) string { return c.State },
			Annotate: func(e *models.MAggregatedEntity, c models.MContract) {
				e.StateName = lookup.StateName(e.Name)
			},
		}, nil
	case KeyAgency:
		// Agencies have no separate label table; sub_tier rides along as
		// auxiliary display metadata. Suppressing a sub_tier equal to the
		// agency name is the presentation layer's call, not ours.
		return core.GroupSpec{
			Field: func(c models.MContract) string { return c.DepartmentAgency },
			Annotate: func(e *models.MAggregatedEntity, c models.MContract) {
				e.SubTier = c.SubTier
			},
		}, nil
	case KeyNaics:
		return core.GroupSpec{
			Field: func(c models.MContract) string { return c.NaicsCode },
			Annotate: func(e *models.MAggregatedEntity, c models.MContract) {
				e.NaicsTitle = lookup.NaicsTitle(e.Name)
			},
		}, nil
	default:
		return core.GroupSpec{}, helpers.NewValidationError("unknown aggregation key %q", string(key))
	}
}
