package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-observer/src/helpers"
	"contract-observer/src/models"
)

func amount(v float64) *float64 { return &v }

func contract(state, agency, naics, posted string, award *float64) models.MContract {
	return models.MContract{
		State:            state,
		DepartmentAgency: agency,
		NaicsCode:        naics,
		PostedDate:       posted,
		AwardAmount:      award,
	}
}

func newAnalyzer() *SpendAnalyzer {
	return NewSpendAnalyzer(&models.MConfig{}, nil)
}

// -----------------------------------------------------------------------------

func TestParseAggregationKey(t *testing.T) {
	cases := []struct {
		in      string
		want    AggregationKey
		wantErr bool
	}{
		{"", KeyGeography, false},
		{"geography", KeyGeography, false},
		{"agency", KeyAgency, false},
		{"naics", KeyNaics, false},
		{"awardee", "", true},
		{"GEOGRAPHY", "", true},
	}

	for _, tc := range cases {
		got, err := ParseAggregationKey(tc.in)
		if tc.wantErr {
			require.Error(t, err, "input %q", tc.in)
			var vErr *helpers.ValidationError
			assert.ErrorAs(t, err, &vErr)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func TestAggregateGeographyScenario(t *testing.T) {
	records := []models.MContract{
		contract("VA", "", "", "2020-03-01", amount(1_000_000)),
		contract("VA", "", "", "2020-06-01", amount(500_000)),
		contract("CA", "", "", "2020-01-01", amount(2_000_000)),
	}

	report, err := newAnalyzer().Aggregate(records, KeyGeography, 0)
	require.NoError(t, err)

	require.Len(t, report.Data, 2)
	assert.Equal(t, 2, report.Total)
	assert.False(t, report.IsLimited)
	assert.Equal(t, "geography", report.GroupBy)

	ca, va := report.Data[0], report.Data[1]
	assert.Equal(t, "CA", ca.Name, "CA must rank first by total")
	assert.Equal(t, "California", ca.StateName)
	assert.Equal(t, 2_000_000.0, ca.Total)
	assert.Equal(t, 1, ca.ContractCount)

	assert.Equal(t, "VA", va.Name)
	assert.Equal(t, 1_500_000.0, va.Total)
	assert.Equal(t, 2, va.ContractCount)

	bucket := va.Years[2020]
	assert.Equal(t, 2, bucket.ContractCount)
	assert.Equal(t, 1_500_000.0, bucket.TotalAmount)
	assert.Equal(t, 750_000.0, bucket.AvgAmount)
}

func TestAggregateConservation(t *testing.T) {
	records := []models.MContract{
		contract("VA", "GSA", "541511", "2019-05-01", amount(100)),
		contract("VA", "GSA", "541511", "2020-05-01", amount(250)),
		contract("TX", "DOD", "336411", "2020-07-15", amount(400)),
		contract("TX", "DOD", "336411", "2021-02-01", amount(50)),
		contract("", "DOD", "336411", "2021-02-01", amount(999)),  // no state: excluded for geography
		contract("CA", "NASA", "541330", "2021-03-01", nil),       // nil award: always excluded
		contract("CA", "NASA", "541330", "", amount(777)),         // no posted date: always excluded
		contract("CA", "NASA", "541330", "2021-04-01", amount(0)), // zero award: always excluded
	}

	report, err := newAnalyzer().Aggregate(records, KeyGeography, 0)
	require.NoError(t, err)

	sumTotals := 0.0
	sumCounts := 0
	for _, e := range report.Data {
		sumTotals += e.Total
		sumCounts += e.ContractCount

		yearTotal := 0.0
		yearCount := 0
		for _, b := range e.Years {
			yearTotal += b.TotalAmount
			yearCount += b.ContractCount
			assert.InDelta(t, b.TotalAmount, b.AvgAmount*float64(b.ContractCount), 1e-9)
		}
		assert.InDelta(t, e.Total, yearTotal, 1e-9)
		assert.Equal(t, e.ContractCount, yearCount)
	}

	assert.Equal(t, 800.0, sumTotals, "entity totals must equal the qualifying award sum")
	assert.Equal(t, 4, sumCounts)
}

func TestAggregateExcludesNonQualifying(t *testing.T) {
	records := []models.MContract{
		contract("VA", "GSA", "541511", "2020-01-01", nil),
		contract("VA", "GSA", "541511", "2020-01-01", amount(0)),
		contract("VA", "GSA", "541511", "2020-01-01", amount(-5)),
	}

	for _, key := range []AggregationKey{KeyGeography, KeyAgency, KeyNaics} {
		report, err := newAnalyzer().Aggregate(records, key, 0)
		require.NoError(t, err)
		assert.Empty(t, report.Data, "key %s", key)
		assert.Equal(t, 0, report.Total)
		assert.False(t, report.IsLimited)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	report, err := newAnalyzer().Aggregate(nil, KeyAgency, 10)
	require.NoError(t, err)
	assert.Empty(t, report.Data)
	assert.Equal(t, 0, report.Total)
	assert.False(t, report.IsLimited)
}

func TestAggregateTopNTruncation(t *testing.T) {
	var records []models.MContract
	states := []string{"VA", "CA", "TX", "NY", "FL"}
	for i, s := range states {
		records = append(records, contract(s, "", "", "2022-01-01", amount(float64((i+1)*1000))))
	}

	full, err := newAnalyzer().Aggregate(records, KeyGeography, 0)
	require.NoError(t, err)
	limited, err := newAnalyzer().Aggregate(records, KeyGeography, 3)
	require.NoError(t, err)

	require.Len(t, limited.Data, 3)
	assert.Equal(t, full.Data[:3], limited.Data, "limited result must be a prefix of the full ranking")
	assert.Equal(t, 5, limited.Total)
	assert.True(t, limited.IsLimited)

	atLimit, err := newAnalyzer().Aggregate(records, KeyGeography, 5)
	require.NoError(t, err)
	assert.False(t, atLimit.IsLimited, "limit equal to distinct count is not limited")
}

func TestAggregateDeterministicTieOrder(t *testing.T) {
	records := []models.MContract{
		contract("WY", "", "", "2020-01-01", amount(100)),
		contract("AK", "", "", "2020-01-01", amount(100)),
		contract("MT", "", "", "2020-01-01", amount(100)),
	}

	first, err := newAnalyzer().Aggregate(records, KeyGeography, 0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := newAnalyzer().Aggregate(records, KeyGeography, 0)
		require.NoError(t, err)
		assert.Equal(t, first.Data, again.Data)
	}
	assert.Equal(t, "AK", first.Data[0].Name, "ties break by name ascending")
}

func TestAggregateAgencyCarriesSubTier(t *testing.T) {
	records := []models.MContract{
		{DepartmentAgency: "DEPT OF DEFENSE", SubTier: "DEPT OF THE NAVY", PostedDate: "2021-06-01", AwardAmount: amount(5000)},
		{DepartmentAgency: "DEPT OF DEFENSE", SubTier: "DEPT OF THE ARMY", PostedDate: "2021-07-01", AwardAmount: amount(3000)},
	}

	report, err := newAnalyzer().Aggregate(records, KeyAgency, 0)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)

	e := report.Data[0]
	assert.Equal(t, "DEPT OF DEFENSE", e.Name)
	assert.Equal(t, "DEPT OF THE NAVY", e.SubTier, "first-seen sub_tier rides along")
	assert.Empty(t, e.StateName)
	assert.Empty(t, e.NaicsTitle)
	assert.Equal(t, 8000.0, e.Total)
}

func TestAggregateNaicsTitles(t *testing.T) {
	records := []models.MContract{
		contract("", "", "541511", "2020-01-01", amount(10)),
		contract("", "", "541999", "2020-01-01", amount(20)), // resolves via 54 prefix
	}

	report, err := newAnalyzer().Aggregate(records, KeyNaics, 0)
	require.NoError(t, err)
	require.Len(t, report.Data, 2)

	byName := map[string]models.MAggregatedEntity{}
	for _, e := range report.Data {
		byName[e.Name] = e
	}
	assert.Equal(t, "Custom Computer Programming Services", byName["541511"].NaicsTitle)
	assert.Equal(t, "Professional, Scientific, and Technical Services", byName["541999"].NaicsTitle)
}

func TestAggregateLargeAmountsNoPrecisionLoss(t *testing.T) {
	// Totals in the low billions must sum exactly in float64.
	records := []models.MContract{
		contract("VA", "", "", "2020-01-01", amount(1_250_000_000)),
		contract("VA", "", "", "2021-01-01", amount(2_750_000_000)),
	}

	report, err := newAnalyzer().Aggregate(records, KeyGeography, 0)
	require.NoError(t, err)
	require.Len(t, report.Data, 1)
	assert.True(t, math.Abs(report.Data[0].Total-4_000_000_000) < 1e-6)
}
