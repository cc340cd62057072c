package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-observer/src/geo"
	"contract-observer/src/models"
)

// fakeStore serves canned rows through the IContractStore fetch window and
// records how many fetches the search loop issued.
type fakeStore struct {
	rows    []models.MContract
	fetches int
}

func (f *fakeStore) Initialize() error                                   { return nil }
func (f *fakeStore) SaveContractsBulk(contracts []models.MContract) error { return nil }
func (f *fakeStore) Close() error                                        { return nil }

func (f *fakeStore) CountContracts(filters models.MContractFilters) (int, error) {
	return len(f.rows), nil
}

func (f *fakeStore) FetchContracts(filters models.MContractFilters, limit, offset int) ([]models.MContract, error) {
	f.fetches++
	if offset >= len(f.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.rows) {
		end = len(f.rows)
	}
	return f.rows[offset:end], nil
}

func (f *fakeStore) FetchSpendRecords(filters models.MSpendFilters) ([]models.MContract, error) {
	return f.rows, nil
}

func (f *fakeStore) DistinctFilterValues() (*models.MFilterOptions, error) {
	return &models.MFilterOptions{}, nil
}

func (f *fakeStore) ContractorAnalytics(search, dateFrom, dateTo string, page, limit int) (*models.MContractorReport, error) {
	return &models.MContractorReport{}, nil
}

// -----------------------------------------------------------------------------

func dcRadius(miles float64) *models.MRadiusQuery {
	return &models.MRadiusQuery{
		Center:      models.MGeoPoint{Latitude: 38.9072, Longitude: -77.0369},
		RadiusMiles: miles,
	}
}

func rowsOf(locations ...[2]string) []models.MContract {
	out := make([]models.MContract, len(locations))
	for i, loc := range locations {
		out[i] = models.MContract{City: loc[0], State: loc[1]}
	}
	return out
}

func newService(store *fakeStore, oversample int) *SearchService {
	return NewSearchService(store, geo.DefaultResolver(), nil, oversample)
}

// -----------------------------------------------------------------------------

func TestSearchWithoutRadius(t *testing.T) {
	store := &fakeStore{rows: rowsOf(
		[2]string{"Washington", "DC"},
		[2]string{"Seattle", "WA"},
		[2]string{"Miami", "FL"},
	)}

	res, err := newService(store, 10).Search(context.Background(), models.MContractFilters{}, 1, 2, nil)
	require.NoError(t, err)

	assert.Len(t, res.Contracts, 2)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.TotalPages)
	assert.False(t, res.Exhausted)
	assert.Equal(t, 1, store.fetches)
}

func TestRadiusSearchFillsPageAcrossBatches(t *testing.T) {
	// 1 DC match per 5 rows; oversample 2 with limit 2 gives batch 4, so the
	// loop must advance the offset at least once to fill the page.
	var rows []models.MContract
	for i := 0; i < 20; i++ {
		if i%5 == 0 {
			rows = append(rows, models.MContract{City: "Washington", State: "DC"})
		} else {
			rows = append(rows, models.MContract{City: "Los Angeles", State: "CA"})
		}
	}
	store := &fakeStore{rows: rows}

	res, err := newService(store, 2).Search(context.Background(), models.MContractFilters{}, 1, 2, dcRadius(50))
	require.NoError(t, err)

	require.Len(t, res.Contracts, 2)
	for _, c := range res.Contracts {
		assert.Equal(t, "DC", c.State)
	}
	assert.False(t, res.Exhausted, "quota met, not a short page")
	assert.GreaterOrEqual(t, store.fetches, 2, "loop must have advanced past the first batch")
}

func TestRadiusSearchSignalsExhaustion(t *testing.T) {
	store := &fakeStore{rows: rowsOf(
		[2]string{"Washington", "DC"},
		[2]string{"Los Angeles", "CA"},
		[2]string{"Seattle", "WA"},
	)}

	res, err := newService(store, 10).Search(context.Background(), models.MContractFilters{}, 1, 5, dcRadius(50))
	require.NoError(t, err)

	assert.Len(t, res.Contracts, 1)
	assert.True(t, res.Exhausted, "store ran out before the page filled")
}

func TestRadiusSearchExcludesUnresolvable(t *testing.T) {
	store := &fakeStore{rows: rowsOf(
		[2]string{"Somewhere", ""},
		[2]string{"Washington", "DC"},
	)}

	res, err := newService(store, 10).Search(context.Background(), models.MContractFilters{}, 1, 5, dcRadius(1_000_000))
	require.NoError(t, err)

	require.Len(t, res.Contracts, 1)
	assert.Equal(t, "DC", res.Contracts[0].State)
}

func TestRadiusSearchHonorsContext(t *testing.T) {
	store := &fakeStore{rows: rowsOf([2]string{"Washington", "DC"})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newService(store, 10).Search(ctx, models.MContractFilters{}, 1, 5, dcRadius(50))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchDefaultsPageAndLimit(t *testing.T) {
	store := &fakeStore{}
	res, err := newService(store, 0).Search(context.Background(), models.MContractFilters{}, 0, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, defaultPageLimit, res.Limit)
	assert.NotNil(t, res.Contracts)
}
