package interfaces

import "contract-observer/src/models"

// -----------------------------------------------------------------------------
// IContractStore defines the contract for the record store backends.
// -----------------------------------------------------------------------------

type IContractStore interface {

	// -----------------------------------------------------------------------------

	// Initialize sets up the database schema and tables.
	Initialize() error

	// -----------------------------------------------------------------------------

	// SaveContractsBulk inserts a batch of contract rows.
	SaveContractsBulk(contracts []models.MContract) error

	// -----------------------------------------------------------------------------

	// CountContracts returns how many rows match the filters.
	CountContracts(filters models.MContractFilters) (int, error)

	// -----------------------------------------------------------------------------

	// FetchContracts returns one window of rows matching the filters,
	// ordered by the filters' sort column. Geography is NOT filtered here;
	// radius constraints are applied in memory by the query layer.
	FetchContracts(filters models.MContractFilters, limit, offset int) ([]models.MContract, error)

	// -----------------------------------------------------------------------------

	// FetchSpendRecords returns every row qualifying for spend aggregation
	// (positive award amount and a posted date), optionally narrowed by
	// state / agency / NAICS-prefix filters.
	FetchSpendRecords(filters models.MSpendFilters) ([]models.MContract, error)

	// -----------------------------------------------------------------------------

	// DistinctFilterValues lists the distinct values for the filter widgets.
	DistinctFilterValues() (*models.MFilterOptions, error)

	// -----------------------------------------------------------------------------

	// ContractorAnalytics rolls contracts up by awardee.
	ContractorAnalytics(search, dateFrom, dateTo string, page, limit int) (*models.MContractorReport, error)

	// -----------------------------------------------------------------------------

	// Close the database connection
	Close() error
}
