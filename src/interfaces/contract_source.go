package interfaces

import "contract-observer/src/models"

// -----------------------------------------------------------------------------
// IContractSource interface for loading contract data from external exports.
// -----------------------------------------------------------------------------

type IContractSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// Load retrieves the full export and parses it into contract rows.
	// Malformed rows are skipped, not fatal; the count of skipped rows is
	// returned alongside the parsed records.
	Load() ([]models.MContract, int, error)
}
