package interfaces

import "contract-observer/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger defining the interface for sharing data with external systems (Server/Push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {
	// -----------------------------------------------------------------------------
	// Broadcast pushes a refresh notice to connected listeners.
	Broadcast(notice *models.MRefreshNotice)

	// -----------------------------------------------------------------------------
	// UpdateState replaces the cached notice sent to newly connected clients.
	UpdateState(notice *models.MRefreshNotice)

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
