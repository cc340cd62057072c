package models

// MRefreshNotice is the payload pushed to websocket dashboards after a data
// load: how the import went plus a small top-spend snapshot so clients can
// redraw without an extra round trip.
type MRefreshNotice struct {
	Type          string              `json:"type"` // INITIAL | REFRESH
	LoadedRecords int                 `json:"loaded_records"`
	SkippedRows   int                 `json:"skipped_rows"`
	TopSpend      []MAggregatedEntity `json:"top_spend"`
	Timestamp     int64               `json:"timestamp"`
}
