package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

const validYAML = `
name: contract-observer
host: 0.0.0.0
port: 8000
log_level: DEBUG
storage:
  db_type: sqlite
  db_path: contracts.db
network:
  timeout: 30
  retries: 3
ingest:
  source: data/contracts.csv
`

// -----------------------------------------------------------------------------

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// -----------------------------------------------------------------------------

func TestNewConfigValid(t *testing.T) {
	cfg, err := NewConfig(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "contract-observer", cfg.Name)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "sqlite", cfg.Storage.DBType)
	assert.Equal(t, "contracts.db", cfg.Storage.DBPath)

	// Defaults fill in what the file omits.
	assert.Equal(t, 1000, cfg.Ingest.BatchSize)
	assert.Equal(t, 25, cfg.Analytics.DefaultLimit)
	assert.Equal(t, 10, cfg.Analytics.OversampleFactor)
}

// -----------------------------------------------------------------------------

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing name", `
host: 0.0.0.0
port: 8000
storage: {db_type: sqlite, db_path: c.db}
network: {timeout: 30}
ingest: {source: data.csv}
`},
		{"privileged port", `
name: x
host: 0.0.0.0
port: 80
storage: {db_type: sqlite, db_path: c.db}
network: {timeout: 30}
ingest: {source: data.csv}
`},
		{"unsupported db type", `
name: x
host: 0.0.0.0
port: 8000
storage: {db_type: mongodb}
network: {timeout: 30}
ingest: {source: data.csv}
`},
		{"postgres without dsn", `
name: x
host: 0.0.0.0
port: 8000
storage: {db_type: postgres}
network: {timeout: 30}
ingest: {source: data.csv}
`},
		{"missing ingest source", `
name: x
host: 0.0.0.0
port: 8000
storage: {db_type: sqlite, db_path: c.db}
network: {timeout: 30}
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConfig(writeConfig(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}

// -----------------------------------------------------------------------------

func TestEnvOverride(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env-wins")

	yaml := `
name: x
host: 0.0.0.0
port: 8000
storage: {db_type: postgres, db_connection_string: "postgres://file"}
network: {timeout: 30}
ingest: {source: data.csv}
`
	cfg, err := NewConfig(writeConfig(t, yaml))
	require.NoError(t, err)
	assert.Equal(t, "postgres://env-wins", cfg.Storage.DBConnectionString)
}
