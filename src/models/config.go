package models

// MConfig Structure
type MConfig struct {
	Name      string           `yaml:"name"`
	Host      string           `yaml:"host"`
	Port      int              `yaml:"port"`
	LogLevel  string           `yaml:"log_level"`
	Storage   MStorageConfig   `yaml:"storage"`
	Network   MNetworkConfig   `yaml:"network"`
	Ingest    MIngestConfig    `yaml:"ingest"`
	Analytics MAnalyticsConfig `yaml:"analytics"`
}

type MStorageConfig struct {
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
}

type MNetworkConfig struct {
	Enabled            bool     `yaml:"enabled"`
	Proxies            []string `yaml:"proxies"`
	RequestTimeout     int      `yaml:"timeout"`
	MaxRetries         int      `yaml:"retries"`
	ConcurrentRequests int      `yaml:"concurrent_requests"`
	UserAgent          string   `yaml:"user_agent"`
}

type MIngestConfig struct {
	// Source is a local CSV path or an http(s) URL of a SAM.gov-style export.
	Source    string `yaml:"source"`
	BatchSize int    `yaml:"batch_size"`
}

type MAnalyticsConfig struct {
	DefaultLimit int `yaml:"default_limit"`
	// OversampleFactor inflates the fetch batch during radius searches to
	// compensate for rows dropped by the in-memory geo filter.
	OversampleFactor int `yaml:"oversample_factor"`
}
