// Package config provides configuration management for GNcamtrap.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Ensemble: taxonomy_path, geofence_path, geofence_fix_path,
//     geofence_enabled
//   - Output: format, store, sqlite_path
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Ensemble.Country, Ensemble.Admin1Region (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNCAMTRAP_ prefix with underscores for nesting:
//
//	GNCAMTRAP_ENSEMBLE_TAXONOMY_PATH=/data/taxonomy_release.txt
//	GNCAMTRAP_ENSEMBLE_GEOFENCE_ENABLED=false
//	GNCAMTRAP_OUTPUT_FORMAT=csv
//	GNCAMTRAP_DATABASE_HOST=localhost
//	GNCAMTRAP_LOG_LEVEL=info
//	GNCAMTRAP_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete GNcamtrap configuration.
type Config struct {
	// Ensemble contains settings of the prediction ensemble.
	Ensemble EnsembleConfig `mapstructure:"ensemble" yaml:"ensemble"`

	// Output determines how predictions are written and stored.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Database contains PostgreSQL connection settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel operations.
	// Default value is set accoring to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string `yaml:"-"`
}

// EnsembleConfig contains locations of taxonomy and geofence data, and
// settings of geofencing.
type EnsembleConfig struct {
	// TaxonomyPath is a file with one classifier label per line.
	// If empty, taxonomy_release.txt from the config directory is used.
	TaxonomyPath string `mapstructure:"taxonomy_path" yaml:"taxonomy_path"`

	// GeofencePath is a JSON file with geofence rules.
	// If empty, geofence_release.json from the config directory is used.
	GeofencePath string `mapstructure:"geofence_path" yaml:"geofence_path"`

	// GeofenceFixPath is an optional CSV file with manual fixes of
	// geofence rules.
	GeofenceFixPath string `mapstructure:"geofence_fix_path" yaml:"geofence_fix_path"`

	// GeofenceEnabled turns geographic constraints on or off.
	GeofenceEnabled bool `mapstructure:"geofence_enabled" yaml:"geofence_enabled"`

	// Country is an ISO-3166-1 alpha-3 code used for images that have no
	// country of their own. Runtime-only.
	Country string `yaml:"-"`

	// Admin1Region is a first-level administrative region used together
	// with Country. Runtime-only.
	Admin1Region string `yaml:"-"`
}

// OutputConfig determines the format of output and where predictions are
// stored.
type OutputConfig struct {
	// Format can be 'csv', 'tsv', 'compact' (JSON) or 'pretty' (JSON).
	Format string `mapstructure:"format" yaml:"format"`

	// Store can be 'none', 'sqlite' or 'postgres'.
	Store string `mapstructure:"store" yaml:"store"`

	// SQLitePath is the SQLite file used when Store is 'sqlite'.
	// If empty, gncamtrap.sqlite from the cache directory is used.
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of prediction records saved per batch.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Ensemble: EnsembleConfig{
			GeofenceEnabled: true,
		},
		Output: OutputConfig{
			Format: "pretty",
			Store:  "none",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gncamtrap",
			SSLMode:   "disable",
			BatchSize: 5_000,
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
