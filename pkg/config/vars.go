package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gncamtrap"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gncamtrap by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gncamtrap by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gncamtrap/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gncamtrap/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// TaxonomyPath returns the configured taxonomy file, or
// ~/.config/gncamtrap/taxonomy_release.txt if it is not set.
func (c *Config) TaxonomyPath() string {
	if c.Ensemble.TaxonomyPath != "" {
		return c.Ensemble.TaxonomyPath
	}
	return filepath.Join(ConfigDir(c.HomeDir), "taxonomy_release.txt")
}

// GeofencePath returns the configured geofence file, or
// ~/.config/gncamtrap/geofence_release.json if it is not set.
func (c *Config) GeofencePath() string {
	if c.Ensemble.GeofencePath != "" {
		return c.Ensemble.GeofencePath
	}
	return filepath.Join(ConfigDir(c.HomeDir), "geofence_release.json")
}

// SQLitePath returns the configured SQLite file, or
// ~/.cache/gncamtrap/gncamtrap.sqlite if it is not set.
func (c *Config) SQLitePath() string {
	if c.Output.SQLitePath != "" {
		return c.Output.SQLitePath
	}
	return filepath.Join(CacheDir(c.HomeDir), AppName+".sqlite")
}
