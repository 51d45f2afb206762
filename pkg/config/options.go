package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of prediction records saved per batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptEnsembleTaxonomyPath sets the file with classifier labels.
func OptEnsembleTaxonomyPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Taxonomy Path", s) {
			c.Ensemble.TaxonomyPath = s
		}
	}
}

// OptEnsembleGeofencePath sets the JSON file with geofence rules.
func OptEnsembleGeofencePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Geofence Path", s) {
			c.Ensemble.GeofencePath = s
		}
	}
}

// OptEnsembleGeofenceFixPath sets the CSV file with fixes of geofence rules.
func OptEnsembleGeofenceFixPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Geofence Fix Path", s) {
			c.Ensemble.GeofenceFixPath = s
		}
	}
}

// OptEnsembleGeofenceEnabled turns geofencing on or off.
func OptEnsembleGeofenceEnabled(b bool) Option {
	return func(c *Config) {
		c.Ensemble.GeofenceEnabled = b
	}
}

// OptEnsembleCountry sets a default ISO-3166-1 alpha-3 country code for
// images without a country. Codes are converted to upper case.
// Runtime-only field - not in ToOptions().
func OptEnsembleCountry(s string) Option {
	s = strings.ToUpper(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidString("Country", s) {
			c.Ensemble.Country = s
		}
	}
}

// OptEnsembleAdmin1Region sets a default first-level administrative
// region. It is used only together with a country.
// Runtime-only field - not in ToOptions().
func OptEnsembleAdmin1Region(s string) Option {
	s = strings.ToUpper(strings.TrimSpace(s))
	return func(c *Config) {
		if isValidString("Admin1 Region", s) {
			c.Ensemble.Admin1Region = s
		}
	}
}

// OptOutputFormat sets the format of output.
// Valid values: "csv", "tsv", "compact", "pretty".
func OptOutputFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Format", s) {
			c.Output.Format = s
		}
	}
}

// OptOutputStore sets where prediction records are saved.
// Valid values: "none", "sqlite", "postgres".
func OptOutputStore(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Store", s) {
			c.Output.Store = s
		}
	}
}

// OptOutputSQLitePath sets the SQLite file for the 'sqlite' store.
func OptOutputSQLitePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("SQLite Path", s) {
			c.Output.SQLitePath = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for parallel operations.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
