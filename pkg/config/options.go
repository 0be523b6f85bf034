package config

import (
	"path/filepath"
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabasePath sets the location of the SQLite catalogue file.
func OptDatabasePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Path", s) {
			c.Database.Path = filepath.Clean(s)
		}
	}
}

// OptDatabaseDriver sets the database/sql driver name.
// Valid values: "sqlite", "sqlite3".
func OptDatabaseDriver(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.Driver", s) {
			c.Database.Driver = s
		}
	}
}

// OptDatabaseBackupSuffix sets the suffix of the backup file.
func OptDatabaseBackupSuffix(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Backup Suffix", s) {
			c.Database.BackupSuffix = s
		}
	}
}

// OptSchemaVersion sets the pinned schema version.
func OptSchemaVersion(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "v")
	return func(c *Config) {
		if isValidString("Schema Version", s) {
			c.Schema.Version = s
		}
	}
}

// OptSchemaSQLURL sets the location of the SQL schema script.
func OptSchemaSQLURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Schema SQL URL", s) {
			c.Schema.SQLURL = s
		}
	}
}

// OptSchemaFieldsURL sets the location of the field schema document.
func OptSchemaFieldsURL(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Schema Fields URL", s) {
			c.Schema.FieldsURL = s
		}
	}
}

// OptSchemaEncoding sets the text encoding of remote documents.
// Empty value means UTF-8.
func OptSchemaEncoding(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		c.Schema.Encoding = s
	}
}

// OptSchemaWhitelist sets structural keys of the field document that
// are not metadata fields.
func OptSchemaWhitelist(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Schema.Whitelist = ss
		}
	}
}

// OptAssaysProjectRoot sets the root of the project tree.
func OptAssaysProjectRoot(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Assays Project Root", s) {
			c.Assays.ProjectRoot = filepath.Clean(s)
		}
	}
}

// OptAssaysDir sets the subdirectory of the project root that holds
// assay directories.
func OptAssaysDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Assays Dir", s) {
			c.Assays.Dir = s
		}
	}
}

// OptAssaysFiles sets metadata file names in the order they are merged.
func OptAssaysFiles(ss []string) Option {
	return func(c *Config) {
		var res []string
		for _, s := range ss {
			s = strings.TrimSpace(s)
			if s != "" {
				res = append(res, s)
			}
		}
		if len(res) > 0 {
			c.Assays.Files = res
		}
	}
}

// OptPopulateCorrections sets corrections applied to the users table.
// Corrections without a name or department are ignored.
func OptPopulateCorrections(cs []UserCorrection) Option {
	return func(c *Config) {
		res := make([]UserCorrection, 0, len(cs))
		for _, v := range cs {
			v.Name = strings.TrimSpace(v.Name)
			v.Department = strings.TrimSpace(v.Department)
			if isValidString("Correction Name", v.Name) &&
				isValidString("Correction Department", v.Department) {
				res = append(res, v)
			}
		}
		c.Populate.Corrections = res
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

// OptHomeDir sets the home directory for config and log locations.
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
