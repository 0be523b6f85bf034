package config

import (
	"path/filepath"
	"strings"
)

var (
	// AppName is used in generating file system paths.
	AppName = "ngsdb"

	// SchemaVersionKey is the key of the field document that carries
	// its schema version.
	SchemaVersionKey = "__schema_version"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/ngsdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/ngsdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/ngsdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// SchemaSQLURL returns the SQL schema location for the pinned version.
func (c *Config) SchemaSQLURL() string {
	return strings.ReplaceAll(c.Schema.SQLURL, "{version}", c.Schema.Version)
}

// AssaysDir returns the directory that holds one directory per assay.
func (c *Config) AssaysDir() string {
	return filepath.Join(c.Assays.ProjectRoot, c.Assays.Dir)
}

// BackupPath returns where the previous catalogue is moved to.
// The extension of the database file is replaced with BackupSuffix, so
// "ngs_catalogue.db" becomes "ngs_catalogue.db.backup".
func (c *Config) BackupPath() string {
	path := c.Database.Path
	return strings.TrimSuffix(path, filepath.Ext(path)) +
		c.Database.BackupSuffix
}
