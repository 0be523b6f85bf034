// Package config provides configuration management for ngsdb.
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
//   - Database: path, driver, backup_suffix
//   - Schema: version, sql_url, fields_url, encoding, whitelist
//   - Assays: project_root, dir, files
//   - Populate: corrections
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use NGSDB_ prefix with underscores for nesting:
//
//	NGSDB_DATABASE_PATH=/maps/datasets/celly_brickman/database/ngs_catalogue.db
//	NGSDB_SCHEMA_VERSION=1.0
//	NGSDB_ASSAYS_PROJECT_ROOT=/maps/projects/dan1/data/Brickman
//	NGSDB_LOG_LEVEL=info
package config

// Config represents the complete ngsdb configuration.
type Config struct {
	// Database contains settings of the SQLite catalogue file.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Schema describes where the SQL schema and the field schema live.
	Schema SchemaConfig `mapstructure:"schema" yaml:"schema"`

	// Assays describes the layout of the assay metadata tree.
	Assays AssaysConfig `mapstructure:"assays" yaml:"assays"`

	// Populate contains settings specific to database population.
	Populate PopulateConfig `mapstructure:"populate" yaml:"populate"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains SQLite catalogue settings.
type DatabaseConfig struct {
	// Path is the location of the SQLite catalogue file.
	Path string `mapstructure:"path" yaml:"path"`

	// Driver selects the database/sql driver.
	// Valid values: "sqlite" (pure Go, default), "sqlite3" (cgo).
	Driver string `mapstructure:"driver" yaml:"driver"`

	// BackupSuffix replaces the ".db" extension of Path when the
	// previous catalogue is moved aside. Only one backup is kept.
	BackupSuffix string `mapstructure:"backup_suffix" yaml:"backup_suffix"`
}

// SchemaConfig describes remote schema documents.
type SchemaConfig struct {
	// Version is the pinned schema version. Both remote documents must
	// match it exactly.
	Version string `mapstructure:"version" yaml:"version"`

	// SQLURL is the location of the SQL schema script. The "{version}"
	// placeholder is replaced with Version.
	SQLURL string `mapstructure:"sql_url" yaml:"sql_url"`

	// FieldsURL is the location of the JSON document whose keys name
	// the expected metadata fields.
	FieldsURL string `mapstructure:"fields_url" yaml:"fields_url"`

	// Encoding of remote documents, empty means UTF-8.
	Encoding string `mapstructure:"encoding" yaml:"encoding"`

	// Whitelist lists structural keys of the field document that do
	// not name metadata fields.
	Whitelist []string `mapstructure:"whitelist" yaml:"whitelist"`
}

// AssaysConfig describes where assay metadata files are found.
type AssaysConfig struct {
	// ProjectRoot is the root of the lab's project tree.
	ProjectRoot string `mapstructure:"project_root" yaml:"project_root"`

	// Dir is the subdirectory of ProjectRoot holding one directory
	// per assay.
	Dir string `mapstructure:"dir" yaml:"dir"`

	// Files are metadata file names looked up in every assay
	// directory. Files listed later override fields of earlier ones.
	Files []string `mapstructure:"files" yaml:"files"`
}

// PopulateConfig contains settings for database population.
type PopulateConfig struct {
	// Corrections are applied to the users table after it is filled.
	Corrections []UserCorrection `mapstructure:"corrections" yaml:"corrections"`
}

// UserCorrection assigns a department to a user found by name.
type UserCorrection struct {
	Name       string `mapstructure:"name"       yaml:"name"`
	Department string `mapstructure:"department" yaml:"department"`
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
		Database: DatabaseConfig{
			Path:         "/maps/datasets/celly_brickman/database/ngs_catalogue.db",
			Driver:       "sqlite",
			BackupSuffix: ".db.backup",
		},
		Schema: SchemaConfig{
			Version: "1.0",
			SQLURL: "https://raw.githubusercontent.com/brickmanlab/" +
				"ngs-catalogue/refs/tags/v{version}/src/schema/v1.sql",
			FieldsURL: "https://raw.githubusercontent.com/brickmanlab/" +
				"ngs-template/master/assay/cookiecutter.json",
			Whitelist: []string{"__prompts__", "_extensions"},
		},
		Assays: AssaysConfig{
			ProjectRoot: "/maps/projects/dan1/data/Brickman",
			Dir:         "assays",
			Files:       []string{"metadata.yml", "description.yml"},
		},
		Populate: PopulateConfig{
			Corrections: []UserCorrection{
				{Name: "Magali Michaut", Department: "Genomics Core"},
				{Name: "Adrija Kalvisa", Department: "Genomics Core"},
			},
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
