package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var ss []string

	s = c.Database.Path
	if s != "" {
		res = append(res, OptDatabasePath(s))
	}
	s = c.Database.Driver
	if s != "" {
		res = append(res, OptDatabaseDriver(s))
	}
	s = c.Database.BackupSuffix
	if s != "" {
		res = append(res, OptDatabaseBackupSuffix(s))
	}

	s = c.Schema.Version
	if s != "" {
		res = append(res, OptSchemaVersion(s))
	}
	s = c.Schema.SQLURL
	if s != "" {
		res = append(res, OptSchemaSQLURL(s))
	}
	s = c.Schema.FieldsURL
	if s != "" {
		res = append(res, OptSchemaFieldsURL(s))
	}
	s = c.Schema.Encoding
	if s != "" {
		res = append(res, OptSchemaEncoding(s))
	}
	ss = c.Schema.Whitelist
	if len(ss) > 0 {
		res = append(res, OptSchemaWhitelist(ss))
	}

	s = c.Assays.ProjectRoot
	if s != "" {
		res = append(res, OptAssaysProjectRoot(s))
	}
	s = c.Assays.Dir
	if s != "" {
		res = append(res, OptAssaysDir(s))
	}
	ss = c.Assays.Files
	if len(ss) > 0 {
		res = append(res, OptAssaysFiles(ss))
	}

	// an explicitly empty list disables corrections
	if c.Populate.Corrections != nil {
		res = append(res, OptPopulateCorrections(c.Populate.Corrections))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Database.Driver": {"sqlite": s, "sqlite3": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
