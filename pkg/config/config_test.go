package config_test

import (
	"path/filepath"
	"testing"

	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "ngsdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "ngsdb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "ngsdb", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()
	require.NotNil(t, cfg)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, ".db.backup", cfg.Database.BackupSuffix)
	assert.Equal(t, "ngs_catalogue.db", filepath.Base(cfg.Database.Path))

	assert.Equal(t, "1.0", cfg.Schema.Version)
	assert.Equal(t, []string{"__prompts__", "_extensions"},
		cfg.Schema.Whitelist)
	assert.Empty(t, cfg.Schema.Encoding)

	assert.Equal(t, "assays", cfg.Assays.Dir)
	assert.Equal(t, []string{"metadata.yml", "description.yml"},
		cfg.Assays.Files)

	require.Len(t, cfg.Populate.Corrections, 2)
	assert.Equal(t, "Genomics Core", cfg.Populate.Corrections[0].Department)

	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "file", cfg.Log.Destination)
}

func TestSchemaSQLURL(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptSchemaSQLURL("https://example.org/v{version}/schema.sql"),
		config.OptSchemaVersion("v2.1"),
	})
	assert.Equal(t, "https://example.org/v2.1/schema.sql", cfg.SchemaSQLURL())
}

func TestBackupPath(t *testing.T) {
	tests := []struct {
		msg, path, suffix, res string
	}{
		{"db extension", "/data/ngs_catalogue.db", ".db.backup",
			"/data/ngs_catalogue.db.backup"},
		{"no extension", "/data/catalogue", ".db.backup",
			"/data/catalogue.db.backup"},
		{"custom suffix", "/data/cat.sqlite", ".bak", "/data/cat.bak"},
	}

	for _, v := range tests {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptDatabasePath(v.path),
			config.OptDatabaseBackupSuffix(v.suffix),
		})
		assert.Equal(t, v.res, cfg.BackupPath(), v.msg)
	}
}

func TestAssaysDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptAssaysProjectRoot("/tmp/lab/"),
	})
	assert.Equal(t, "/tmp/lab/assays", cfg.AssaysDir())
}

func TestOptionDatabaseDriver(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets pure go driver",
			input:    "sqlite",
			expected: "sqlite",
		},
		{
			name:     "sets cgo driver",
			input:    "sqlite3",
			expected: "sqlite3",
		},
		{
			name:     "normalizes to lowercase",
			input:    " SQLITE3 ",
			expected: "sqlite3",
		},
		{
			name:     "ignores invalid value",
			input:    "postgres",
			expected: "sqlite", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptDatabaseDriver(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Database.Driver)
		})
	}
}

func TestOptionStrings(t *testing.T) {
	t.Run("ignores empty database path", func(t *testing.T) {
		cfg := config.New()
		def := cfg.Database.Path
		cfg.Update([]config.Option{config.OptDatabasePath("   ")})
		assert.Equal(t, def, cfg.Database.Path)
	})

	t.Run("trims schema version prefix", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptSchemaVersion(" v1.2 ")})
		assert.Equal(t, "1.2", cfg.Schema.Version)
	})

	t.Run("drops empty file names", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{
			config.OptAssaysFiles([]string{"", " meta.yaml "}),
		})
		assert.Equal(t, []string{"meta.yaml"}, cfg.Assays.Files)
	})

	t.Run("keeps files when all are empty", func(t *testing.T) {
		cfg := config.New()
		cfg.Update([]config.Option{config.OptAssaysFiles([]string{" "})})
		assert.Equal(t, []string{"metadata.yml", "description.yml"},
			cfg.Assays.Files)
	})
}

func TestOptionPopulateCorrections(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptPopulateCorrections([]config.UserCorrection{
			{Name: " Jane Doe ", Department: "Stem Cells"},
			{Name: "", Department: "Nowhere"},
			{Name: "John Roe", Department: ""},
		}),
	})
	assert.Equal(t,
		[]config.UserCorrection{{Name: "Jane Doe", Department: "Stem Cells"}},
		cfg.Populate.Corrections,
	)

	cfg.Update([]config.Option{
		config.OptPopulateCorrections([]config.UserCorrection{}),
	})
	assert.Empty(t, cfg.Populate.Corrections)
}

func TestOptionLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid log level - debug",
			input:    "debug",
			expected: "debug",
		},
		{
			name:     "normalizes to lowercase",
			input:    "WARN",
			expected: "warn",
		},
		{
			name:     "ignores invalid value",
			input:    "trace",
			expected: "info", // Should keep default
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			opt := config.OptLogLevel(tt.input)
			cfg.Update([]config.Option{opt})
			assert.Equal(t, tt.expected, cfg.Log.Level)
		})
	}
}

func TestToOptionsRoundTrip(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDatabasePath("/tmp/cat.db"),
		config.OptDatabaseDriver("sqlite3"),
		config.OptSchemaVersion("2.0"),
		config.OptSchemaEncoding("latin1"),
		config.OptAssaysProjectRoot("/tmp/lab"),
		config.OptAssaysFiles([]string{"a.yml"}),
		config.OptPopulateCorrections(nil),
		config.OptLogFormat("text"),
		config.OptHomeDir("/home/someone"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, src.Database, dst.Database)
	assert.Equal(t, src.Schema, dst.Schema)
	assert.Equal(t, src.Assays, dst.Assays)
	assert.Empty(t, dst.Populate.Corrections)
	assert.Equal(t, src.Log, dst.Log)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
