package iolifecycle_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brickmanlab/ngsdb/internal/iodb"
	"github.com/brickmanlab/ngsdb/internal/iofetch"
	"github.com/brickmanlab/ngsdb/internal/iolifecycle"
	"github.com/brickmanlab/ngsdb/internal/iotesting"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errCode(t *testing.T, err error) gn.ErrorCode {
	t.Helper()
	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr), "error should be *gn.Error")
	return gnErr.Code
}

func newManager(t *testing.T, cfg *config.Config) lifecycle.Manager {
	t.Helper()
	op := iodb.NewSQLiteOperator()
	t.Cleanup(func() { op.Close() })
	return iolifecycle.New(cfg, op, iofetch.New())
}

func writeDB(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestEnsureStorageDirectory(t *testing.T) {
	t.Run("creates directory", func(t *testing.T) {
		cfg := iotesting.Config(t, nil)
		m := newManager(t, cfg)

		res, err := m.EnsureStorageDirectory()
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StorageDirCreated, res.Action)
		assert.DirExists(t, filepath.Dir(cfg.Database.Path))
	})

	t.Run("existing directory without database", func(t *testing.T) {
		cfg := iotesting.Config(t, nil)
		require.NoError(t, os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755))
		m := newManager(t, cfg)

		res, err := m.EnsureStorageDirectory()
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StorageNone, res.Action)
		assert.NoFileExists(t, cfg.BackupPath())
	})

	t.Run("existing database", func(t *testing.T) {
		cfg := iotesting.Config(t, nil)
		writeDB(t, cfg.Database.Path, "old")
		m := newManager(t, cfg)

		res, err := m.EnsureStorageDirectory()
		require.NoError(t, err)
		assert.Equal(t, lifecycle.StorageBackedUp, res.Action)
		assert.NoFileExists(t, cfg.Database.Path)
		assert.FileExists(t, cfg.BackupPath())
	})
}

func TestBackup(t *testing.T) {
	cfg := iotesting.Config(t, nil)
	m := newManager(t, cfg)
	backup := filepath.Join(filepath.Dir(cfg.Database.Path), "ngs_catalogue.db.backup")
	assert.Equal(t, backup, cfg.BackupPath())

	writeDB(t, cfg.Database.Path, "first")
	res, err := m.Backup()
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StorageBackedUp, res.Action)
	assert.Equal(t, cfg.Database.Path, res.From)
	assert.Equal(t, backup, res.To)
	assert.Equal(t, int64(5), res.Size)

	// only the latest generation is kept
	writeDB(t, cfg.Database.Path, "second")
	_, err = m.Backup()
	require.NoError(t, err)
	bs, err := os.ReadFile(backup)
	require.NoError(t, err)
	assert.Equal(t, "second", string(bs))

	entries, err := os.ReadDir(filepath.Dir(backup))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	res, err = m.Backup()
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StorageNone, res.Action)
}

func TestBackupDirectory(t *testing.T) {
	cfg := iotesting.Config(t, nil)
	require.NoError(t, os.MkdirAll(cfg.Database.Path, 0o755))
	m := newManager(t, cfg)

	_, err := m.Backup()
	require.Error(t, err)
	assert.Equal(t, errcode.BackupError, errCode(t, err))
}

func TestRestore(t *testing.T) {
	cfg := iotesting.Config(t, nil)
	m := newManager(t, cfg)

	_, err := m.Restore()
	require.Error(t, err)
	assert.Equal(t, errcode.BackupNotFoundError, errCode(t, err))

	writeDB(t, cfg.Database.Path, "good")
	_, err = m.Backup()
	require.NoError(t, err)
	writeDB(t, cfg.Database.Path, "broken")

	res, err := m.Restore()
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StorageRestored, res.Action)
	assert.NoFileExists(t, cfg.BackupPath())
	bs, err := os.ReadFile(cfg.Database.Path)
	require.NoError(t, err)
	assert.Equal(t, "good", string(bs))
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	srv := iotesting.Server(t)

	t.Run("fresh database", func(t *testing.T) {
		cfg := iotesting.Config(t, srv)
		m := newManager(t, cfg)
		_, err := m.EnsureStorageDirectory()
		require.NoError(t, err)

		res, err := m.Initialize(ctx)
		require.NoError(t, err)
		assert.Contains(t, res.Tables, "assay")
		assert.Contains(t, res.Tables, "users")
	})

	t.Run("existing database", func(t *testing.T) {
		cfg := iotesting.Config(t, srv)
		writeDB(t, cfg.Database.Path, "old")
		m := newManager(t, cfg)

		_, err := m.Initialize(ctx)
		require.Error(t, err)
		assert.Equal(t, errcode.SchemaInitError, errCode(t, err))
		bs, err := os.ReadFile(cfg.Database.Path)
		require.NoError(t, err)
		assert.Equal(t, "old", string(bs))
	})
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	srv := iotesting.Server(t)
	cfg := iotesting.Config(t, srv)
	writeDB(t, cfg.Database.Path, "previous")

	extra := map[string]any{"schema_version": "1.0"}
	for _, id := range []string{"A1", "A2"} {
		iotesting.WriteAssay(t, cfg, id, "metadata.yml", iotesting.Record(id, extra))
	}
	iotesting.WriteAssay(t, cfg, "A2", "description.yml",
		map[string]any{"short_desc": "updated"})

	m := newManager(t, cfg)
	rep, err := m.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, lifecycle.StorageBackedUp, rep.Storage.Action)
	assert.FileExists(t, cfg.BackupPath())
	assert.Len(t, rep.Init.Tables, 5)
	assert.Len(t, rep.Collect.Files, 3)
	assert.Empty(t, rep.Collect.Errors)
	assert.Equal(t, "1.0", rep.Validation.Version)
	assert.Equal(t, 2, rep.Populate.Assays)
	assert.Equal(t, 2, rep.Populate.Lookups["users"])
	assert.Positive(t, rep.Duration)
}

func TestRunValidationFailure(t *testing.T) {
	ctx := context.Background()
	srv := iotesting.Server(t)
	cfg := iotesting.Config(t, srv)

	// schema_version field is missing
	iotesting.WriteAssay(t, cfg, "A1", "metadata.yml", iotesting.Record("A1", nil))

	m := newManager(t, cfg)
	rep, err := m.Run(ctx)
	require.Error(t, err)
	assert.Equal(t, errcode.SchemaFieldsError, errCode(t, err))

	assert.Equal(t, lifecycle.StorageDirCreated, rep.Storage.Action)
	assert.NotNil(t, rep.Init)
	assert.NotNil(t, rep.Collect)
	assert.Nil(t, rep.Validation)
	assert.Nil(t, rep.Populate)
}

func tablesIn(t *testing.T, path string) []string {
	t.Helper()
	ctx := context.Background()
	op := iodb.NewSQLiteOperator()
	require.NoError(t, op.Connect(ctx, &config.DatabaseConfig{Path: path, Driver: "sqlite"}))
	defer op.Close()
	tables, err := op.Tables(ctx)
	require.NoError(t, err)
	return tables
}

func TestRunTwice(t *testing.T) {
	ctx := context.Background()
	srv := iotesting.Server(t)
	cfg := iotesting.Config(t, srv)

	extra := map[string]any{"schema_version": "1.0"}
	iotesting.WriteAssay(t, cfg, "A1", "metadata.yml", iotesting.Record("A1", extra))

	m := newManager(t, cfg)
	rep, err := m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StorageDirCreated, rep.Storage.Action)

	// the same manager keeps its operator between runs
	rep, err = m.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StorageBackedUp, rep.Storage.Action)
	assert.Equal(t, 1, rep.Populate.Assays)

	assert.Len(t, tablesIn(t, cfg.Database.Path), 5)
	assert.Len(t, tablesIn(t, cfg.BackupPath()), 5)
}

func TestBackupClosesConnection(t *testing.T) {
	ctx := context.Background()
	srv := iotesting.Server(t)
	cfg := iotesting.Config(t, srv)

	op := iodb.NewSQLiteOperator()
	defer op.Close()
	m := iolifecycle.New(cfg, op, iofetch.New())

	_, err := m.EnsureStorageDirectory()
	require.NoError(t, err)
	_, err = m.Initialize(ctx)
	require.NoError(t, err)
	require.NotNil(t, op.DB())

	res, err := m.Backup()
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StorageBackedUp, res.Action)
	assert.Nil(t, op.DB())
	assert.NoFileExists(t, cfg.Database.Path)

	// reopened at the database path, the backup stays untouched
	_, err = m.Initialize(ctx)
	require.NoError(t, err)
	assert.FileExists(t, cfg.Database.Path)
	assert.Len(t, tablesIn(t, cfg.BackupPath()), 5)
}
