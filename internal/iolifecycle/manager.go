// Package iolifecycle implements the Manager interface that owns the
// catalogue file and drives a whole build.
package iolifecycle

import (
	"context"
	"path/filepath"
	"time"

	"github.com/brickmanlab/ngsdb/internal/iocollect"
	"github.com/brickmanlab/ngsdb/internal/iofs"
	"github.com/brickmanlab/ngsdb/internal/iopopulate"
	"github.com/brickmanlab/ngsdb/internal/ioschema"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/db"
	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
)

type manager struct {
	cfg       *config.Config
	operator  db.Operator
	schema    lifecycle.SchemaManager
	collector lifecycle.Collector
	validator lifecycle.Validator
	populator lifecycle.Populator
}

// New creates a Manager. Remote documents are retrieved with f, the
// database is accessed through op.
func New(
	cfg *config.Config,
	op db.Operator,
	f lifecycle.Fetcher,
) lifecycle.Manager {
	return &manager{
		cfg:       cfg,
		operator:  op,
		schema:    ioschema.NewManager(cfg, op, f),
		collector: iocollect.New(cfg),
		validator: ioschema.NewValidator(cfg, f),
		populator: iopopulate.New(cfg, op),
	}
}

// EnsureStorageDirectory creates the database directory when it is
// missing. An existing directory means there might be a previous
// database, so it is backed up.
func (m *manager) EnsureStorageDirectory() (*lifecycle.StorageResult, error) {
	dir := filepath.Dir(m.cfg.Database.Path)
	info, err := iofs.Stat(dir)
	if err != nil {
		return nil, err
	}

	if info == nil {
		if err = iofs.TouchDir(dir); err != nil {
			return nil, err
		}
		res := &lifecycle.StorageResult{
			Action: lifecycle.StorageDirCreated,
			To:     dir,
		}
		return res, nil
	}

	return m.Backup()
}

// Backup renames the database file to its backup path. Only one
// generation of backup is kept.
func (m *manager) Backup() (*lifecycle.StorageResult, error) {
	path := m.cfg.Database.Path
	info, err := iofs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return &lifecycle.StorageResult{Action: lifecycle.StorageNone}, nil
	}
	if info.IsDir() {
		return nil, NotAFileError(path)
	}

	// an open handle would follow the file to its backup path
	if err = m.operator.Close(); err != nil {
		return nil, BackupError(path, err)
	}

	backup := m.cfg.BackupPath()
	if err = iofs.MoveFile(path, backup); err != nil {
		return nil, BackupError(path, err)
	}

	res := &lifecycle.StorageResult{
		Action:  lifecycle.StorageBackedUp,
		From:    path,
		To:      backup,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	return res, nil
}

// Restore renames the backup back to the database path. The current
// database file, if any, is replaced.
func (m *manager) Restore() (*lifecycle.StorageResult, error) {
	backup := m.cfg.BackupPath()
	info, err := iofs.Stat(backup)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return nil, BackupNotFoundError(backup)
	}

	path := m.cfg.Database.Path
	if err = m.operator.Close(); err != nil {
		return nil, RestoreError(backup, err)
	}
	if err = iofs.MoveFile(backup, path); err != nil {
		return nil, RestoreError(backup, err)
	}

	res := &lifecycle.StorageResult{
		Action:  lifecycle.StorageRestored,
		From:    backup,
		To:      path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	return res, nil
}

// Initialize opens the database and creates its tables. A database
// file that already has data is never initialized again.
func (m *manager) Initialize(ctx context.Context) (*lifecycle.InitResult, error) {
	path := m.cfg.Database.Path
	info, err := iofs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info != nil && info.Size() > 0 {
		return nil, DatabaseExistsError(path)
	}

	// always reopen, a previous handle may point to a moved file
	if err = m.operator.Close(); err != nil {
		return nil, err
	}
	if err = m.operator.Connect(ctx, &m.cfg.Database); err != nil {
		return nil, err
	}

	return m.schema.Create(ctx)
}

// Run moves the previous database aside, creates a new one and fills it
// with collected metadata. Results of finished steps are kept in the
// report when an error is returned.
func (m *manager) Run(ctx context.Context) (*lifecycle.Report, error) {
	var err error
	start := time.Now()
	rep := &lifecycle.Report{}
	defer func() { rep.Duration = time.Since(start) }()

	if rep.Storage, err = m.EnsureStorageDirectory(); err != nil {
		return rep, err
	}

	if rep.Init, err = m.Initialize(ctx); err != nil {
		return rep, err
	}

	if rep.Collect, err = m.collector.Collect(ctx); err != nil {
		return rep, err
	}

	rep.Validation, err = m.validator.Validate(
		ctx, m.cfg.Schema.Version, rep.Collect.Table,
	)
	if err != nil {
		return rep, err
	}

	if rep.Populate, err = m.populator.Populate(ctx, rep.Collect.Table); err != nil {
		return rep, err
	}

	return rep, nil
}
