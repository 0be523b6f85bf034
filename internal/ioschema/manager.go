// Package ioschema implements SchemaManager and Validator interfaces.
// This is an impure I/O package: both remote schema documents are
// fetched on every call.
package ioschema

import (
	"context"

	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/db"
	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
)

// manager implements the lifecycle.SchemaManager interface
// by running the remote SQL script.
type manager struct {
	cfg      *config.Config
	operator db.Operator
	fetcher  lifecycle.Fetcher
}

// NewManager creates a new SchemaManager.
func NewManager(
	cfg *config.Config,
	op db.Operator,
	f lifecycle.Fetcher,
) lifecycle.SchemaManager {
	return &manager{cfg: cfg, operator: op, fetcher: f}
}

// Create downloads the SQL schema for the pinned version and executes
// it as one script.
func (m *manager) Create(ctx context.Context) (*lifecycle.InitResult, error) {
	if m.operator.DB() == nil {
		return nil, NotConnectedError()
	}

	url := m.cfg.SchemaSQLURL()
	script, err := m.fetcher.Fetch(ctx, url, m.cfg.Schema.Encoding)
	if err != nil {
		return nil, err
	}

	if err = m.operator.ExecScript(ctx, script); err != nil {
		return nil, err
	}

	tables, err := m.operator.Tables(ctx)
	if err != nil {
		return nil, err
	}

	res := &lifecycle.InitResult{
		Path:   m.cfg.Database.Path,
		URL:    url,
		Tables: tables,
	}
	return res, nil
}
