// Package iopopulate implements Populator interface for filling the
// catalogue with collected assay metadata.
// This is an impure I/O package that writes lookup tables and assay
// rows inside one transaction.
package iopopulate

import (
	"context"
	"database/sql"

	"github.com/brickmanlab/ngsdb/pkg/assay"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/db"
	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
	"github.com/brickmanlab/ngsdb/pkg/schema"
)

// populator implements the Populator interface.
type populator struct {
	cfg      *config.Config
	operator db.Operator
}

// New creates a new Populator.
func New(cfg *config.Config, op db.Operator) lifecycle.Populator {
	return &populator{cfg: cfg, operator: op}
}

// Populate inserts lookup values, applies user corrections and inserts
// assay rows. Foreign keys are enforced for the connection. Everything
// happens in one transaction, on any error it is rolled back.
func (p *populator) Populate(
	ctx context.Context,
	tbl *assay.Table,
) (*lifecycle.PopulateResult, error) {
	sqlDB := p.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	if err := checkColumns(tbl); err != nil {
		return nil, err
	}

	// PRAGMA is per connection and is ignored inside a transaction
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, TransactionError(err)
	}
	defer conn.Close()

	if _, err = conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return nil, TransactionError(err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, TransactionError(err)
	}

	res, err := p.populate(ctx, tx, tbl)
	if err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, TransactionError(err)
	}
	return res, nil
}

func (p *populator) populate(
	ctx context.Context,
	tx *sql.Tx,
	tbl *assay.Table,
) (*lifecycle.PopulateResult, error) {
	res := &lifecycle.PopulateResult{
		Lookups:    make(map[string]int),
		Unresolved: make(map[string]int),
	}

	for _, l := range schema.Lookups() {
		n, err := insertLookup(ctx, tx, l, tbl.Unique(l.Fields...))
		if err != nil {
			return nil, err
		}
		res.Lookups[l.Table] = n

		if l.Table == schema.Users.Table {
			res.Corrected, err = p.correctUsers(ctx, tx)
			if err != nil {
				return nil, err
			}
		}
	}

	var err error
	res.Assays, err = insertAssays(ctx, tx, tbl)
	if err != nil {
		return nil, err
	}

	res.Unresolved, err = countUnresolved(ctx, tx, tbl)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// checkColumns requires every field of the assay table to be present in
// the collected metadata.
func checkColumns(tbl *assay.Table) error {
	var missing []string
	for _, f := range schema.AssayFields() {
		// assay_id falls back to the directory name
		if f == schema.AssayIDField {
			continue
		}
		if !tbl.HasColumn(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return ColumnError(missing)
	}
	return nil
}
