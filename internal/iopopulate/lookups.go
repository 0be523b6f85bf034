package iopopulate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/brickmanlab/ngsdb/internal/iodb"
	"github.com/brickmanlab/ngsdb/pkg/schema"
)

// insertLookup inserts values into the name column of the lookup table
// and returns the number of inserted rows.
func insertLookup(
	ctx context.Context,
	tx *sql.Tx,
	l schema.Lookup,
	values []any,
) (int, error) {
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?)", l.Table, l.Name)
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		return 0, LookupError(l.Table, err)
	}
	defer stmt.Close()

	for _, v := range values {
		if _, err = stmt.ExecContext(ctx, v); err != nil {
			if iodb.IsConstraint(err) {
				return 0, IntegrityError(l.Table, v, err)
			}
			return 0, LookupError(l.Table, err)
		}
	}
	return len(values), nil
}

// correctUsers sets departments of known users. Names that are not in
// the users table are ignored.
func (p *populator) correctUsers(
	ctx context.Context,
	tx *sql.Tx,
) (int, error) {
	q := fmt.Sprintf("UPDATE %s SET department = ? WHERE %s = ?",
		schema.Users.Table, schema.Users.Name)

	var res int
	for _, c := range p.cfg.Populate.Corrections {
		r, err := tx.ExecContext(ctx, q, c.Department, c.Name)
		if err != nil {
			return 0, CorrectionError(c.Name, err)
		}
		n, err := r.RowsAffected()
		if err != nil {
			return 0, CorrectionError(c.Name, err)
		}
		res += int(n)
	}
	return res, nil
}
