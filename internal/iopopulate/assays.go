package iopopulate

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/brickmanlab/ngsdb/internal/iodb"
	"github.com/brickmanlab/ngsdb/pkg/assay"
	"github.com/brickmanlab/ngsdb/pkg/schema"
	"github.com/cheggaaa/pb/v3"
)

// assayQuery builds the insert statement of the assay table. Foreign
// keys are resolved by name with subqueries, a name without a lookup
// row gives NULL.
func assayQuery() string {
	cols := schema.AssayColumns()
	names := make([]string, len(cols))
	vals := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		vals[i] = "?"
		if l := c.Lookup; l != nil {
			vals[i] = fmt.Sprintf("(SELECT %s FROM %s WHERE %s = ?)",
				l.ID, l.Table, l.Name)
		}
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		schema.AssayTable,
		strings.Join(names, ", "),
		strings.Join(vals, ", "),
	)
}

// insertAssays inserts one row per record and returns the number of
// inserted rows.
func insertAssays(
	ctx context.Context,
	tx *sql.Tx,
	tbl *assay.Table,
) (int, error) {
	stmt, err := tx.PrepareContext(ctx, assayQuery())
	if err != nil {
		return 0, AssayError("", err)
	}
	defer stmt.Close()

	ids := tbl.IDs()
	rows := tbl.Rows(schema.AssayFields())

	bar := pb.Full.Start(len(rows))
	bar.Set("prefix", "Inserting assays: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	for i, row := range rows {
		if err = ctx.Err(); err != nil {
			return 0, CancelledError(err)
		}

		// assay_id is the first column
		if row[0] == nil {
			row[0] = ids[i]
		}

		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			if iodb.IsConstraint(err) {
				return 0, IntegrityError(schema.AssayTable, row[0], err)
			}
			return 0, AssayError(ids[i], err)
		}
		bar.Increment()
	}
	return len(rows), nil
}

// countUnresolved returns the number of assay rows per foreign key
// column where a given name did not match any lookup row.
func countUnresolved(
	ctx context.Context,
	tx *sql.Tx,
	tbl *assay.Table,
) (map[string]int, error) {
	res := make(map[string]int)
	for _, c := range schema.AssayColumns() {
		if c.Lookup == nil {
			continue
		}

		var given int
		for _, id := range tbl.IDs() {
			if v, _ := tbl.Value(id, c.Field); v != nil {
				given++
			}
		}

		q := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s IS NOT NULL",
			schema.AssayTable, c.Name)
		var resolved int
		if err := tx.QueryRowContext(ctx, q).Scan(&resolved); err != nil {
			return nil, AssayError("", err)
		}

		if n := given - resolved; n > 0 {
			res[c.Name] = n
		}
	}
	return res, nil
}
