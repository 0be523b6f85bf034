package lifecycle

import (
	"context"

	"github.com/brickmanlab/ngsdb/pkg/assay"
)

// Populator fills an initialized catalogue with assay records.
type Populator interface {
	// Populate inserts lookup values and one assay row per record inside
	// a single transaction. Nothing is committed if any step fails.
	Populate(ctx context.Context, tbl *assay.Table) (*PopulateResult, error)
}

// PopulateResult reports inserted rows.
type PopulateResult struct {
	// Lookups maps a lookup table name to the number of inserted rows.
	Lookups map[string]int

	// Corrected is the number of users updated by corrections.
	Corrected int

	// Assays is the number of inserted assay rows.
	Assays int

	// Unresolved counts foreign keys of assay rows that did not match
	// any lookup row and were stored as NULL, keyed by column name.
	Unresolved map[string]int
}
