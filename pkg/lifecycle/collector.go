package lifecycle

import (
	"context"

	"github.com/brickmanlab/ngsdb/pkg/assay"
)

// Collector reads assay metadata files from the project tree.
type Collector interface {
	// Collect scans assay directories and merges metadata files into a
	// table keyed by assay directory name. A file that cannot be parsed
	// is skipped and reported in CollectResult.Errors, it does not stop
	// the scan.
	Collect(ctx context.Context) (*CollectResult, error)
}

// CollectResult is the outcome of a metadata scan.
type CollectResult struct {
	// Dir is the scanned directory.
	Dir string

	// Table contains merged assay records.
	Table *assay.Table

	// Files are metadata files that were parsed, in merge order.
	Files []string

	// Errors has one entry per file that could not be parsed.
	Errors []error
}
