package lifecycle

import (
	"context"

	"github.com/brickmanlab/ngsdb/pkg/assay"
)

// Validator checks collected metadata against the field schema.
type Validator interface {
	// ExpectedFields fetches the field schema document, verifies that it
	// carries the given version and returns sorted expected field names.
	ExpectedFields(ctx context.Context, version string) ([]string, error)

	// Validate requires the columns of tbl to be exactly the expected
	// fields. Order of columns does not matter.
	Validate(
		ctx context.Context,
		version string,
		tbl *assay.Table,
	) (*Validation, error)
}

// Validation is the outcome of a successful field check.
type Validation struct {
	// Version of the field schema.
	Version string

	// Fields are the validated field names, sorted.
	Fields []string
}
