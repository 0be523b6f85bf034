package iopopulate

import (
	"fmt"

	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when populate
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Populate operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ColumnError creates an error for metadata that lacks fields of the
// assay table.
func ColumnError(missing []string) error {
	msg := `Columns <em>%v</em> not present in data!

<em>How to fix:</em>
  1. Run <em>ngsdb validate</em> to compare metadata with the schema
  2. Add missing fields to metadata.yml of the assays`

	return &gn.Error{
		Code: errcode.PopulateColumnError,
		Msg:  msg,
		Vars: []any{missing},
		Err:  fmt.Errorf("columns not present in data: %v", missing),
	}
}

// TransactionError creates an error for a failure to start or commit
// the populate transaction.
func TransactionError(err error) error {
	msg := "Cannot complete database transaction, nothing was saved"

	return &gn.Error{
		Code: errcode.PopulateCommitError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("transaction failed: %w", err),
	}
}

// LookupError creates an error for a failed insert into a lookup table.
func LookupError(table string, err error) error {
	msg := "Cannot insert values into <em>%s</em>"

	return &gn.Error{
		Code: errcode.PopulateLookupError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("insert into %s: %w", table, err),
	}
}

// CorrectionError creates an error for a failed update of a user.
func CorrectionError(name string, err error) error {
	msg := "Cannot update department of user <em>%s</em>"

	return &gn.Error{
		Code: errcode.PopulateCorrectionError,
		Msg:  msg,
		Vars: []any{name},
		Err:  fmt.Errorf("update user %s: %w", name, err),
	}
}

// AssayError creates an error for a failed insert of an assay row.
func AssayError(id string, err error) error {
	msg := "Cannot insert assay <em>%s</em>"

	return &gn.Error{
		Code: errcode.PopulateAssayError,
		Msg:  msg,
		Vars: []any{id},
		Err:  fmt.Errorf("insert assay %q: %w", id, err),
	}
}

// IntegrityError creates an error for a constraint violation. The whole
// population is rolled back.
func IntegrityError(table string, value any, err error) error {
	msg := `Constraint violation in <em>%s</em> for value '%v'

<em>Possible causes:</em>
  - Two assays share the same assay_id
  - Database was not empty before population

<em>How to fix:</em>
  1. Make assay_id values unique
  2. Run <em>ngsdb init</em> again, the database is rebuilt from scratch`

	return &gn.Error{
		Code: errcode.PopulateIntegrityError,
		Msg:  msg,
		Vars: []any{table, value},
		Err:  fmt.Errorf("integrity error in %s for %v: %w", table, value, err),
	}
}

// CancelledError creates an error for when population is
// cancelled via context.
func CancelledError(err error) error {
	msg := "Population cancelled, nothing was saved"

	return &gn.Error{
		Code: errcode.PopulateCommitError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("population cancelled: %w", err),
	}
}
