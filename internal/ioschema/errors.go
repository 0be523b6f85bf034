package ioschema

import (
	"fmt"

	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// DocumentError creates an error for a field schema document that is
// not a JSON object.
func DocumentError(url string, err error) error {
	msg := `Cannot parse field schema document <em>%s</em>

<em>Possible causes:</em>
  - URL points to a wrong document
  - Document is not a JSON object`

	return &gn.Error{
		Code: errcode.SchemaDocumentError,
		Msg:  msg,
		Vars: []any{url},
		Err:  fmt.Errorf("cannot decode %s: %w", url, err),
	}
}

// VersionError creates an error for a field schema document of a
// different version than the pinned one.
func VersionError(url, version, found string) error {
	msg := `Provided schema version: <em>%s</em> does not match! Found '<em>%s</em>'

<em>Document:</em> %s

<em>How to fix:</em>
  1. Update <em>schema.version</em> in config.yaml or use --schema-version
  2. Make sure metadata files were created with the same template`

	return &gn.Error{
		Code: errcode.SchemaVersionError,
		Msg:  msg,
		Vars: []any{version, found, url},
		Err: fmt.Errorf("schema version %q does not match %q",
			version, found),
	}
}

// FieldsError creates an error for metadata fields that differ from the
// expected ones. Vars hold expected, given, missing and extra fields.
func FieldsError(expected, actual, missing, extra []string) error {
	msg := `<err>Column names do not match!</err>

<em>Expected:</em> %v
<em>Given:</em>    %v
<em>Missing:</em>  %v
<em>Extra:</em>    %v`

	return &gn.Error{
		Code: errcode.SchemaFieldsError,
		Msg:  msg,
		Vars: []any{expected, actual, missing, extra},
		Err: fmt.Errorf("metadata fields mismatch, missing %v, extra %v",
			missing, extra),
	}
}
