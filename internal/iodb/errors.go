package iodb

import (
	"fmt"

	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// ConnectionError is returned when the catalogue file cannot be opened.
func ConnectionError(path, driver string, err error) error {
	msg := `Cannot open database <em>%s</em> (driver %s)

<em>Possible causes:</em>
  - Database directory does not exist
  - Insufficient permissions
  - File is not a SQLite database

<em>How to fix:</em>
  1. Check <em>database.path</em> in config.yaml
  2. Check permissions of the database directory`
	vars := []any{path, driver}
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to open %s with %s: %w", path, driver, err),
	}
}

// DriverError is returned when the database/sql driver is not known.
func DriverError(driver string, err error) error {
	msg := "Unknown database driver '<em>%s</em>', use 'sqlite' or 'sqlite3'"
	vars := []any{driver}
	return &gn.Error{
		Code: errcode.DBDriverError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unknown driver %s: %w", driver, err),
	}
}

// NotConnectedError is returned when an operation is attempted
// without database connection.
func NotConnectedError() error {
	msg := "Database operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// ScriptError is returned when a SQL script fails.
func ScriptError(path string, err error) error {
	msg := `Cannot execute schema script on <em>%s</em>

<em>Possible causes:</em>
  - Database already has tables
  - Schema script is not valid SQLite SQL

<em>How to fix:</em>
  1. Restore the previous database from its backup if needed
  2. Check the schema version`
	vars := []any{path}
	return &gn.Error{
		Code: errcode.SchemaInitError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("schema script failed on %s: %w", path, err),
	}
}

// QueryTablesError is returned when listing tables fails.
func QueryTablesError(err error) error {
	msg := "Cannot query database tables"
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}
