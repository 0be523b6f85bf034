package iolifecycle

import (
	"fmt"

	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// BackupError creates an error for a database file that could not be
// moved aside.
func BackupError(path string, err error) error {
	msg := `Cannot back up database <em>%s</em>

Initialization was not started, the database is unchanged.`

	return &gn.Error{
		Code: errcode.BackupError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("backup of %s failed: %w", path, err),
	}
}

// NotAFileError creates an error for a database path that points to a
// directory.
func NotAFileError(path string) error {
	msg := `Database path <em>%s</em> is a directory

<em>How to fix:</em>
  1. Set <em>database.path</em> to a file in config.yaml
  2. Or use --database flag`

	return &gn.Error{
		Code: errcode.BackupError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("%s is a directory", path),
	}
}

// BackupNotFoundError creates an error for restore without a backup.
func BackupNotFoundError(path string) error {
	msg := "No backup found at <em>%s</em>"

	return &gn.Error{
		Code: errcode.BackupNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("backup %s does not exist", path),
	}
}

// RestoreError creates an error for a backup that could not be moved
// back.
func RestoreError(path string, err error) error {
	msg := "Cannot restore database from <em>%s</em>"

	return &gn.Error{
		Code: errcode.RestoreError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("restore from %s failed: %w", path, err),
	}
}

// DatabaseExistsError creates an error for initialization of a database
// file that was not moved aside.
func DatabaseExistsError(path string) error {
	msg := `Database <em>%s</em> already exists

<em>How to fix:</em>
  1. Run <em>ngsdb backup</em> first
  2. Or run <em>ngsdb init</em> that backs up the database`

	return &gn.Error{
		Code: errcode.SchemaInitError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("database %s exists", path),
	}
}
