// Package iodb implements database operations on the SQLite catalogue.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/db"
	_ "github.com/mattn/go-sqlite3" // "sqlite3" driver (cgo)
	_ "modernc.org/sqlite"          // "sqlite" driver (pure Go)
)

// sqliteOperator implements db.Operator interface on top of
// database/sql with one of the SQLite drivers.
type sqliteOperator struct {
	db   *sql.DB
	path string
}

// NewSQLiteOperator creates a new database operator
// (without connecting).
func NewSQLiteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the catalogue file. The file is created by the driver
// if it does not exist, its directory has to exist already.
func (o *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dir := filepath.Dir(cfg.Path)
	if _, err := os.Stat(dir); err != nil {
		return ConnectionError(cfg.Path, cfg.Driver, err)
	}

	sqlDB, err := sql.Open(cfg.Driver, cfg.Path)
	if err != nil {
		return DriverError(cfg.Driver, err)
	}

	// single writer, and PRAGMA settings are per connection
	sqlDB.SetMaxOpenConns(1)

	if err = sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return ConnectionError(cfg.Path, cfg.Driver, err)
	}

	o.db = sqlDB
	o.path = cfg.Path
	return nil
}

// Close releases the database connection.
func (o *sqliteOperator) Close() error {
	if o.db == nil {
		return nil
	}
	err := o.db.Close()
	o.db = nil
	return err
}

// DB returns the underlying handle.
func (o *sqliteOperator) DB() *sql.DB {
	return o.db
}

// ExecScript runs all statements of script. Statements executed before
// a failing one stay in effect.
func (o *sqliteOperator) ExecScript(
	ctx context.Context,
	script string,
) error {
	if o.db == nil {
		return NotConnectedError()
	}

	if _, err := o.db.ExecContext(ctx, script); err != nil {
		return ScriptError(o.path, err)
	}
	return nil
}

// TableExists checks if a table exists in the database.
func (o *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if o.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`

	var exists bool
	err := o.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, QueryTablesError(err)
	}

	return exists, nil
}

// Tables returns sorted names of tables, SQLite internal tables are
// skipped.
func (o *sqliteOperator) Tables(ctx context.Context) ([]string, error) {
	if o.db == nil {
		return nil, NotConnectedError()
	}

	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := o.db.QueryContext(ctx, query)
	if err != nil {
		return nil, QueryTablesError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, QueryTablesError(err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return nil, QueryTablesError(err)
	}

	return tables, nil
}
