package db

import (
	"context"
	"database/sql"

	"github.com/brickmanlab/ngsdb/pkg/config"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the *sql.DB for
// high-level lifecycle components (schema initialization, Populator) to
// execute their specialized SQL operations internally.
//
// The catalogue is a single SQLite file with exactly one writer, so the
// operator keeps at most one open connection.
type Operator interface {
	// Connect opens the SQLite file, creating it if it does not exist.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection.
	Close() error

	// DB returns the underlying database handle, nil before Connect.
	DB() *sql.DB

	// ExecScript executes a multi-statement SQL script.
	ExecScript(ctx context.Context, script string) error

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// Tables returns sorted names of user tables.
	Tables(ctx context.Context) ([]string, error)
}
