package lifecycle

import "context"

// SchemaManager creates catalogue tables in an empty database.
type SchemaManager interface {
	// Create fetches the SQL schema script of the pinned version and
	// executes it. There is no rollback if the script fails halfway.
	Create(ctx context.Context) (*InitResult, error)
}
