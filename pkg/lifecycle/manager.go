package lifecycle

import (
	"context"
	"time"
)

// Manager owns the catalogue file: it moves the previous file aside,
// creates the schema and drives collection, validation and population.
type Manager interface {
	// EnsureStorageDirectory creates the parent directory of the
	// database if it is absent, otherwise it calls Backup.
	EnsureStorageDirectory() (*StorageResult, error)

	// Backup renames an existing database file to its backup path,
	// replacing the previous backup.
	Backup() (*StorageResult, error)

	// Restore renames the backup file back to the database path.
	Restore() (*StorageResult, error)

	// Initialize creates the schema in a fresh database file using the
	// remote SQL script.
	Initialize(ctx context.Context) (*InitResult, error)

	// Run performs the whole build. The returned report contains the
	// steps that finished, also when an error is returned.
	Run(ctx context.Context) (*Report, error)
}

// StorageAction tells what happened to the database file.
type StorageAction int

const (
	// StorageNone means there was nothing to do.
	StorageNone StorageAction = iota
	// StorageDirCreated means the database directory was created.
	StorageDirCreated
	// StorageBackedUp means the database was renamed to the backup path.
	StorageBackedUp
	// StorageRestored means the backup was renamed to the database path.
	StorageRestored
)

// String returns a human-readable action name.
func (a StorageAction) String() string {
	switch a {
	case StorageDirCreated:
		return "dir_created"
	case StorageBackedUp:
		return "backed_up"
	case StorageRestored:
		return "restored"
	default:
		return "none"
	}
}

// StorageResult describes a change of the database file layout.
type StorageResult struct {
	Action StorageAction

	// From and To are set for renames, To holds the directory for
	// StorageDirCreated.
	From, To string

	// Size of the renamed file in bytes.
	Size int64

	// ModTime of the renamed file.
	ModTime time.Time
}

// InitResult describes schema initialization.
type InitResult struct {
	// Path of the database file.
	Path string

	// URL of the SQL schema script.
	URL string

	// Tables created by the script, sorted.
	Tables []string
}

// Report collects results of all steps of Run.
type Report struct {
	Storage    *StorageResult
	Init       *InitResult
	Collect    *CollectResult
	Validation *Validation
	Populate   *PopulateResult
	Duration   time.Duration
}
