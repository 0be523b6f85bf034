package iodb

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// IsConstraint reports whether err is a violation of a UNIQUE, PRIMARY
// KEY, NOT NULL or FOREIGN KEY constraint. Errors of the cgo driver are
// recognized by their message.
func IsConstraint(err error) bool {
	if err == nil {
		return false
	}

	var sErr *sqlite.Error
	if errors.As(err, &sErr) {
		return sErr.Code()&0xff == sqlite3lib.SQLITE_CONSTRAINT
	}

	return strings.Contains(err.Error(), "constraint failed")
}
