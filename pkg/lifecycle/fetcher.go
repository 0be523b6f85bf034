// Package lifecycle defines contracts of the catalogue build: fetching
// remote schema documents, collecting assay metadata, validating it,
// populating the database and managing the database file.
//
// Implementations live in internal/io* packages. Operations return
// result values and never log; logging is done by the caller.
package lifecycle

import "context"

// Fetcher retrieves remote documents as text.
type Fetcher interface {
	// Fetch performs a blocking GET of url and decodes the body using
	// encoding. Empty encoding means UTF-8. There is no retry and no
	// caching, every call goes to the network.
	Fetch(ctx context.Context, url, encoding string) (string, error)
}
