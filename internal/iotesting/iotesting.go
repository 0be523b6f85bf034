// Package iotesting provides shared test utilities: a catalogue
// configuration in a temporary directory and a server that plays the
// role of the remote schema repository.
// This is an internal package for test infrastructure only.
package iotesting

import (
	_ "embed"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/brickmanlab/ngsdb/pkg/config"
	"gopkg.in/yaml.v3"
)

const (
	// SchemaVersion is the version served by Server.
	SchemaVersion = "1.0"

	// SQLPath is the path of the SQL schema on Server.
	SQLPath = "/v{version}/schema.sql"

	// FieldsPath is the path of the field schema on Server.
	FieldsPath = "/cookiecutter.json"
)

//go:embed testdata/schema.sql
var SchemaSQL string

//go:embed testdata/cookiecutter.json
var FieldsJSON string

// Server starts a server with the SQL schema of SchemaVersion and the
// field schema. Unknown versions get 404.
func Server(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	sqlPath := "/v" + SchemaVersion + "/schema.sql"
	mux.HandleFunc(sqlPath, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(SchemaSQL))
	})
	mux.HandleFunc(FieldsPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(FieldsJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// Config returns a configuration with the database and the project
// tree inside a temporary directory. When srv is not nil, schema URLs
// point to it.
func Config(t *testing.T, srv *httptest.Server) *config.Config {
	t.Helper()
	tmp := t.TempDir()
	opts := []config.Option{
		config.OptHomeDir(tmp),
		config.OptDatabasePath(filepath.Join(tmp, "db", "ngs_catalogue.db")),
		config.OptAssaysProjectRoot(filepath.Join(tmp, "project")),
		config.OptSchemaVersion(SchemaVersion),
	}
	if srv != nil {
		opts = append(opts,
			config.OptSchemaSQLURL(srv.URL+SQLPath),
			config.OptSchemaFieldsURL(srv.URL+FieldsPath),
		)
	}
	cfg := config.New()
	cfg.Update(opts)
	return cfg
}

// Record returns a metadata record with every expected field. Values
// from upd replace the defaults; a nil value removes the field.
func Record(id string, upd map[string]any) map[string]any {
	res := map[string]any{
		"assay_id":          id,
		"assay":             "RNAseq",
		"owner":             "Alice",
		"date":              "2024-01-15",
		"eln_id":            "ELN-" + id,
		"technology":        "bulk",
		"sequencer":         "NovaSeq",
		"seq_kit":           "KitA",
		"n_samples":         4,
		"is_paired":         true,
		"pipeline":          "nf-core/rnaseq",
		"processed_by":      "Bob",
		"organism":          "mouse",
		"organism_version":  "mm10",
		"organism_subgroup": "",
		"origin":            "internal",
		"short_desc":        "short " + id,
		"long_desc":         "long " + id,
		"note":              "",
		"genomics_path":     "/data/" + id,
	}
	for k, v := range upd {
		if v == nil {
			delete(res, k)
			continue
		}
		res[k] = v
	}
	return res
}

// WriteAssay writes rec as a YAML file into the assay directory
// dirName under the assays directory of cfg.
func WriteAssay(
	t *testing.T,
	cfg *config.Config,
	dirName, file string,
	rec map[string]any,
) string {
	t.Helper()
	dir := filepath.Join(cfg.AssaysDir(), dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	bs, err := yaml.Marshal(rec)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, file)
	if err = os.WriteFile(path, bs, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
