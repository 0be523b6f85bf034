// Package iocollect implements lifecycle.Collector. It reads metadata
// files of assay directories from the project tree.
package iocollect

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/brickmanlab/ngsdb/internal/iofs"
	"github.com/brickmanlab/ngsdb/pkg/assay"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
	"gopkg.in/yaml.v3"
)

type collector struct {
	dir   string
	files []string
}

// New creates a Collector for the assays directory of cfg.
func New(cfg *config.Config) lifecycle.Collector {
	return &collector{
		dir:   cfg.AssaysDir(),
		files: cfg.Assays.Files,
	}
}

// Collect reads metadata files one level below the assays directory.
// All files with the first name are merged before files with the
// second name, so later names override fields of earlier ones.
func (c *collector) Collect(
	ctx context.Context,
) (*lifecycle.CollectResult, error) {
	assayDirs, err := c.assayDirs()
	if err != nil {
		return nil, err
	}

	res := &lifecycle.CollectResult{
		Dir:   c.dir,
		Table: assay.NewTable(),
	}

	for _, name := range c.files {
		for _, id := range assayDirs {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return res, ctxErr
			}

			path := filepath.Join(c.dir, id, name)
			info, err := iofs.Stat(path)
			if err != nil {
				return res, err
			}
			if info == nil || info.IsDir() {
				continue
			}

			rec, err := parseFile(path)
			if err != nil {
				var perr *parseErr
				if errors.As(err, &perr) {
					res.Errors = append(res.Errors, ParseError(path, perr.err))
					continue
				}
				return res, err
			}

			res.Files = append(res.Files, path)
			if len(rec) > 0 {
				res.Table.Merge(id, rec)
			}
		}
	}

	return res, nil
}

// assayDirs returns sorted names of visible subdirectories.
func (c *collector) assayDirs() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, AssaysDirError(c.dir, err)
	}

	var res []string
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if e.IsDir() || isDirLink(filepath.Join(c.dir, e.Name()), e) {
			res = append(res, e.Name())
		}
	}
	return res, nil
}

func isDirLink(path string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// parseErr marks errors of YAML decoding, as opposed to I/O errors.
type parseErr struct {
	err error
}

func (e *parseErr) Error() string {
	return e.err.Error()
}

// parseFile decodes a metadata file into a record. An empty document
// gives an empty record.
func parseFile(path string) (assay.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iofs.ReadFileError(path, err)
	}

	var doc any
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, &parseErr{err: err}
	}

	switch m := doc.(type) {
	case nil:
		return assay.Record{}, nil
	case map[string]any:
		return assay.Record(m), nil
	case map[any]any:
		res := make(assay.Record, len(m))
		for k, v := range m {
			res[fmt.Sprint(k)] = v
		}
		return res, nil
	default:
		return nil, &parseErr{
			err: fmt.Errorf("document is %T, not a mapping", doc),
		}
	}
}
