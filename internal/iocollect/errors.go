package iocollect

import (
	"fmt"

	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
)

// AssaysDirError is returned when the assays directory cannot be read.
func AssaysDirError(dir string, err error) error {
	msg := `Cannot read assays directory <em>%s</em>

<em>How to fix:</em>
  1. Check <em>assays.project_root</em> and <em>assays.dir</em> in config.yaml
  2. Use --project-root flag to point to the project tree`
	vars := []any{dir}
	return &gn.Error{
		Code: errcode.MetadataDirError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read assays directory %s: %w", dir, err),
	}
}

// ParseError is returned for a metadata file that is not a valid YAML
// mapping. Such files are skipped, the error is reported per file.
func ParseError(path string, err error) error {
	msg := "Problem with parsing <em>%s</em>, the file is skipped"
	vars := []any{path}
	return &gn.Error{
		Code: errcode.MetadataParseError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot parse %s: %w", path, err),
	}
}
