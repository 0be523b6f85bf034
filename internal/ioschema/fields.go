package ioschema

import (
	"context"

	"github.com/brickmanlab/ngsdb/pkg/assay"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
	"github.com/brickmanlab/ngsdb/pkg/schema"
	"github.com/gnames/gnfmt"
)

// validator implements lifecycle.Validator using the JSON field
// schema document.
type validator struct {
	cfg     *config.Config
	fetcher lifecycle.Fetcher
}

// NewValidator creates a new Validator.
func NewValidator(
	cfg *config.Config,
	f lifecycle.Fetcher,
) lifecycle.Validator {
	return &validator{cfg: cfg, fetcher: f}
}

// ExpectedFields fetches the field document and derives sorted field
// names from its keys.
func (v *validator) ExpectedFields(
	ctx context.Context,
	version string,
) ([]string, error) {
	url := v.cfg.Schema.FieldsURL
	text, err := v.fetcher.Fetch(ctx, url, v.cfg.Schema.Encoding)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	enc := gnfmt.GNjson{}
	if err = enc.Decode([]byte(text), &doc); err != nil {
		return nil, DocumentError(url, err)
	}

	found, _ := schema.Version(doc, config.SchemaVersionKey)
	if found != version {
		return nil, VersionError(url, version, found)
	}

	return schema.Fields(doc, v.cfg.Schema.Whitelist), nil
}

// Validate compares columns of tbl with expected fields. Only the set
// of names matters, not their order.
func (v *validator) Validate(
	ctx context.Context,
	version string,
	tbl *assay.Table,
) (*lifecycle.Validation, error) {
	expected, err := v.ExpectedFields(ctx, version)
	if err != nil {
		return nil, err
	}

	actual := tbl.Columns()
	if !schema.Match(expected, actual) {
		missing, extra := schema.Diff(expected, actual)
		return nil, FieldsError(expected, actual, missing, extra)
	}

	res := &lifecycle.Validation{
		Version: version,
		Fields:  expected,
	}
	return res, nil
}
