package schema_test

import (
	"testing"

	"github.com/brickmanlab/ngsdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var whitelist = []string{"__prompts__", "_extensions"}

func TestFields(t *testing.T) {
	tests := []struct {
		msg string
		doc map[string]any
		res []string
	}{
		{
			msg: "strips wrapping and whitelist",
			doc: map[string]any{
				"__codename__": "",
				"__prompts__":  map[string]any{},
				"technology":   []any{"RNA-seq"},
			},
			res: []string{"codename", "technology"},
		},
		{
			msg: "leading underscores only",
			doc: map[string]any{
				"__assay_id":       "",
				"__schema_version": "1.0",
				"_extensions":      []any{},
				"owner":            "",
			},
			res: []string{"assay_id", "owner", "schema_version"},
		},
		{
			msg: "empty document",
			doc: map[string]any{},
			res: []string{},
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, schema.Fields(v.doc, whitelist), v.msg)
	}
}

func TestVersion(t *testing.T) {
	v, ok := schema.Version(map[string]any{"__schema_version": "1.0"},
		"__schema_version")
	assert.True(t, ok)
	assert.Equal(t, "1.0", v)

	v, ok = schema.Version(map[string]any{"__schema_version": 2},
		"__schema_version")
	assert.True(t, ok)
	assert.Equal(t, "2", v)

	_, ok = schema.Version(map[string]any{}, "__schema_version")
	assert.False(t, ok)
}

// Column order is not a requirement: only the set of names is compared.
func TestMatchIgnoresOrder(t *testing.T) {
	assert.True(t, schema.Match([]string{"a", "b"}, []string{"b", "a"}))
	assert.False(t, schema.Match([]string{"a", "b"}, []string{"a"}))
	assert.False(t, schema.Match([]string{"a"}, []string{"a", "c"}))
}

func TestDiff(t *testing.T) {
	missing, extra := schema.Diff(
		[]string{"owner", "assay", "date"},
		[]string{"date", "codename", "assay"},
	)
	assert.Equal(t, []string{"owner"}, missing)
	assert.Equal(t, []string{"codename"}, extra)

	missing, extra = schema.Diff([]string{"a"}, []string{"a"})
	assert.Empty(t, missing)
	assert.Empty(t, extra)
}

func TestAssayColumns(t *testing.T) {
	cols := schema.AssayColumns()
	require.Len(t, cols, 20)
	assert.Equal(t, "id", cols[0].Name)
	assert.Equal(t, "genomics_path", cols[19].Name)

	var lookups []string
	for _, c := range cols {
		if c.Lookup != nil {
			lookups = append(lookups, c.Field+":"+c.Lookup.Table)
		}
	}
	assert.Equal(t, []string{
		"owner:users",
		"sequencer:sequencers",
		"seq_kit:sequencing_kits",
		"pipeline:pipelines",
		"processed_by:users",
	}, lookups)

	fields := schema.AssayFields()
	assert.Equal(t, "assay_id", fields[0])
	assert.Equal(t, "date", fields[3])
}

func TestLookupsOrder(t *testing.T) {
	var tables []string
	for _, l := range schema.Lookups() {
		tables = append(tables, l.Table)
	}
	assert.Equal(t,
		[]string{"sequencing_kits", "sequencers", "users", "pipelines"},
		tables,
	)
}
