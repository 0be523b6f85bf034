package iocollect_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/brickmanlab/ngsdb/internal/iocollect"
	"github.com/brickmanlab/ngsdb/pkg/assay"
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/brickmanlab/ngsdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFiles creates files relative to the assays directory of a new
// project root and returns the config pointing to it.
func writeFiles(t *testing.T, files map[string]string) *config.Config {
	t.Helper()
	root := t.TempDir()
	assays := filepath.Join(root, "assays")
	require.NoError(t, os.MkdirAll(assays, 0755))
	for name, content := range files {
		path := filepath.Join(assays, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	cfg := config.New()
	cfg.Update([]config.Option{config.OptAssaysProjectRoot(root)})
	return cfg
}

func TestCollect_MergesDescription(t *testing.T) {
	cfg := writeFiles(t, map[string]string{
		"240101_RNAseq/metadata.yml": "a: 1\nb: meta\n",
		"240202_ATAC/metadata.yml":   "a: 2\nb: meta\n",
		"240202_ATAC/description.yml": "b: description\n" +
			"c: added\n",
	})

	res, err := iocollect.New(cfg).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Len(t, res.Files, 3)
	assert.Equal(t, cfg.AssaysDir(), res.Dir)

	tbl := res.Table
	assert.Equal(t, []string{"240101_RNAseq", "240202_ATAC"}, tbl.IDs())
	assert.Equal(t, []string{"a", "b", "c"}, tbl.Columns())

	rec, ok := tbl.Record("240101_RNAseq")
	require.True(t, ok)
	assert.Equal(t, assay.Record{"a": 1, "b": "meta"}, rec)

	rec, ok = tbl.Record("240202_ATAC")
	require.True(t, ok)
	assert.Equal(t,
		assay.Record{"a": 2, "b": "description", "c": "added"}, rec)

	_, ok = tbl.Value("240101_RNAseq", "c")
	assert.False(t, ok, "gap is reported as absent")
}

func TestCollect_FileOrder(t *testing.T) {
	cfg := writeFiles(t, map[string]string{
		"A/metadata.yml":    "owner: from metadata\n",
		"A/description.yml": "owner: from description\n",
	})
	cfg.Update([]config.Option{
		config.OptAssaysFiles([]string{"description.yml", "metadata.yml"}),
	})

	res, err := iocollect.New(cfg).Collect(context.Background())
	require.NoError(t, err)
	v, _ := res.Table.Value("A", "owner")
	assert.Equal(t, "from metadata", v, "later file name wins")
}

func TestCollect_ReportsEveryBrokenFile(t *testing.T) {
	cfg := writeFiles(t, map[string]string{
		"A/metadata.yml":    "owner: Alice\n",
		"B/metadata.yml":    "owner: [unclosed\n",
		"C/metadata.yml":    "owner: Carol\n",
		"C/description.yml": "\tbad: indentation\n",
		"D/metadata.yml":    "- a list\n- not a mapping\n",
	})

	res, err := iocollect.New(cfg).Collect(context.Background())
	require.NoError(t, err, "parse errors are not fatal")

	require.Len(t, res.Errors, 3)
	var paths []any
	for _, e := range res.Errors {
		var gnErr *gn.Error
		require.True(t, errors.As(e, &gnErr))
		assert.Equal(t, errcode.MetadataParseError, gnErr.Code)
		paths = append(paths, gnErr.Vars[0])
	}
	dir := cfg.AssaysDir()
	assert.ElementsMatch(t, []any{
		filepath.Join(dir, "B", "metadata.yml"),
		filepath.Join(dir, "D", "metadata.yml"),
		filepath.Join(dir, "C", "description.yml"),
	}, paths)

	assert.Equal(t, []string{"A", "C"}, res.Table.IDs())
	v, _ := res.Table.Value("C", "owner")
	assert.Equal(t, "Carol", v)
}

func TestCollect_SkipsNoise(t *testing.T) {
	cfg := writeFiles(t, map[string]string{
		"A/metadata.yml":       "owner: Alice\n",
		"B/metadata.yml":       "",
		".hidden/metadata.yml": "owner: Ghost\n",
		"metadata.yml":         "owner: Root\n",
		"C/raw/metadata.yml":   "owner: Deep\n",
		"D/notes.txt":          "owner: Nobody\n",
	})
	// a directory named like a metadata file
	require.NoError(t, os.MkdirAll(
		filepath.Join(cfg.AssaysDir(), "E", "description.yml"), 0755))

	res, err := iocollect.New(cfg).Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	assert.Equal(t, []string{"A"}, res.Table.IDs())
	assert.Len(t, res.Files, 2, "empty document is read but adds nothing")
}

func TestCollect_Scalars(t *testing.T) {
	cfg := writeFiles(t, map[string]string{
		"A/metadata.yml": `assay_id: A
n_samples: 12
is_paired: true
date: 2024-03-01
note:
organism: [mouse, human]
`,
	})

	res, err := iocollect.New(cfg).Collect(context.Background())
	require.NoError(t, err)

	rec, ok := res.Table.Record("A")
	require.True(t, ok)
	assert.Equal(t, 12, rec["n_samples"])
	assert.Equal(t, true, rec["is_paired"])
	assert.Equal(t, "2024-03-01", rec["date"])
	assert.Nil(t, rec["note"])
	assert.Contains(t, rec, "note")
	assert.Equal(t, "mouse, human", rec["organism"])
}

func TestCollect_MissingAssaysDir(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptAssaysProjectRoot(filepath.Join(t.TempDir(), "nope")),
	})

	_, err := iocollect.New(cfg).Collect(context.Background())
	require.Error(t, err)

	var gnErr *gn.Error
	require.True(t, errors.As(err, &gnErr))
	assert.Equal(t, errcode.MetadataDirError, gnErr.Code)
}

func TestCollect_Cancelled(t *testing.T) {
	cfg := writeFiles(t, map[string]string{
		"A/metadata.yml": "owner: Alice\n",
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := iocollect.New(cfg).Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
