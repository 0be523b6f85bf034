/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/brickmanlab/ngsdb/pkg/lifecycle"
	"github.com/brickmanlab/ngsdb/pkg/schema"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// logReport writes results of finished steps of a build.
func logReport(rep *lifecycle.Report) {
	if rep == nil {
		return
	}
	if rep.Storage != nil {
		logStorage(rep.Storage)
	}
	if rep.Init != nil {
		logInit(rep.Init)
	}
	if rep.Collect != nil {
		logCollect(rep.Collect)
	}
	if rep.Validation != nil {
		logValidation(rep.Validation)
	}
	if rep.Populate != nil {
		logPopulate(rep.Populate)
	}

	slog.Info("Build finished",
		"duration", gnfmt.TimeString(rep.Duration.Seconds()),
		"complete", rep.Populate != nil,
	)
	gn.Info("Elapsed time: <em>%s</em>", gnfmt.TimeString(rep.Duration.Seconds()))
}

func logStorage(res *lifecycle.StorageResult) {
	switch res.Action {
	case lifecycle.StorageDirCreated:
		slog.Info("Created database directory", "dir", res.To)
		gn.Info("Creating <em>%s</em>", res.To)
	case lifecycle.StorageBackedUp:
		slog.Info("Backed up previous database",
			"from", res.From,
			"to", res.To,
			"size", res.Size,
			"modified", res.ModTime,
		)
		gn.Info("Backing up previous database (%s, modified %s) to <em>%s</em>",
			humanize.Bytes(uint64(res.Size)), humanize.Time(res.ModTime), res.To)
	case lifecycle.StorageRestored:
		slog.Info("Restored database from backup",
			"from", res.From,
			"to", res.To,
			"size", res.Size,
		)
		gn.Info("Restored <em>%s</em> from backup (%s)",
			res.To, humanize.Bytes(uint64(res.Size)))
	default:
		slog.Info("No database was found", "path", cfg.Database.Path)
		gn.Info("No database was found ...")
	}
}

func logInit(res *lifecycle.InitResult) {
	slog.Info("Created database tables",
		"path", res.Path,
		"schema_url", res.URL,
		"tables", res.Tables,
	)
	gn.Info("Created tables <em>%s</em>", strings.Join(res.Tables, ", "))
}

func logCollect(res *lifecycle.CollectResult) {
	slog.Info("Loaded assays",
		"dir", res.Dir,
		"assays", res.Table.Len(),
		"files", len(res.Files),
		"skipped", len(res.Errors),
	)
	for _, err := range res.Errors {
		slog.Error("Problem with parsing metadata file", "error", err)
		gn.PrintErrorMessage(err)
	}
	gn.Info("Loaded <em>%s</em> assays from %s files",
		humanize.Comma(int64(res.Table.Len())),
		humanize.Comma(int64(len(res.Files))),
	)
	if n := len(res.Errors); n > 0 {
		gn.Warn("Skipped %d metadata files that could not be parsed", n)
	}
}

func logValidation(res *lifecycle.Validation) {
	slog.Info("Validated schema",
		"version", res.Version,
		"fields", len(res.Fields),
	)
	gn.Info("Metadata matches schema version <em>%s</em> (%d fields)",
		res.Version, len(res.Fields))
}

func logPopulate(res *lifecycle.PopulateResult) {
	for _, l := range schema.Lookups() {
		slog.Info("Populated lookup table",
			"table", l.Table,
			"rows", res.Lookups[l.Table],
		)
	}
	slog.Info("Populated assays",
		"rows", res.Assays,
		"corrected_users", res.Corrected,
	)
	gn.Info("Inserted <em>%s</em> assays, %s users, %s sequencers, %s kits, %s pipelines",
		humanize.Comma(int64(res.Assays)),
		humanize.Comma(int64(res.Lookups[schema.Users.Table])),
		humanize.Comma(int64(res.Lookups[schema.Sequencers.Table])),
		humanize.Comma(int64(res.Lookups[schema.SequencingKits.Table])),
		humanize.Comma(int64(res.Lookups[schema.Pipelines.Table])),
	)

	cols := make([]string, 0, len(res.Unresolved))
	for k := range res.Unresolved {
		cols = append(cols, k)
	}
	slices.Sort(cols)
	for _, col := range cols {
		slog.Warn("Unresolved foreign keys stored as NULL",
			"column", col,
			"rows", res.Unresolved[col],
		)
		gn.Warn("%d assays have no match for <em>%s</em>, stored as NULL",
			res.Unresolved[col], col)
	}
}
