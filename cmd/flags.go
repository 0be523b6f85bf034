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
	"github.com/brickmanlab/ngsdb/pkg/config"
	"github.com/spf13/cobra"
)

// addConfigFlags adds flags shared by all subcommands.
func addConfigFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringP("database", "d", "", "path to the catalogue file")
	pf.String("driver", "", "SQLite driver: sqlite (pure Go) or sqlite3 (cgo)")
	pf.StringP("project-root", "p", "", "project directory that contains assays")
	pf.StringP("schema-version", "s", "", "schema version of SQL and field schemas")
}

// configOptions converts explicitly set flags to config options.
func configOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("database") {
		s, _ := flags.GetString("database")
		res = append(res, config.OptDatabasePath(s))
	}
	if flags.Changed("driver") {
		s, _ := flags.GetString("driver")
		res = append(res, config.OptDatabaseDriver(s))
	}
	if flags.Changed("project-root") {
		s, _ := flags.GetString("project-root")
		res = append(res, config.OptAssaysProjectRoot(s))
	}
	if flags.Changed("schema-version") {
		s, _ := flags.GetString("schema-version")
		res = append(res, config.OptSchemaVersion(s))
	}

	return res
}
