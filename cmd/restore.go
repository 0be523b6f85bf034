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
	"github.com/brickmanlab/ngsdb/internal/iodb"
	"github.com/brickmanlab/ngsdb/internal/iofetch"
	"github.com/brickmanlab/ngsdb/internal/iolifecycle"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getRestoreCmd returns the restore command.
func getRestoreCmd() *cobra.Command {
	restoreCmd := &cobra.Command{
		Use:   "restore",
		Short: "Bring back the catalogue from its backup",
		Long: `Rename <name>.db.backup back to the catalogue path. The current
catalogue file, if any, is replaced.

Use it after a failed 'ngsdb init' left an empty catalogue.

Examples:
  ngsdb restore
  ngsdb restore -d ./ngs_catalogue.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := iolifecycle.New(cfg, iodb.NewSQLiteOperator(), iofetch.New())
			res, err := m.Restore()
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			logStorage(res)
			return nil
		},
	}

	return restoreCmd
}
