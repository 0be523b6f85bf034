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

// getBackupCmd returns the backup command.
func getBackupCmd() *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Move the catalogue to its backup path",
		Long: `Rename the catalogue file to <name>.db.backup, replacing the
previous backup. Nothing happens if there is no catalogue.

Examples:
  ngsdb backup
  ngsdb backup -d ./ngs_catalogue.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m := iolifecycle.New(cfg, iodb.NewSQLiteOperator(), iofetch.New())
			res, err := m.Backup()
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			logStorage(res)
			return nil
		},
	}

	return backupCmd
}
