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
	"context"
	"os"
	"os/signal"

	"github.com/brickmanlab/ngsdb/internal/iodb"
	"github.com/brickmanlab/ngsdb/internal/iofetch"
	"github.com/brickmanlab/ngsdb/internal/iolifecycle"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getInitCmd returns the init command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Rebuild the catalogue from assay metadata",
		Long: `Rebuild the NGS catalogue from scratch.

This command:
  1. Creates the database directory, or backs up the current database
  2. Creates tables using the SQL schema of the pinned version
  3. Collects metadata.yml and description.yml of every assay
  4. Validates metadata fields against the field schema
  5. Populates lookup tables and assays in one transaction

If population fails, the new database stays empty and the previous
one is kept as .db.backup. Use 'ngsdb restore' to bring it back.

Examples:
  ngsdb init
  ngsdb init -p /maps/projects/dan1/data/Brickman -s 1.0
  ngsdb init -d ./ngs_catalogue.db`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runInit(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return initCmd
}

func runInit(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gn.Info("Starting DB initialization ...")

	op := iodb.NewSQLiteOperator()
	defer op.Close()

	m := iolifecycle.New(cfg, op, iofetch.New())
	rep, err := m.Run(ctx)
	logReport(rep)
	if err != nil {
		return err
	}

	gn.Info("DB population done ...")
	return nil
}
