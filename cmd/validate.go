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

	"github.com/brickmanlab/ngsdb/internal/iocollect"
	"github.com/brickmanlab/ngsdb/internal/iofetch"
	"github.com/brickmanlab/ngsdb/internal/ioschema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getValidateCmd returns the validate command.
func getValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check assay metadata against the field schema",
		Long: `Collect assay metadata and compare its fields with the field schema
of the pinned version. The database is not touched.

Examples:
  ngsdb validate
  ngsdb validate -s 1.0 -p ./project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runValidate(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return validateCmd
}

func runValidate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	res, err := iocollect.New(cfg).Collect(ctx)
	if err != nil {
		return err
	}
	logCollect(res)

	v := ioschema.NewValidator(cfg, iofetch.New())
	val, err := v.Validate(ctx, cfg.Schema.Version, res.Table)
	if err != nil {
		return err
	}
	logValidation(val)

	return nil
}
