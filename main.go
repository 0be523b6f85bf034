// Package main provides the ngsdb CLI application.
// ngsdb rebuilds the SQLite catalogue of NGS assays.
package main

import "github.com/brickmanlab/ngsdb/cmd"

func main() {
	cmd.Execute()
}
