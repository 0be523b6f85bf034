// Package ngsdb builds the NGS catalogue of the lab from assay metadata.
package ngsdb

var (
	// Version of ngsdb, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
