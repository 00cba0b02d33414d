// Package info holds the program identity printed by --version and --copyright.
package info

const (
	Version   = "0.4.1"
	Copyright = "Copyright (c) 2025-2026 The rexgen Authors"
	Contact   = "https://github.com/arnavsurve/rexgen/issues"
)
