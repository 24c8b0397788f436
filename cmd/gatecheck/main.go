// Package main provides the entry point for the gatecheck CLI tool.
package main

import (
	"github.com/kemballops/gatecheck/cmd/gatecheck/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
