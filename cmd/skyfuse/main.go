// Package main provides the entry point for the skyfuse CLI tool.
package main

import (
	"github.com/peacockIT/skyfuse/cmd/skyfuse/cmd"
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
