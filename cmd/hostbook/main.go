// Package main is the entry point for the hostbook binary.
//
// hostbook edits a line-oriented configuration file of named host connection
// profiles in the conventional SSH client config syntax. It combines a small
// CLI (built with Cobra) for add/remove/list and supporting operations with
// an interactive browser (built with Bubble Tea) that launches when no
// subcommand is given.
//
// Usage:
//
//	hostbook                              # launch the interactive browser
//	hostbook add web 10.0.0.1 -u root     # append a profile block
//	hostbook remove web                   # delete a profile block
//	hostbook list                         # list profiles as a table
//
// The CLI is constructed in internal/cli. This file wires logging and
// top-level error reporting.
package main

import (
	"fmt"
	"os"

	"github.com/dperrin/hostbook/internal/appconfig"
	"github.com/dperrin/hostbook/internal/cli"
)

func main() {
	cfg, err := appconfig.Load()
	if err != nil {
		cfg = appconfig.Default()
	}
	setupLogging(cfg.Log)

	// Cobra handles argument parsing, subcommand routing, and help output.
	// Any error returned by a RunE handler is printed to stderr and the
	// process exits with a non-zero status code.
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
