// Package main is the entry point for dirkit.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirkit/internal/cli"
)

// Global variable for CI stamping.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "dirkit: %v\n", err)

		os.Exit(cli.ExitCode(err))
	}
}
